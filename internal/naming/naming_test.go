package naming

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"slide_1", "slide"},
		{"page-02", "page"},
		{"scan0001", "scan"},
		{"notes", "notes"},
		{"7", ""},
		{"_1", ""},
		{"a_1_2", "a_1"},
		{"IMG_20240101_123456", "IMG_20240101"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePrefix(tt.in))
		})
	}
}

func TestNextFreeFile(t *testing.T) {
	dir := t.TempDir()

	got := NextFreeFile(dir, "combined", ".pdf")
	assert.Equal(t, filepath.Join(dir, "combined.pdf"), got)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "combined.pdf"), nil, 0o644))
	got = NextFreeFile(dir, "combined", ".pdf")
	assert.Equal(t, filepath.Join(dir, "combined_1.pdf"), got)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "combined_1.pdf"), nil, 0o644))
	got = NextFreeFile(dir, "combined", ".pdf")
	assert.Equal(t, filepath.Join(dir, "combined_2.pdf"), got)
}

func TestNextFreeDir(t *testing.T) {
	dir := t.TempDir()

	got := NextFreeDir(dir, "report_png")
	assert.Equal(t, filepath.Join(dir, "report_png"), got)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "report_png"), 0o755))
	got = NextFreeDir(dir, "report_png")
	assert.Equal(t, filepath.Join(dir, "report_png_1"), got)
}

func TestNextFreeFileCountsAnyEntryAsTaken(t *testing.T) {
	dir := t.TempDir()
	// A directory squatting on the name also forces a suffix.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "combined.pdf"), 0o755))
	got := NextFreeFile(dir, "combined", ".pdf")
	assert.Equal(t, filepath.Join(dir, "combined_1.pdf"), got)
}
