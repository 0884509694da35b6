package assemble

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestImageSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	writePNG(t, path, 3, 5)

	w, h, err := ImageSize(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)
	assert.Equal(t, 5.0, h)
}

func TestImageSizeRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, _, err := ImageSize(path)
	assert.Error(t, err)
}

func TestBuildDocument(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "page_1.png")
	second := filepath.Join(dir, "page_2.png")
	writePNG(t, first, 4, 6)
	writePNG(t, second, 6, 4)

	b := NewBuilder()
	doc := b.NewDocument()

	require.NoError(t, doc.AddImagePage(first, 4, 6))
	require.NoError(t, doc.AddImagePage(second, 6, 4))
	assert.Equal(t, 2, doc.PageCount())

	out := filepath.Join(dir, "out.pdf")
	require.NoError(t, doc.Save(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:5]) == "%PDF-", "output must be a PDF")
}

func TestBadImageLeavesDocumentUsable(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "broken.png")
	good := filepath.Join(dir, "fine.png")
	require.NoError(t, os.WriteFile(bad, []byte("definitely not a PNG"), 0o644))
	writePNG(t, good, 2, 2)

	doc := NewBuilder().NewDocument()

	err := doc.AddImagePage(bad, 2, 2)
	require.Error(t, err)
	assert.Equal(t, 0, doc.PageCount(), "failed image must not add a page")

	// The document must survive the failure and accept further pages.
	require.NoError(t, doc.AddImagePage(good, 2, 2))
	assert.Equal(t, 1, doc.PageCount())

	out := filepath.Join(dir, "out.pdf")
	require.NoError(t, doc.Save(out))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSaveToBadPathFails(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "fine.png")
	writePNG(t, good, 2, 2)

	doc := NewBuilder().NewDocument()
	require.NoError(t, doc.AddImagePage(good, 2, 2))
	assert.Error(t, doc.Save(filepath.Join(dir, "no-such-dir", "out.pdf")))
}
