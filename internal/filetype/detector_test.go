package filetype

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 1, 1))))
}

func TestDetect(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "img.png")
	writePNG(t, pngPath)

	pdfPath := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF\n"), 0o644))

	txtPath := filepath.Join(dir, "fake.png")
	require.NoError(t, os.WriteFile(txtPath, []byte("just text pretending"), 0o644))

	d := New()

	info, err := d.Detect(pngPath)
	require.NoError(t, err)
	assert.Equal(t, ClassPNG, info.Class)
	assert.Equal(t, "image/png", info.MIMEType)

	info, err = d.Detect(pdfPath)
	require.NoError(t, err)
	assert.Equal(t, ClassPDF, info.Class)

	info, err = d.Detect(txtPath)
	require.NoError(t, err)
	assert.Equal(t, ClassOther, info.Class)
}

func TestDetectMissingFile(t *testing.T) {
	_, err := New().Detect(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "img.png")
	writePNG(t, pngPath)

	d := New()
	assert.NoError(t, d.Verify(pngPath, ClassPNG))

	err := d.Verify(pngPath, ClassPDF)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image/png")
	assert.Contains(t, err.Error(), "PDF document")
}

func TestClassFor(t *testing.T) {
	c, ok := ClassFor(".PDF")
	assert.True(t, ok)
	assert.Equal(t, ClassPDF, c)

	c, ok = ClassFor(".png")
	assert.True(t, ok)
	assert.Equal(t, ClassPNG, c)

	_, ok = ClassFor(".txt")
	assert.False(t, ok)
}
