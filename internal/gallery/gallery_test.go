package gallery

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestListSortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), 2, 2, color.White)
	writePNG(t, filepath.Join(dir, "a.PNG"), 2, 2, color.White)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0755))

	files, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.PNG"), filepath.Join(dir, "b.png")}, files)
}

func TestListMissingDirectory(t *testing.T) {
	files, err := List(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, files)

	files, err = List("")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLoadDecodesInOrder(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "01-school-visit.png"), 4, 4, color.RGBA{R: 255, A: 255})
	writePNG(t, filepath.Join(dir, "02_packing.png"), 4, 4, color.RGBA{G: 255, A: 255})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "03-broken.png"), []byte("not a png"), 0644))

	photos, err := Load(context.Background(), Options{Dir: dir, Workers: 2})
	require.NoError(t, err)
	require.Len(t, photos, 3)

	assert.Equal(t, "01 school visit", photos[0].Title)
	assert.Equal(t, "02 packing", photos[1].Title)
	assert.Equal(t, "03 broken", photos[2].Title)

	require.NotNil(t, photos[0].Thumb)
	r, g, _ := photos[0].Thumb.ColorAt(0, 0).RGB()
	assert.Equal(t, int32(255), r)
	assert.Equal(t, int32(0), g)

	assert.Nil(t, photos[2].Thumb)
	items := Items(photos)
	require.Len(t, items, 3)
	assert.Nil(t, items[2].Picture)
	assert.Equal(t, "03 broken", items[2].Title)
	assert.Empty(t, items[0].Caption)
}

func TestLoadExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	writePNG(t, a, 1, 1, color.White)
	writePNG(t, b, 1, 1, color.White)

	photos, err := Load(context.Background(), Options{Files: []string{b, a}, Dir: "ignored"})
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, b, photos[0].Path)
	assert.Equal(t, a, photos[1].Path)
}

func TestLoadCancelled(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 1, 1, color.White)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, Options{Dir: dir})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewThumbnailKeepsAspect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	thumb := NewThumbnail(img, 50, 50)
	w, h := thumb.Size()
	assert.Equal(t, 50, w)
	assert.Equal(t, 25, h)

	small := NewThumbnail(image.NewRGBA(image.Rect(0, 0, 3, 2)), 50, 50)
	w, h = small.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
}

func TestNewThumbnailAveragesBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		img.Set(0, y, color.RGBA{A: 255})
		img.Set(1, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	thumb := NewThumbnail(img, 1, 1)
	w, h := thumb.Size()
	require.Equal(t, 1, w)
	require.Equal(t, 1, h)
	r, g, b := thumb.ColorAt(0, 0).RGB()
	assert.InDelta(t, 127, r, 1)
	assert.InDelta(t, 127, g, 1)
	assert.InDelta(t, 127, b, 1)

	// Transparent pixels do not count toward the color.
	half := image.NewRGBA(image.Rect(0, 0, 2, 1))
	half.Set(1, 0, color.RGBA{R: 255, A: 255})
	r, _, _ = NewThumbnail(half, 1, 1).ColorAt(0, 0).RGB()
	assert.Equal(t, int32(255), r)

	empty := NewThumbnail(image.NewRGBA(image.Rect(0, 0, 4, 4)), 2, 2)
	assert.Equal(t, tcell.ColorDefault, empty.ColorAt(1, 1))
}

func TestThumbnailTransparentAndOutOfRange(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(1, 0, color.RGBA{B: 255, A: 255})
	thumb := NewThumbnail(img, 10, 10)

	assert.Equal(t, tcell.ColorDefault, thumb.ColorAt(0, 0))
	_, _, b := thumb.ColorAt(1, 0).RGB()
	assert.Equal(t, int32(255), b)
	assert.Equal(t, tcell.ColorDefault, thumb.ColorAt(5, 5))
	assert.Equal(t, tcell.ColorDefault, thumb.ColorAt(-1, 0))
}
