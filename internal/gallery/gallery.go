// Package gallery turns a folder of activity photos into carousel items.
package gallery

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/rwcarlsen/goexif/exif"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xqrs/smiles"
)

// Largest thumbnail kept in memory, in pixels. Carousel items are far
// smaller, so this leaves room for wide terminals.
const (
	maxThumbWidth  = 96
	maxThumbHeight = 64
)

var extensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// Options configures Load.
type Options struct {
	// Dir is scanned for pictures when Files is empty.
	Dir string
	// Files lists the pictures explicitly, in display order.
	Files []string
	// Workers bounds the number of pictures decoded at once.
	Workers int
	Logger  *zap.Logger
}

// Photo is one decoded activity picture.
type Photo struct {
	Path  string
	Title string
	// Taken is the EXIF capture time, zero when unknown.
	Taken time.Time
	// Thumb is nil when the file could not be decoded.
	Thumb *Thumbnail
}

// Item returns the carousel item showing the photo.
func (p Photo) Item() smiles.CarouselItem {
	item := smiles.CarouselItem{Title: p.Title}
	if !p.Taken.IsZero() {
		item.Caption = p.Taken.Format("2006-01-02")
	}
	if p.Thumb != nil {
		item.Picture = p.Thumb
	}
	return item
}

// Items converts photos to carousel items.
func Items(photos []Photo) []smiles.CarouselItem {
	items := make([]smiles.CarouselItem, len(photos))
	for i, p := range photos {
		items[i] = p.Item()
	}
	return items
}

// Load decodes the configured pictures in parallel. Pictures that cannot be
// decoded still produce a title-only photo; only listing the directory can
// fail.
func Load(ctx context.Context, opts Options) ([]Photo, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	files := opts.Files
	if len(files) == 0 {
		var err error
		if files, err = List(opts.Dir); err != nil {
			return nil, err
		}
	}

	photos := make([]Photo, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			photos[i] = loadPhoto(path, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return photos, nil
}

// List returns the pictures in dir, sorted by name.
func List(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading gallery directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if slices.Contains(extensions, strings.ToLower(filepath.Ext(entry.Name()))) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	slices.Sort(files)
	return files, nil
}

func loadPhoto(path string, logger *zap.Logger) Photo {
	photo := Photo{Path: path, Title: titleFromPath(path)}

	file, err := os.Open(path)
	if err != nil {
		logger.Warn("gallery: cannot open picture", zap.String("path", path), zap.Error(err))
		return photo
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		logger.Warn("gallery: cannot decode picture", zap.String("path", path), zap.Error(err))
		return photo
	}
	photo.Thumb = NewThumbnail(img, maxThumbWidth, maxThumbHeight)

	// Reset file pointer to read EXIF data
	if _, err := file.Seek(0, 0); err == nil {
		if x, err := exif.Decode(file); err == nil {
			if taken, err := x.DateTime(); err == nil {
				photo.Taken = taken
			}
		}
	}
	return photo
}

// titleFromPath turns "activity-3_school.png" into "activity 3 school".
func titleFromPath(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	}), " ")
}

// Thumbnail is a downsampled picture that implements smiles.Picture.
type Thumbnail struct {
	width, height int
	pix           []tcell.Color
}

// NewThumbnail scales img down to at most maxW×maxH pixels, keeping its
// aspect ratio. Each pixel is the average of the source block it covers; a
// block is transparent only when all of its pixels are.
func NewThumbnail(img image.Image, maxW, maxH int) *Thumbnail {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 || maxW <= 0 || maxH <= 0 {
		return &Thumbnail{}
	}

	outW, outH := srcW, srcH
	if outW > maxW {
		outH = max(outH*maxW/outW, 1)
		outW = maxW
	}
	if outH > maxH {
		outW = max(outW*maxH/outH, 1)
		outH = maxH
	}

	t := &Thumbnail{width: outW, height: outH, pix: make([]tcell.Color, outW*outH)}
	for y := range outH {
		y0 := y * srcH / outH
		y1 := max((y+1)*srcH/outH, y0+1)
		for x := range outW {
			x0 := x * srcW / outW
			x1 := max((x+1)*srcW/outW, x0+1)
			t.pix[y*outW+x] = averageBlock(img, bounds.Min.X+x0, bounds.Min.Y+y0, bounds.Min.X+x1, bounds.Min.Y+y1)
		}
	}
	return t
}

// averageBlock averages the pixels in [x0,x1)×[y0,y1). Colors are weighted by
// their alpha, so transparent pixels do not darken the block.
func averageBlock(img image.Image, x0, y0, x1, y1 int) tcell.Color {
	var r, g, b, a uint64
	for sy := y0; sy < y1; sy++ {
		for sx := x0; sx < x1; sx++ {
			pr, pg, pb, pa := img.At(sx, sy).RGBA()
			r += uint64(pr)
			g += uint64(pg)
			b += uint64(pb)
			a += uint64(pa)
		}
	}
	if a == 0 {
		return tcell.ColorDefault
	}
	// RGBA is alpha-premultiplied; dividing by the summed alpha undoes it.
	channel := func(v uint64) int32 {
		return int32(min(v*0xffff/a, 0xffff) >> 8)
	}
	return color.NewRGBColor(channel(r), channel(g), channel(b))
}

// Size implements smiles.Picture.
func (t *Thumbnail) Size() (int, int) {
	return t.width, t.height
}

// ColorAt implements smiles.Picture.
func (t *Thumbnail) ColorAt(x, y int) tcell.Color {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return tcell.ColorDefault
	}
	return t.pix[y*t.width+x]
}

var _ smiles.Picture = &Thumbnail{}
