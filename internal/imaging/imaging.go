package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"
	xdraw "golang.org/x/image/draw"

	// Registered decoders. Portraits are PNG exports but scans show up
	// as JPEG and TIFF too.
	_ "image/png"

	_ "golang.org/x/image/tiff"
)

// DecodeFile reads and decodes one image from disk
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// ProbeSize reads only the header of an image file and returns its
// pixel dimensions
func ProbeSize(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read header of %s: %w", filepath.Base(path), err)
	}
	return cfg.Width, cfg.Height, nil
}

// Decoder decodes images through a short lived cache. A portrait
// placed on both page orientations is read from disk once.
type Decoder struct {
	cache *gocache.Cache
}

// NewDecoder returns a Decoder whose entries expire after two minutes
func NewDecoder() *Decoder {
	return &Decoder{cache: gocache.New(2*time.Minute, 5*time.Minute)}
}

// Decode returns the image at path, from cache when warm
func (d *Decoder) Decode(path string) (image.Image, error) {
	if cached, ok := d.cache.Get(path); ok {
		return cached.(image.Image), nil
	}
	img, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	d.cache.Set(path, img, gocache.DefaultExpiration)
	return img, nil
}

// ScaleToWidth resizes src to width pixels with Catmull-Rom
// resampling, flattening any transparency onto white. Images already
// at or below width keep their size.
func ScaleToWidth(src image.Image, width int) *image.RGBA {
	b := src.Bounds()
	if width > b.Dx() {
		width = b.Dx()
	}
	if width < 1 {
		width = 1
	}
	height := int(math.Round(float64(width) * float64(b.Dy()) / float64(b.Dx())))
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

// EncodeJPEG encodes img at the given quality
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
