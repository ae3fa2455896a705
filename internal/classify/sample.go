package classify

import (
	"image"
	"image/color"
)

// bottomFraction is the share of the image height that gets sampled.
// Shirt color sits along the bottom edge of a portrait.
const bottomFraction = 0.05

// Sample holds the average color of a sampled region
type Sample struct {
	R      float64
	G      float64
	B      float64
	Pixels int
}

// Diff returns the green minus red difference the classifier keys on
func (s Sample) Diff() float64 {
	return s.G - s.R
}

// Valid reports whether the sample covered at least one pixel
func (s Sample) Valid() bool {
	return s.Pixels > 0
}

// SampleBottom averages the bottom strip of img. The strip is 5% of
// the image height, never less than one row.
func SampleBottom(img image.Image) Sample {
	b := img.Bounds()
	strip := int(float64(b.Dy()) * bottomFraction)
	if strip < 1 {
		strip = 1
	}
	return SampleRegion(img, image.Rect(b.Min.X, b.Max.Y-strip, b.Max.X, b.Max.Y))
}

// SampleRegion averages the pixels of img inside region. Alpha is
// ignored; transparent pixels contribute their raw color values.
func SampleRegion(img image.Image, region image.Rectangle) Sample {
	region = region.Intersect(img.Bounds())
	if region.Empty() {
		return Sample{}
	}

	read := readerFor(img)
	var sumR, sumG, sumB float64
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			r, g, b := read(x, y)
			sumR += r
			sumG += g
			sumB += b
		}
	}

	n := region.Dx() * region.Dy()
	return Sample{
		R:      sumR / float64(n),
		G:      sumG / float64(n),
		B:      sumB / float64(n),
		Pixels: n,
	}
}

// pixelFunc reads one pixel as 8-bit channel values
type pixelFunc func(x, y int) (r, g, b float64)

// readerFor returns a direct channel reader for the common decoded
// image types. Premultiplied formats are unmultiplied before averaging
// so transparency never darkens the sample.
func readerFor(img image.Image) pixelFunc {
	switch im := img.(type) {
	case *image.NRGBA:
		return func(x, y int) (float64, float64, float64) {
			i := im.PixOffset(x, y)
			return float64(im.Pix[i]), float64(im.Pix[i+1]), float64(im.Pix[i+2])
		}
	case *image.RGBA:
		return func(x, y int) (float64, float64, float64) {
			i := im.PixOffset(x, y)
			a := im.Pix[i+3]
			switch a {
			case 0:
				return 0, 0, 0
			case 0xff:
				return float64(im.Pix[i]), float64(im.Pix[i+1]), float64(im.Pix[i+2])
			}
			return float64(im.Pix[i]) * 0xff / float64(a),
				float64(im.Pix[i+1]) * 0xff / float64(a),
				float64(im.Pix[i+2]) * 0xff / float64(a)
		}
	case *image.Gray:
		return func(x, y int) (float64, float64, float64) {
			v := float64(im.GrayAt(x, y).Y)
			return v, v, v
		}
	case *image.YCbCr:
		return func(x, y int) (float64, float64, float64) {
			c := im.YCbCrAt(x, y)
			r, g, b := color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
			return float64(r), float64(g), float64(b)
		}
	default:
		return func(x, y int) (float64, float64, float64) {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			return float64(c.R), float64(c.G), float64(c.B)
		}
	}
}
