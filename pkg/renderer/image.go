package renderer

import (
	"fmt"
	"image"
	"image/color"
)

// channelsPerPixel is the number of float channels stored per pixel (RGBA)
const channelsPerPixel = 4

// Pixel is one floating-point color sample with red, green, blue and alpha
// channels in order.
type Pixel struct {
	R, G, B, A float32
}

// FloatImage holds an image with a float32 value per channel so successive
// noisy frames can be blended into a running weighted average without
// quantization loss. Values are only clamped when the image is converted
// for display.
type FloatImage struct {
	width  int
	height int
	data   []float32
}

// NewFloatImage creates a zero-initialized (black, transparent) image
func NewFloatImage(width, height int) *FloatImage {
	return &FloatImage{
		width:  width,
		height: height,
		data:   make([]float32, width*height*channelsPerPixel),
	}
}

// NewFloatImageFromData wraps an existing channel buffer. The buffer length
// must be exactly width*height*4.
func NewFloatImageFromData(width, height int, data []float32) (*FloatImage, error) {
	if len(data) != width*height*channelsPerPixel {
		return nil, fmt.Errorf("renderer: data length %d does not match %dx%d image (want %d)",
			len(data), width, height, width*height*channelsPerPixel)
	}
	return &FloatImage{width: width, height: height, data: data}, nil
}

// Width returns the image width in pixels
func (img *FloatImage) Width() int {
	return img.width
}

// Height returns the image height in pixels
func (img *FloatImage) Height() int {
	return img.height
}

// PixelAt returns the current value of the pixel at (x, y)
func (img *FloatImage) PixelAt(x, y int) (Pixel, error) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return Pixel{}, fmt.Errorf("renderer: pixel (%d, %d) out of bounds for %dx%d image", x, y, img.width, img.height)
	}
	index := (y*img.width + x) * channelsPerPixel
	return Pixel{
		R: img.data[index],
		G: img.data[index+1],
		B: img.data[index+2],
		A: img.data[index+3],
	}, nil
}

// BlendPixel blends a new pixel into position (x, y): the new value is
// weighted by weight, the stored value by 1-weight, and the sum replaces
// the stored value. A weight of 1 overwrites, a weight of 0 is a no-op.
func (img *FloatImage) BlendPixel(x, y int, pixel Pixel, weight float32) error {
	if len(img.data) != img.width*img.height*channelsPerPixel {
		panic("renderer: data length mismatch, the image has been corrupted")
	}
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return fmt.Errorf("renderer: pixel (%d, %d) out of bounds for %dx%d image", x, y, img.width, img.height)
	}

	oldWeight := 1 - weight
	index := (y*img.width + x) * channelsPerPixel
	img.data[index] = img.data[index]*oldWeight + pixel.R*weight
	img.data[index+1] = img.data[index+1]*oldWeight + pixel.G*weight
	img.data[index+2] = img.data[index+2]*oldWeight + pixel.B*weight
	img.data[index+3] = img.data[index+3]*oldWeight + pixel.A*weight
	return nil
}

// BlendRow blends a full row of pixels at the given row index with the
// same weighting as BlendPixel. The row must hold exactly width pixels.
func (img *FloatImage) BlendRow(pixels []Pixel, row int, weight float32) error {
	if len(pixels) != img.width {
		return fmt.Errorf("renderer: row length %d does not match image width %d", len(pixels), img.width)
	}
	if row < 0 || row >= img.height {
		return fmt.Errorf("renderer: row %d out of bounds for height %d", row, img.height)
	}

	for x, pixel := range pixels {
		if err := img.BlendPixel(x, row, pixel, weight); err != nil {
			return err
		}
	}
	return nil
}

// ToRGBA converts the accumulated image to a displayable 8-bit RGBA
// bitmap, clamping every channel to [0, 1]. The conversion is lossy and
// one-way; the float data is left untouched for further blending.
func (img *FloatImage) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			index := (y*img.width + x) * channelsPerPixel
			out.SetRGBA(x, y, color.RGBA{
				R: toByte(img.data[index]),
				G: toByte(img.data[index+1]),
				B: toByte(img.data[index+2]),
				A: toByte(img.data[index+3]),
			})
		}
	}
	return out
}

func toByte(value float32) uint8 {
	if value <= 0 {
		return 0
	}
	if value >= 1 {
		return 255
	}
	return uint8(value * 255)
}
