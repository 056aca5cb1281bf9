package marcher3d

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/nfnt/resize"
)

// intensityImage16 maps frame intensities to 16-bit gray, misses stay black.
func intensityImage16(f *Frame) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			v := f.Intensity[f.idx(x, y)]
			if !isFinite(v) {
				v = 0
			}
			img.SetGray16(x, y, color.Gray16{Y: uint16(math.Round(float64(clamp(v, 0, 1)) * 65535))})
		}
	}
	return img
}

// upscale stretches a cell image so that every cell becomes scale x 2*scale pixels
// (terminal cells are roughly twice as tall as wide).
func upscale(img image.Image, f *Frame, scale int) image.Image {
	if scale <= 1 {
		return img
	}
	return resize.Resize(uint(f.Width*scale), uint(f.Height*scale*2), img, resize.NearestNeighbor)
}

// SavePNG16 writes the frame's light intensities as a lossless 16-bit grayscale PNG.
func SavePNG16(f *Frame, path string, scale int) error {
	img := upscale(intensityImage16(f), f, scale)
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	DebugLog("Saved PNG %s (%dx%d cells, scale %d)", path, f.Width, f.Height, scale)
	return out.Close()
}
