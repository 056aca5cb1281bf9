package marcher3d

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"math"
	"os"
)

func grayPalette() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}

// SaveLightOrbitGIF renders frames pictures while the light makes one full turn
// around the scene and writes them as an animated GIF.
// delay is in 100ths of a second. The viewer's light angle is restored afterwards.
func SaveLightOrbitGIF(v *Viewer, path string, frames, delay, scale int) error {
	if frames <= 0 {
		return fmt.Errorf("frames must be > 0, got %d", frames)
	}
	start := v.Scene.LightAngle()
	defer v.Scene.SetLightAngle(start)

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, frames),
		Delay:     make([]int, 0, frames),
		LoopCount: 0,
	}
	pal := grayPalette()
	step := imax(1, frames/10)
	for k := 0; k < frames; k++ {
		if k%step == 0 {
			DebugLog("[GIF] %.2f%%", float64(k+1)*100/float64(frames))
		}
		v.Scene.SetLightAngle(start + Real(2*math.Pi*float64(k)/float64(frames)))
		f := v.Frame()
		src := upscale(intensityImage16(f), f, scale)

		pimg := image.NewPaletted(src.Bounds(), pal)
		draw.Draw(pimg, pimg.Bounds(), src, src.Bounds().Min, draw.Src)
		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(fh, out); err != nil {
		_ = fh.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	DebugLog("Saved animated GIF %s (%d frames)", path, frames)
	return fh.Close()
}
