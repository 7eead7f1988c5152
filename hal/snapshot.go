package hal

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// rgbaFrom565 expands little-endian RGB565 pixels into an RGBA byte slice.
func rgbaFrom565(dst, src []byte) {
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, g, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}

// Image converts the framebuffer into an RGBA image.
func Image(fb Framebuffer) (*image.RGBA, error) {
	if fb == nil {
		return nil, fmt.Errorf("snapshot: nil framebuffer")
	}
	if fb.Format() != PixelFormatRGB565 {
		return nil, fmt.Errorf("snapshot: unsupported pixel format %d", fb.Format())
	}
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	src := fb.Buffer()
	if hf, ok := fb.(*hostFramebuffer); ok {
		src = make([]byte, len(hf.buf))
		hf.snapshotRGB565(src)
	}
	stride := fb.StrideBytes()
	row := fb.Width() * 2
	for y := 0; y < fb.Height(); y++ {
		off := y * stride
		if off+row > len(src) {
			break
		}
		rgbaFrom565(img.Pix[y*img.Stride:(y+1)*img.Stride], src[off:off+row])
	}
	return img, nil
}

// WritePNG encodes the framebuffer as PNG.
func WritePNG(w io.Writer, fb Framebuffer) error {
	img, err := Image(fb)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("snapshot: encode png: %w", err)
	}
	return nil
}

// WritePNGFile writes the framebuffer to path as PNG.
func WritePNGFile(path string, fb Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := WritePNG(f, fb); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: close %s: %w", path, err)
	}
	return nil
}
