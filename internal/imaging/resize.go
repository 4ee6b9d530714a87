// Package imaging shrinks images client-side before upload so the backend
// never receives multi-megabyte originals.
package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"

	xdraw "golang.org/x/image/draw"
)

// Fit returns the centered rectangle a srcW x srcH image occupies inside a
// targetW x targetH canvas when scaled to preserve aspect ratio. Images
// smaller than the canvas are not enlarged.
func Fit(srcW, srcH, targetW, targetH int) image.Rectangle {
	if srcW <= 0 || srcH <= 0 || targetW <= 0 || targetH <= 0 {
		return image.Rectangle{}
	}
	w, h := srcW, srcH
	if w > targetW || h > targetH {
		// Scale by the tighter dimension.
		if srcW*targetH > srcH*targetW {
			w = targetW
			h = srcH * targetW / srcW
		} else {
			h = targetH
			w = srcW * targetH / srcH
		}
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	x := (targetW - w) / 2
	y := (targetH - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

// Resize letterboxes src onto a white targetW x targetH canvas, preserving
// aspect ratio.
func Resize(src image.Image, targetW, targetH int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	b := src.Bounds()
	r := Fit(b.Dx(), b.Dy(), targetW, targetH)
	xdraw.ApproxBiLinear.Scale(dst, r, src, b, xdraw.Over, nil)
	return dst
}

// EncodeJPEG serializes an image for a multipart upload.
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
