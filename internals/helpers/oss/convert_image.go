// file: internals/helpers/oss/convert_image.go
package oss

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// decodeImage sniffs the payload with DetectContentType and decodes
// jpeg, png and webp. Anything else reports ok=false so the caller can
// store the payload untouched.
func decodeImage(raw []byte, ext string) (image.Image, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	head := raw
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)
	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(raw))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(raw))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(raw))
	default:
		switch ext {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(raw))
		case ".png":
			img, err = png.Decode(bytes.NewReader(raw))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(raw))
		default:
			return nil, false
		}
	}
	if err != nil {
		return nil, false
	}
	return img, true
}

// downscale shrinks src keep-aspect so it fits inside maxW x maxH.
// Images already within bounds are returned as-is.
func downscale(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func encodeWebP(img image.Image, quality float32) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
