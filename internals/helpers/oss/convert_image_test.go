package oss

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 40, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestDecodeImagePNG(t *testing.T) {
	img, ok := decodeImage(pngBytes(t, 12, 8), ".png")
	require.True(t, ok)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestDecodeImageRejectsNonImages(t *testing.T) {
	_, ok := decodeImage([]byte("%PDF-1.7 not an image"), ".pdf")
	assert.False(t, ok)

	_, ok = decodeImage(nil, ".png")
	assert.False(t, ok)

	// png extension but garbage bytes must not pass
	_, ok = decodeImage([]byte{0x00, 0x01, 0x02, 0x03}, ".png")
	assert.False(t, ok)
}

func TestDownscaleKeepsAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3000, 1500))
	out := downscale(src, 1600, 1600)
	assert.Equal(t, 1600, out.Bounds().Dx())
	assert.Equal(t, 800, out.Bounds().Dy())
}

func TestDownscaleLeavesSmallImagesAlone(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 640, 480))
	out := downscale(src, 1600, 1600)
	assert.Same(t, image.Image(src), out)
}

func TestEncodeWebPRoundTrips(t *testing.T) {
	img, ok := decodeImage(pngBytes(t, 32, 32), ".png")
	require.True(t, ok)

	data, err := encodeWebP(img, 80)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	back, ok := decodeImage(data, "")
	require.True(t, ok, "encoded payload should sniff and decode as webp")
	assert.Equal(t, 32, back.Bounds().Dx())
}
