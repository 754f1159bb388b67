package transcode

import (
	"FlashVault/config"
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/webp"
)

// FormatWebP is the canonical stored image format.
const FormatWebP = "webp"

var (
	// ErrDecode reports bytes that are not a parseable image.
	ErrDecode = errors.New("image decode failed")
	// ErrEncode reports a failed re-encode of a decoded raster.
	ErrEncode = errors.New("image encode failed")
)

// Bound is the maximum (width, height) box a transcoded image must fit within.
type Bound struct {
	Width  int
	Height int
}

// Encoded is the output of a transcode: encoded bytes plus final geometry.
type Encoded struct {
	Bytes  []byte
	Width  int
	Height int
	Format string
}

// CardBound returns the card face bounding box.
func CardBound() Bound {
	if mc := config.MediaConfigInstance; mc != nil {
		return Bound{Width: mc.CardMaxWidth, Height: mc.CardMaxHeight}
	}
	return Bound{Width: 800, Height: 800}
}

// ProfileBound returns the profile picture bounding box.
func ProfileBound() Bound {
	if mc := config.MediaConfigInstance; mc != nil {
		return Bound{Width: mc.ProfileMaxWidth, Height: mc.ProfileMaxHeight}
	}
	return Bound{Width: 300, Height: 300}
}

func webpQuality() int {
	if mc := config.MediaConfigInstance; mc != nil && mc.WebPQuality > 0 {
		return mc.WebPQuality
	}
	return 80
}

// Transcode decodes raw image bytes, shrinks the raster to fit bound when it
// exceeds it (aspect ratio preserved, never upscaled, never cropped) and
// re-encodes to WEBP. Re-encoding happens even when no resize was needed.
// The claimed content type of the upload is never consulted; detection is
// structural and malformed bytes fail with ErrDecode.
func Transcode(raw []byte, bound Bound) (*Encoded, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if exceeds(img, bound) {
		img = imaging.Fit(img, bound.Width, bound.Height, imaging.Lanczos)
	}
	return encodeWebP(img)
}

// TranscodeProfile applies the profile picture rule: a source already within
// bound passes through byte-for-byte in its original format; a larger source
// is resized and re-encoded like any card face.
func TranscodeProfile(raw []byte, bound Bound) (*Encoded, error) {
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if !exceeds(img, bound) {
		b := img.Bounds()
		return &Encoded{
			Bytes:  raw,
			Width:  b.Dx(),
			Height: b.Dy(),
			Format: format,
		}, nil
	}
	img = imaging.Fit(img, bound.Width, bound.Height, imaging.Lanczos)
	return encodeWebP(img)
}

func exceeds(img image.Image, bound Bound) bool {
	b := img.Bounds()
	return b.Dx() > bound.Width || b.Dy() > bound.Height
}

func encodeWebP(img image.Image) (*Encoded, error) {
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, webp.Options{Quality: webpQuality(), Lossless: false}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	b := img.Bounds()
	return &Encoded{
		Bytes:  buf.Bytes(),
		Width:  b.Dx(),
		Height: b.Dy(),
		Format: FormatWebP,
	}, nil
}
