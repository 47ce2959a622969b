package imageops

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	"github.com/jaconsta/rag-gallery/pkg/apperror"
)

// WebPQuality is the lossy encoder quality used for re-encoded
// thumbnails (0-100).
const WebPQuality = 80

// EncodeWebP re-encodes img as WebP bytes.
func EncodeWebP(img image.Image) ([]byte, error) {
	options, err := encoder.NewLossyEncoderOptions(encoder.PresetPhoto, WebPQuality)
	if err != nil {
		return nil, apperror.New(apperror.ImageDecode, "imageops.EncodeWebP", err)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, options); err != nil {
		return nil, apperror.New(apperror.ImageDecode, "imageops.EncodeWebP", err)
	}
	return buf.Bytes(), nil
}

// Base64 returns the plain (unprefixed) base64 encoding of data, for
// LLM backends that accept raw base64.
func Base64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DataURL returns a "data:<mime>;base64,..." URL, for LLM backends that
// expect a data URL.
func DataURL(mime string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, Base64(data))
}
