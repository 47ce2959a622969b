// Package imageops implements the feeder's decode → thumbnail → encode
// pipeline step (C4), grounded on
// anttilinno-home-warehouse-system's imageprocessor package.
package imageops

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/jaconsta/rag-gallery/pkg/apperror"
)

// Decode auto-detects the source format and decodes it into an
// image.Image.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, apperror.New(apperror.ImageDecode, "imageops.Decode", err)
	}
	return img, nil
}

// GuessFormat peeks at the magic bytes to report the detected format
// name without fully decoding.
func GuessFormat(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", apperror.New(apperror.ImageFormatGuess, "imageops.GuessFormat", err)
	}
	return format, nil
}

// Dimensions returns the width and height of an already-decoded image.
func Dimensions(img image.Image) (width, height int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

