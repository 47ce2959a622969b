package imageops

import (
	"image"

	"github.com/disintegration/imaging"
)

// Thumbnail is the resized image plus its dimensions; the catalogue
// store derives the ratio tag from Width and Height downstream.
type Thumbnail struct {
	Image  image.Image
	Width  int
	Height int
}

// MakeThumbnail resizes img so that width = 512 and
// height = floor(512 * aspect_ratio), aspect_ratio = width/height. This
// intentionally reproduces the source's formula rather than the more
// natural height = 512 / aspect_ratio: for landscape images (wider than
// tall) the result is taller than 512px. See the project's design notes before changing
// this without a product decision.
func MakeThumbnail(img image.Image) Thumbnail {
	const targetWidth = 512

	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	aspectRatio := float64(srcW) / float64(srcH)

	height := int(float64(targetWidth) * aspectRatio)
	if height < 1 {
		height = 1
	}

	resized := imaging.Resize(img, targetWidth, height, imaging.Lanczos)

	return Thumbnail{
		Image:  resized,
		Width:  targetWidth,
		Height: height,
	}
}
