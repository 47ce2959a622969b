// Package embedding implements C5: a deterministic mapping from a
// decoded image to a fixed-length float32 vector, loaded lazily and
// reused across calls.
package embedding

import "image"

// Dims is the fixed embedding width every vector must have.
const Dims = 512

// Embedder converts an image into a Dims-length float32 vector.
type Embedder interface {
	Embed(img image.Image) ([]float32, error)
}
