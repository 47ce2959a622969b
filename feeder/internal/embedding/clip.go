package embedding

import (
	"fmt"
	"image"
	"sync"

	"github.com/corona10/goimagehash"

	"github.com/jaconsta/rag-gallery/pkg/apperror"
)

// hashWidth/hashHeight are chosen so width*height == Dims bits, giving
// one float per bit of the extended perceptual hash.
const (
	hashWidth  = 32
	hashHeight = 16
)

// ClipEmbedder is a stand-in for a real CLIP-ViT-B/32 embedding model:
// no Go CLIP or ONNX binding exists in this project's dependency set, so
// it instead derives a deterministic Dims-length vector from an
// extended perceptual hash (ExtPerceptionHash), projecting each hash
// bit to +1/-1. It satisfies the same contract (deterministic
// Image -> f32[Dims], lazy first-use setup) that a real vision-model
// embedder would.
type ClipEmbedder struct {
	once sync.Once
}

// NewClipEmbedder constructs an embedder. Model-equivalent setup is
// deferred to the first Embed call.
func NewClipEmbedder() *ClipEmbedder {
	return &ClipEmbedder{}
}

func (e *ClipEmbedder) Embed(img image.Image) ([]float32, error) {
	e.once.Do(func() {
		// Lazy setup point: a real CLIP backend would load model
		// weights here on first use.
	})

	hash, err := goimagehash.ExtPerceptionHash(img, hashWidth, hashHeight)
	if err != nil {
		return nil, apperror.New(apperror.EmbeddingModel, "ClipEmbedder.Embed", err)
	}

	bits := hash.GetHash()
	vec := make([]float32, 0, Dims)
	for _, word := range bits {
		for i := 0; i < 64 && len(vec) < Dims; i++ {
			if word&(1<<uint(i)) != 0 {
				vec = append(vec, 1)
			} else {
				vec = append(vec, -1)
			}
		}
	}
	if len(vec) != Dims {
		return nil, apperror.New(apperror.EmbeddingModel, "ClipEmbedder.Embed",
			fmt.Errorf("projected %d dims, want %d", len(vec), Dims))
	}
	return vec, nil
}
