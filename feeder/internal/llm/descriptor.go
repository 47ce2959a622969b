// Package llm implements C6: generating human-facing descriptors for a
// processed image (tags, description, theme, alt text, aria caption)
// through a pluggable multimodal backend.
package llm

import "context"

// PromptKind selects which question is put to the backend for a given
// image. Each kind maps to a fixed prompt string (kept in this file)
// rather than letting callers build arbitrary prompts, so responses
// stay parseable.
type PromptKind int

const (
	// PromptSemiStructured is the descriptor stage's default prompt: a
	// single JSON object carrying every descriptor field in one round
	// trip (spec §4.6).
	PromptSemiStructured PromptKind = iota
	// PromptDescription and PromptTags are free-form prompt modes the
	// descriptor engine also exposes to callers, even though the
	// coordinator's default dispatch only uses PromptSemiStructured.
	PromptDescription
	PromptTags
)

func (k PromptKind) prompt() string {
	switch k {
	case PromptSemiStructured:
		return "Describe this image and respond with ONLY a single JSON object, no preamble or code fences, " +
			`with exactly these keys: "tags" (an array of up to twenty lowercase strings), ` +
			`"description" (one or two sentences describing the image), ` +
			`"theme" (a single word or short phrase naming the dominant subject, e.g. nature, portrait, architecture, food), ` +
			`"alt" (a concise HTML alt-text attribute for screen readers), ` +
			`"caption" (an aria-label under fifteen words for assistive technology).`
	case PromptDescription:
		return "What is in this image? Answer in one or two sentences."
	case PromptTags:
		return "Please provide a list of tags in the format of comma sepparated values for this image. Make it not more than twenty please the expected format `tag1,tag2,tag3`"
	default:
		return "Describe this image."
	}
}

// Backend is a multimodal model capable of answering a PromptKind
// question about an image given as a data URL.
type Backend interface {
	// Ask sends imageDataURL (a "data:<mime>;base64,..." URL) along with
	// the prompt for kind and returns the raw text response. A network
	// or upstream failure is returned as a typed apperror; the caller
	// does not retry it (spec §4.6: "the coordinator does not retry
	// these").
	Ask(ctx context.Context, kind PromptKind, imageDataURL string) (string, error)
}

// SemiStructured is the descriptor bundle attached to a catalogued
// image once the backend's JSON response has been parsed.
type SemiStructured struct {
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
	Theme       string   `json:"theme,omitempty"`
	AltText     string   `json:"alt_text,omitempty"`
	AriaText    string   `json:"aria_text,omitempty"`
}

// Describe asks backend for a single PromptSemiStructured answer and
// parses it as JSON. A malformed or unparseable response abandons the
// whole descriptor stage: Describe returns a zero-value SemiStructured
// and the parse error, rather than any partially-recovered fields
// (spec §4.6, §8 scenario 3 — malformed JSON leaves description null
// and aria/alt/theme empty, the Gallery row itself is unaffected).
func Describe(ctx context.Context, backend Backend, imageDataURL string) (SemiStructured, error) {
	raw, err := backend.Ask(ctx, PromptSemiStructured, imageDataURL)
	if err != nil {
		return SemiStructured{}, err
	}

	out, err := ParseSemiStructured(raw)
	if err != nil {
		return SemiStructured{}, err
	}
	return out, nil
}
