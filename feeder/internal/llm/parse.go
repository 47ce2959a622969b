package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// semiStructuredWire is the on-the-wire shape of a PromptSemiStructured
// response, keyed exactly as spec.md §4.6 specifies.
type semiStructuredWire struct {
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Theme       string   `json:"theme"`
	Alt         string   `json:"alt"`
	Caption     string   `json:"caption"`
}

// ParseSemiStructured decodes a PromptSemiStructured backend response.
// Backends occasionally wrap the JSON in a code fence or leading/trailing
// prose despite being told not to; both are stripped before decoding.
// Any decode failure is returned as-is, and the caller must treat it as
// all-or-nothing: no fields are salvaged from a malformed response.
func ParseSemiStructured(raw string) (SemiStructured, error) {
	body := stripCodeFence(raw)

	var wire semiStructuredWire
	if err := json.Unmarshal([]byte(body), &wire); err != nil {
		return SemiStructured{}, fmt.Errorf("llm: parse semi-structured response: %w", err)
	}

	return SemiStructured{
		Tags:        wire.Tags,
		Description: wire.Description,
		Theme:       wire.Theme,
		AltText:     wire.Alt,
		AriaText:    wire.Caption,
	}, nil
}

// stripCodeFence trims a surrounding ```json ... ``` or ``` ... ``` fence
// and any text outside the outermost {...} pair, if present.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return s
	}
	return s[start : end+1]
}

// ParseTags splits a comma-separated tag response into a trimmed,
// non-empty tag slice. Backends occasionally wrap the list in a
// trailing period or surrounding quotes; both are stripped.
func ParseTags(raw string) []string {
	raw = strings.Trim(strings.TrimSpace(raw), `."'`)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `."'`)
		if p == "" {
			continue
		}
		tags = append(tags, p)
	}
	return tags
}
