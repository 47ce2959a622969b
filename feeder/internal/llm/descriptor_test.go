package llm

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type fakeBackend struct {
	answer string
	err    error
}

func (f *fakeBackend) Ask(_ context.Context, _ PromptKind, _ string) (string, error) {
	return f.answer, f.err
}

func TestDescribeParsesAWellFormedSemiStructuredResponse(t *testing.T) {
	backend := &fakeBackend{answer: `{
		"tags": ["bicycle", "red", "wall"],
		"description": "a red bicycle leaning against a wall",
		"theme": "street photography",
		"alt": "A red bicycle leaning against a brick wall.",
		"caption": "Red bicycle against brick wall"
	}`}

	out, err := Describe(context.Background(), backend, "data:image/webp;base64,Zm9v")
	if err != nil {
		t.Fatalf("Describe() error = %v, want nil", err)
	}
	if out.Description == "" || out.Theme == "" || out.AltText == "" || out.AriaText == "" {
		t.Fatalf("Describe() left fields empty: %+v", out)
	}
	if len(out.Tags) != 3 {
		t.Fatalf("Describe() tags = %v, want 3 entries", out.Tags)
	}
}

func TestDescribeToleratesACodeFencedResponse(t *testing.T) {
	backend := &fakeBackend{answer: "```json\n{\"tags\":[\"moon\"],\"description\":\"a moon\",\"theme\":\"night\",\"alt\":\"moon\",\"caption\":\"moon\"}\n```"}

	out, err := Describe(context.Background(), backend, "data:image/webp;base64,Zm9v")
	if err != nil {
		t.Fatalf("Describe() error = %v, want nil", err)
	}
	if out.Description != "a moon" {
		t.Fatalf("Describe() description = %q, want %q", out.Description, "a moon")
	}
}

func TestDescribeAbandonsTheWholeStageOnMalformedJSON(t *testing.T) {
	backend := &fakeBackend{answer: "a mountain at sunset, no JSON here"}

	out, err := Describe(context.Background(), backend, "data:image/webp;base64,Zm9v")
	if err == nil {
		t.Fatal("Describe() error = nil, want a parse error")
	}
	if out.Description != "" || out.Tags != nil || out.Theme != "" || out.AltText != "" || out.AriaText != "" {
		t.Fatalf("Describe() should discard every field on parse failure, got %+v", out)
	}
}

func TestDescribePropagatesABackendFailureWithoutParsing(t *testing.T) {
	wantErr := errors.New("upstream timeout")
	backend := &fakeBackend{err: wantErr}

	out, err := Describe(context.Background(), backend, "data:image/webp;base64,Zm9v")
	if !errors.Is(err, wantErr) {
		t.Fatalf("Describe() error = %v, want %v", err, wantErr)
	}
	if !reflect.DeepEqual(out, SemiStructured{}) {
		t.Fatalf("Describe() = %+v, want zero value", out)
	}
}
