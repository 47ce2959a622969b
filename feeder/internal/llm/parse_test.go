package llm

import (
	"reflect"
	"testing"
)

func TestParseTagsSplitsAndTrims(t *testing.T) {
	got := ParseTags(" cat, dog ,  sunset, beach.")
	want := []string{"cat", "dog", "sunset", "beach"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseTags() = %v, want %v", got, want)
	}
}

func TestParseTagsEmptyInput(t *testing.T) {
	if got := ParseTags("   "); got != nil {
		t.Fatalf("ParseTags(empty) = %v, want nil", got)
	}
}

func TestParseTagsDropsEmptyEntries(t *testing.T) {
	got := ParseTags("cat,,dog")
	want := []string{"cat", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseTags() = %v, want %v", got, want)
	}
}

func TestParseSemiStructuredDecodesEveryField(t *testing.T) {
	raw := `{"tags":["cat","sunset"],"description":"a cat watching a sunset","theme":"nature","alt":"A cat watching a sunset.","caption":"Cat at sunset"}`

	out, err := ParseSemiStructured(raw)
	if err != nil {
		t.Fatalf("ParseSemiStructured() error = %v", err)
	}
	want := SemiStructured{
		Tags:        []string{"cat", "sunset"},
		Description: "a cat watching a sunset",
		Theme:       "nature",
		AltText:     "A cat watching a sunset.",
		AriaText:    "Cat at sunset",
	}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("ParseSemiStructured() = %+v, want %+v", out, want)
	}
}

func TestParseSemiStructuredRejectsNonJSON(t *testing.T) {
	if _, err := ParseSemiStructured("sure, here is a description: a cat"); err == nil {
		t.Fatal("ParseSemiStructured() error = nil, want a parse error")
	}
}
