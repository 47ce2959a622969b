package coordinator

import "testing"

func TestStateTerminal(t *testing.T) {
	cases := map[State]bool{
		StateIntent:     false,
		StateQueued:     false,
		StateDecoded:    false,
		StateCatalogued: true,
		StateAnnotated:  true,
		StateOrphaned:   true,
	}
	for state, want := range cases {
		if got := state.Terminal(); got != want {
			t.Errorf("State(%q).Terminal() = %v, want %v", state, got, want)
		}
	}
}
