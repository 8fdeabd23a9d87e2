package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		last       EventKind
		hasHistory bool
		want       EventKind
	}{
		{name: "no history punches in", last: "", hasHistory: false, want: KindIn},
		{name: "after out punches in", last: KindOut, hasHistory: true, want: KindIn},
		{name: "after in punches out", last: KindIn, hasHistory: true, want: KindOut},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextKind(tc.last, tc.hasHistory))
		})
	}
}

func TestNextKindAlternates(t *testing.T) {
	t.Parallel()

	last, hasHistory := EventKind(""), false
	for i := 0; i < 10; i++ {
		next := NextKind(last, hasHistory)
		if hasHistory {
			assert.NotEqual(t, last, next, "punch %d must flip the kind", i)
		}
		last, hasHistory = next, true
	}
}
