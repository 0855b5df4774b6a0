// Released under an MIT license. See LICENSE.

package demo

import (
	"testing"
)

func TestNames(t *testing.T) {
	want := []string{"class", "closure", "prototype"}

	got := Names()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}

		if s, ok := Script(got[i]); !ok || s == "" {
			t.Errorf("missing script for %s", got[i])
		}
	}

	if _, ok := Script("missing"); ok {
		t.Fail()
	}
}
