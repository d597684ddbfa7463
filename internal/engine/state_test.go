package engine

import (
	"testing"

	"github.com/neonvision/lang-engine/internal/types"
)

func TestDecisionStates(t *testing.T) {
	u := Undetermined()
	if u.Tag() != types.TagPlain || u.Locked() {
		t.Errorf("Undetermined = %v", u)
	}

	tn := Tentative("rust")
	if tn.Tag() != "rust" || tn.Locked() {
		t.Errorf("Tentative = %v", tn)
	}

	lk := Locked("rust")
	if lk.Tag() != "rust" || !lk.Locked() {
		t.Errorf("Locked = %v", lk)
	}
}

func TestTentativePlainCollapsesToUndetermined(t *testing.T) {
	for _, tag := range []string{"", types.TagPlain} {
		d := Tentative(tag)
		if d != Undetermined() {
			t.Errorf("Tentative(%q) = %v, want undetermined", tag, d)
		}
	}
}

func TestDecisionString(t *testing.T) {
	tests := []struct {
		d    Decision
		want string
	}{
		{Undetermined(), "undetermined"},
		{Tentative("rust"), "tentative(rust)"},
		{Locked("swift"), "locked(swift)"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
