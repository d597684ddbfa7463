package engine

import "github.com/neonvision/lang-engine/internal/types"

type phase uint8

const (
	phaseUndetermined phase = iota
	phaseTentative
	phaseLocked
)

// Decision is the per-document language decision: Undetermined, Tentative(tag)
// or Locked(tag). The tagged representation makes "locked without a language"
// unrepresentable.
type Decision struct {
	phase phase
	tag   string
}

// Undetermined is the initial decision of a fresh document.
func Undetermined() Decision {
	return Decision{}
}

// Tentative displays tag without freezing it; the next evaluation may still
// change it. A plain/empty tag collapses to Undetermined.
func Tentative(tag string) Decision {
	if tag == "" || tag == types.TagPlain {
		return Undetermined()
	}
	return Decision{phase: phaseTentative, tag: tag}
}

// Locked freezes tag against automatic change. Only a manual selection or an
// anchor strong-signal can move a locked document.
func Locked(tag string) Decision {
	return Decision{phase: phaseLocked, tag: tag}
}

// Tag returns the displayed language, or the undetermined sentinel.
func (d Decision) Tag() string {
	if d.phase == phaseUndetermined {
		return types.TagPlain
	}
	return d.tag
}

// Locked reports whether the decision is frozen.
func (d Decision) Locked() bool {
	return d.phase == phaseLocked
}

func (d Decision) String() string {
	switch d.phase {
	case phaseLocked:
		return "locked(" + d.tag + ")"
	case phaseTentative:
		return "tentative(" + d.tag + ")"
	default:
		return "undetermined"
	}
}
