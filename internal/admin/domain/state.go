package domain

// State is the lifecycle state of a record. Records are never hard-deleted;
// deactivation flips them to StateInactive and reactivation brings them back.
type State string

const (
	StateActive   State = "active"
	StateInactive State = "inactive"
)

// IsValid reports whether s is one of the two known states.
func (s State) IsValid() bool {
	return s == StateActive || s == StateInactive
}

func (s State) String() string { return string(s) }
