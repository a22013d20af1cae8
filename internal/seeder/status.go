package seeder

// State is the on-disk state of a single entry
type State int

const (
	StateMissing State = iota
	StateCurrent
	StateModified
)

func (s State) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateCurrent:
		return "current"
	case StateModified:
		return "modified"
	default:
		return "unknown"
	}
}

// EntryStatus pairs an entry with its state in a target directory
type EntryStatus struct {
	Filename string
	Path     string
	State    State
}
