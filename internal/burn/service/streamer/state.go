package streamer

// State is the refresh cycle position of the adapter.
type State int

const (
	Idle State = iota
	Fetching
	Merging
	Rendered
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case Merging:
		return "merging"
	case Rendered:
		return "rendered"
	default:
		return "unknown"
	}
}
