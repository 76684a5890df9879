package contactform

// State is the submission lifecycle of a form.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateError
)

var stateNames = [...]string{
	StateIdle:       "idle",
	StateSubmitting: "submitting",
	StateSuccess:    "success",
	StateError:      "error",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
