package barrier

// Phase is the value of the shared phase counter. It only ever moves forward
// by one step at a time during a run.
type Phase uint32

const (
	Setup Phase = iota
	BeforeStamp
	StampSimultaneous
	StampRelay

	numPhases
)

var phaseNames = [numPhases]string{
	Setup:             "setup",
	BeforeStamp:       "before-stamp",
	StampSimultaneous: "stamp-simultaneous",
	StampRelay:        "stamp-relay",
}

// Valid reports if the phase is one of the defined phases.
func (p Phase) Valid() bool { return p < numPhases }

func (p Phase) String() string {
	if !p.Valid() {
		return "invalid"
	}
	return phaseNames[p]
}
