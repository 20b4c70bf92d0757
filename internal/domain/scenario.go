package domain

import "fmt"

// Scenario selects which delivery algorithm a send exercises. Each variant
// reproduces one edge case a length- or delimiter-based frame reader must
// handle on a TCP stream.
type Scenario int

const (
	// AtomicFrame delivers one complete message in a single write.
	AtomicFrame Scenario = iota + 1

	// FragmentedFrame delivers one message split into several jittered
	// partial writes.
	FragmentedFrame

	// IncompleteFrame delivers a message truncated mid-frame, forcing the
	// receiver to park it in a reassembly buffer.
	IncompleteFrame

	// CoalescedFrames delivers two consecutive messages back-to-back in a
	// single write, forcing the receiver to split them itself.
	CoalescedFrames
)

// String returns the scenario name as shown in logs and menus.
func (s Scenario) String() string {
	switch s {
	case AtomicFrame:
		return "AtomicFrame"
	case FragmentedFrame:
		return "FragmentedFrame"
	case IncompleteFrame:
		return "IncompleteFrame"
	case CoalescedFrames:
		return "CoalescedFrames"
	default:
		return fmt.Sprintf("Scenario(%d)", int(s))
	}
}

// ParseScenario maps an interactive command key ("1".."4") to a Scenario.
func ParseScenario(key string) (Scenario, bool) {
	switch key {
	case "1":
		return AtomicFrame, true
	case "2":
		return FragmentedFrame, true
	case "3":
		return IncompleteFrame, true
	case "4":
		return CoalescedFrames, true
	default:
		return 0, false
	}
}
