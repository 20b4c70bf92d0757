package sample

import (
	"fmt"
	"time"
)

// Message is the sample record sent to the parser under test. Field
// semantics mirror the pick/drop driver's publish schema; only the
// serialized shape matters to the framing scenarios.
type Message struct {
	Res              int     `json:"res"`
	DriverInstanceID int     `json:"driver_instance_id"`
	SeqNo            uint64  `json:"seq_no"`
	PubTimestamp     int64   `json:"pub_timestamp"`
	Command          int     `json:"command"`
	Measure          int     `json:"measure"`
	WorkType         int     `json:"work_type"`
	Payload          Payload `json:"payload"`
}

// Payload carries the randomized work fields of a sample message.
type Payload struct {
	ForkHeightMM  int    `json:"fork_height_mm"`
	ForkForwardMM int    `json:"fork_forward_mm"`
	Note          string `json:"note"`
}

// Terminator selects the byte appended after each serialized message.
type Terminator string

const (
	// TerminatorNone leaves the JSON body bare; the receiver must frame by
	// content alone.
	TerminatorNone Terminator = "none"

	// TerminatorNewline appends a single '\n' so the receiver can frame by
	// delimiter.
	TerminatorNewline Terminator = "newline"
)

// ParseTerminator validates a terminator mode string.
func ParseTerminator(s string) (Terminator, error) {
	switch Terminator(s) {
	case TerminatorNone, TerminatorNewline:
		return Terminator(s), nil
	default:
		return "", fmt.Errorf("terminator must be %q or %q, got %q", TerminatorNone, TerminatorNewline, s)
	}
}

func nowUnixMilli() int64 { return time.Now().UnixMilli() }
