package ports

// SampleEncoder produces one fully serialized message per sequence number.
// The returned byte slice is the frame payload exactly as it should appear
// on the wire, terminator included; the simulator never modifies it.
type SampleEncoder interface {
	Encode(seqNo uint64, res int) ([]byte, error)
}
