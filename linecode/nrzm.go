// Package linecode implements the line-coding and scrambling layers
// between the raw recovered bit stream and CCSDS frame sync: NRZ-M
// differential decoding and the CCSDS pseudo-random (PN) descrambler.
package linecode

// State carries NRZ-M's differential seed. Grounded on
// original_source/_nrzm.c's struct sync_mark: Previous and Inverse
// must persist across an entire buffer, not reset at chunk/byte
// boundaries — nrzm_decode/nrzm_encode declare one struct sync_mark
// outside their byte-chunking loop, unlike the buggy
// ccsds_pipe_nrzm_decode variant that resets Previous=0 every byte
// (spec.md §9's resolved Open Question: this package follows
// nrzm_decode, not the pipe variant).
type State struct {
	Previous int
	Inverse  int
}

// NewState returns a fresh NRZ-M state (Previous=0, Inverse=0), ready
// to decode or encode an entire buffer.
func NewState() *State {
	return &State{}
}

// Decode applies NRZ-M differential decoding to bits (one 0/1 value
// per byte) in place, using and mutating s. Calling Decode repeatedly
// on the same State across successive chunks of one logical stream is
// equivalent to calling it once on the concatenation — the defining
// property the whole-buffer-carry semantics exists to preserve.
func (s *State) Decode(bits []byte) {
	for i, in := range bits {
		out := (int(in) ^ s.Previous) ^ s.Inverse
		bits[i] = byte(out)
		s.Previous = int(in) // seeded from the raw input bit, not out
	}
}

// Encode applies NRZ-M differential encoding to bits in place. Unlike
// Decode, the seed carried forward is the *output* bit
// (original_source/_nrzm.c's math_nrzm_encode sets
// v->previous = output[i], not input[i]).
func (s *State) Encode(bits []byte) {
	for i, in := range bits {
		out := (int(in) ^ s.Previous) ^ s.Inverse
		bits[i] = byte(out)
		s.Previous = out
	}
}

// Decode is a convenience wrapper for one-shot, whole-buffer NRZ-M
// decoding with a fresh state.
func Decode(bits []byte) []byte {
	out := make([]byte, len(bits))
	copy(out, bits)
	NewState().Decode(out)
	return out
}

// Encode is the one-shot counterpart of Decode.
func Encode(bits []byte) []byte {
	out := make([]byte, len(bits))
	copy(out, bits)
	NewState().Encode(out)
	return out
}
