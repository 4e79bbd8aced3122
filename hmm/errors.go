package hmm

import "errors"

var (
	// ErrShapeMismatch is returned when model parameters disagree on the number of states.
	ErrShapeMismatch = errors.New("hmm: shape mismatch")
	// ErrUnknownObservation is returned when a discrete emission sees a value outside its vocabulary.
	ErrUnknownObservation = errors.New("hmm: unknown observation")
	// ErrEmptyEvidence is returned when decoding an empty observation sequence.
	ErrEmptyEvidence = errors.New("hmm: empty evidence")
)
