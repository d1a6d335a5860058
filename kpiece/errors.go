package kpiece

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingInput is matched by every MissingInputError.
var ErrMissingInput = errors.New("missing input")

// MissingInputError reports values a piece required but did not receive.
type MissingInputError struct {
	// Piece is the display name of the piece that looked up the values.
	Piece string

	// Names lists the missing names in declaration order.
	Names []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s: piece %q requires [%s]", ErrMissingInput, e.Piece, strings.Join(e.Names, ", "))
}

func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}

// Lookup returns the value stored under name, or a MissingInputError naming
// piece if there is none.
func Lookup[V any](in Values[V], piece, name string) (V, error) {
	v, ok := in[name]
	if !ok {
		var zero V
		return zero, &MissingInputError{Piece: piece, Names: []string{name}}
	}
	return v, nil
}

// CheckInputs verifies that in holds a value for every name returned by
// RequiredInputs(p).
// All missing names are reported at once.
func CheckInputs[V any](p Piece[V], in Values[V]) error {
	var missing []string
	for _, name := range RequiredInputs(p) {
		if _, ok := in[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingInputError{Piece: NameOf(p), Names: missing}
	}
	return nil
}
