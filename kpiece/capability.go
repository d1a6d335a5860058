package kpiece

// Parameter is a named trainable value owned by a piece.
type Parameter struct {
	Name  string
	Value any
}

// Trainable is implemented by pieces that own trainable parameters. Training
// loops find them with jigsaw.Extract rather than through the Piece
// interface, which stays free of any training concerns.
type Trainable interface {
	Parameters() []*Parameter
}

// TrainablePiece attaches parameters to a FuncPiece by composition.
type TrainablePiece[V any] struct {
	*FuncPiece[V]
	params []*Parameter
}

// NewTrainableFunc is like NewFunc, but the returned piece also implements
// Trainable.
func NewTrainableFunc[V any](name string, inputs, outputs []string, fn ComputeFunc[V], params []*Parameter, opts ...FuncOption[V]) *TrainablePiece[V] {
	return &TrainablePiece[V]{
		FuncPiece: NewFunc(name, inputs, outputs, fn, opts...),
		params:    params,
	}
}

func (t *TrainablePiece[V]) Parameters() []*Parameter {
	return t.params
}

// External is implemented by pieces whose Inputs include names they produce
// themselves, such as composites. ExternalInputs returns only the names that
// have to be supplied from outside.
type External interface {
	ExternalInputs() []string
}

// RequiredInputs returns the names p needs from its caller: ExternalInputs if
// p implements External, Inputs otherwise.
func RequiredInputs[V any](p Piece[V]) []string {
	if e, ok := p.(External); ok {
		return e.ExternalInputs()
	}
	return p.Inputs()
}
