package jigsaw

import (
	"context"
	"fmt"

	"github.com/birdayz/jigsaw/kpiece"
)

// Test helper: piece appending its name to the values it reads, so outputs
// show which pieces a value went through.
type tracePiece struct {
	name    string
	inputs  []string
	outputs []string
	closed  int
	err     error
}

func (p *tracePiece) Name() string      { return p.name }
func (p *tracePiece) Inputs() []string  { return p.inputs }
func (p *tracePiece) Outputs() []string { return p.outputs }

func (p *tracePiece) Compute(ctx context.Context, in kpiece.Values[string]) (kpiece.Values[string], error) {
	joined := ""
	for _, name := range p.inputs {
		v, err := kpiece.Lookup(in, p.name, name)
		if err != nil {
			return nil, err
		}
		joined += v
	}

	out := make(kpiece.Values[string], len(p.outputs))
	for _, name := range p.outputs {
		out[name] = fmt.Sprintf("%s(%s)", p.name, joined)
	}
	return out, nil
}

func (p *tracePiece) Close() error {
	p.closed++
	return p.err
}

func trace(name string, inputs []string, outputs ...string) *tracePiece {
	return &tracePiece{name: name, inputs: inputs, outputs: outputs}
}

// chain returns the pieces ab (a->b), bc (b->c) and cd (c->d).
func chain() (ab, bc, cd *tracePiece) {
	return trace("ab", []string{"a"}, "b"),
		trace("bc", []string{"b"}, "c"),
		trace("cd", []string{"c"}, "d")
}

func pieces(ps ...kpiece.Piece[string]) []kpiece.Piece[string] {
	return ps
}

func names(ps []kpiece.Piece[string]) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = kpiece.NameOf(p)
	}
	return out
}
