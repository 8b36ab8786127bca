package nn

import (
	"strings"

	"github.com/tenso-ml/tenso/internal/autodiff"
)

// Sequential is a container model that chains multiple models together.
//
// Each model's output becomes the next model's input.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 5, nn.Sigmoid{}, src),
//	    nn.NewLinear(5, 1, nn.Sigmoid{}, src),
//	)
type Sequential struct {
	models []Model
}

// NewSequential creates a new Sequential container.
func NewSequential(models ...Model) *Sequential {
	return &Sequential{models: models}
}

// Forward applies all models in sequence.
func (s *Sequential) Forward(g *autodiff.Graph, x autodiff.NodeID) autodiff.NodeID {
	out := x
	for _, m := range s.models {
		out = m.Forward(g, out)
	}
	return out
}

// ForEachVariable walks the Variables of every contained model.
func (s *Sequential) ForEachVariable(fn func(v *autodiff.Variable)) {
	for _, m := range s.models {
		m.ForEachVariable(fn)
	}
}

// Len returns the number of contained models.
func (s *Sequential) Len() int {
	return len(s.models)
}

// String lists the contained models.
func (s *Sequential) String() string {
	var b strings.Builder
	b.WriteString("Sequential(")
	for i, m := range s.models {
		if i > 0 {
			b.WriteString(", ")
		}
		if str, ok := m.(interface{ String() string }); ok {
			b.WriteString(str.String())
		} else {
			b.WriteString("?")
		}
	}
	b.WriteString(")")
	return b.String()
}
