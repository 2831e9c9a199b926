// ABOUTME: Explicit registry of arithmetic operations keyed by name.
// ABOUTME: Populated at startup; replaces runtime plugin discovery.
package ops

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Domain errors returned by operations. A failed computation is reported to
// the user and never recorded in history.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrModuloByZero   = errors.New("modulo by zero")
)

// Operation is one arithmetic command: a name, a display symbol, and the
// binary function it applies.
type Operation struct {
	Name   string
	Symbol string
	Short  string
	Apply  func(a, b float64) (float64, error)
}

// Registry maps operation names to implementations.
type Registry struct {
	ops map[string]Operation
}

// NewRegistry returns a registry populated with the built-in operations.
func NewRegistry() *Registry {
	r := &Registry{ops: make(map[string]Operation)}

	r.Register(Operation{
		Name:   "add",
		Symbol: "+",
		Short:  "Add two numbers",
		Apply:  func(a, b float64) (float64, error) { return a + b, nil },
	})
	r.Register(Operation{
		Name:   "subtract",
		Symbol: "-",
		Short:  "Subtract the second number from the first",
		Apply:  func(a, b float64) (float64, error) { return a - b, nil },
	})
	r.Register(Operation{
		Name:   "multiply",
		Symbol: "*",
		Short:  "Multiply two numbers",
		Apply:  func(a, b float64) (float64, error) { return a * b, nil },
	})
	r.Register(Operation{
		Name:   "divide",
		Symbol: "/",
		Short:  "Divide the first number by the second",
		Apply: func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, ErrDivisionByZero
			}
			return a / b, nil
		},
	})
	r.Register(Operation{
		Name:   "power",
		Symbol: "^",
		Short:  "Raise the first number to the power of the second",
		Apply:  func(a, b float64) (float64, error) { return math.Pow(a, b), nil },
	})
	r.Register(Operation{
		Name:   "mod",
		Symbol: "%",
		Short:  "Remainder of dividing the first number by the second",
		Apply: func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, ErrModuloByZero
			}
			return math.Mod(a, b), nil
		},
	})

	return r
}

// Register adds an operation, replacing any existing one with the same name.
func (r *Registry) Register(op Operation) {
	r.ops[op.Name] = op
}

// Get returns the named operation.
func (r *Registry) Get(name string) (Operation, error) {
	op, ok := r.ops[name]
	if !ok {
		return Operation{}, fmt.Errorf("unknown operation %q", name)
	}
	return op, nil
}

// Names returns the registered operation names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
