// SPDX-License-Identifier: MIT
// Package: matrixlab/calculator
//
// operation.go: the closed set of operations the calculator dispatches.
//
// Design:
//   • Operation is a small int enum with stable ordering and lowercase names.
//   • Names double as CLI subcommands, so ParseOperation is their inverse.

package calculator

import (
	"fmt"
	"strings"
)

// Operation enumerates the calculator operations.
type Operation int

// Enum values (stable ordering).
const (
	OpAdd       Operation = iota // A + B
	OpSub                        // A − B
	OpMul                        // A · B
	OpTranspose                  // Aᵀ
	OpDet                        // det(A)
	OpInverse                    // A⁻¹
	OpTrace                      // tr(A)
	OpEigen                      // eigenvalues(A)
)

var opNames = [...]string{
	OpAdd:       "add",
	OpSub:       "sub",
	OpMul:       "mul",
	OpTranspose: "transpose",
	OpDet:       "det",
	OpInverse:   "inverse",
	OpTrace:     "trace",
	OpEigen:     "eigen",
}

// opAliases are accepted by ParseOperation in addition to the canonical names.
var opAliases = map[string]Operation{
	"determinant": OpDet,
	"eigenvalues": OpEigen,
}

// Operations returns every operation in enum order.
func Operations() []Operation {
	out := make([]Operation, len(opNames))
	for i := range opNames {
		out[i] = Operation(i)
	}

	return out
}

// Valid reports whether op is one of the declared operations.
func (op Operation) Valid() bool {
	return op >= OpAdd && op <= OpEigen
}

// String provides the canonical lowercase name ("unknown" otherwise).
func (op Operation) String() string {
	if !op.Valid() {
		return "unknown"
	}

	return opNames[op]
}

// Arity reports how many operands op consumes: 2 for add, sub and mul, 1 otherwise.
func (op Operation) Arity() int {
	switch op {
	case OpAdd, OpSub, OpMul:
		return 2
	default:
		return 1
	}
}

// ParseOperation maps a case-insensitive name (or alias) to its Operation.
func ParseOperation(name string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range opNames {
		if n == key {
			return Operation(i), nil
		}
	}
	if op, ok := opAliases[key]; ok {
		return op, nil
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownOperation)
}
