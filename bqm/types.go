// Package bqm defines core types, options, and sentinel errors
// for the binary quadratic model subpackage of github.com/spinglass/qubo.
package bqm

import (
	"errors"
	"strings"
)

// Sentinel errors for model operations. All public operations return these
// sentinels (never panic on user input); tests and callers match them via
// errors.Is.
var (
	// ErrUnknownVartype indicates a vartype outside {Binary, Spin}.
	ErrUnknownVartype = errors.New("bqm: unknown vartype")
	// ErrSelfLoop indicates an interaction whose two endpoints are the same variable.
	ErrSelfLoop = errors.New("bqm: self-interaction not allowed")
	// ErrDuplicatePair indicates an unordered pair defined twice with conflicting weights.
	ErrDuplicatePair = errors.New("bqm: conflicting duplicate interaction")
	// ErrNonFiniteCoefficient indicates a NaN or ±Inf bias, weight, or offset.
	ErrNonFiniteCoefficient = errors.New("bqm: coefficient is NaN or Inf")
	// ErrVariableNotFound indicates an operation referenced a variable absent from the model.
	ErrVariableNotFound = errors.New("bqm: variable not found")
	// ErrSameVariable indicates a contraction was requested with identical endpoints.
	ErrSameVariable = errors.New("bqm: contraction endpoints must differ")
	// ErrSampleIncomplete indicates a sample that does not assign every model
	// variable exactly once (missing or extraneous entries).
	ErrSampleIncomplete = errors.New("bqm: sample does not match model variables")
	// ErrValueOutOfDomain indicates a sample value outside the model's vartype domain.
	ErrValueOutOfDomain = errors.New("bqm: sample value outside vartype domain")
	// ErrDimensionMismatch indicates a dense matrix whose shape does not match
	// the variable list.
	ErrDimensionMismatch = errors.New("bqm: dense matrix dimension mismatch")
	// ErrDuplicateVariable indicates a repeated name in an explicit variable list.
	ErrDuplicateVariable = errors.New("bqm: duplicate variable name")
)

// Vartype selects the domain of every variable in a Model.
type Vartype int

const (
	// Binary variables take values in {0, 1} (QUBO convention).
	Binary Vartype = iota
	// Spin variables take values in {-1, +1} (Ising convention).
	Spin
)

// String renders the canonical vartype name.
func (vt Vartype) String() string {
	switch vt {
	case Binary:
		return "BINARY"
	case Spin:
		return "SPIN"
	default:
		return "UNKNOWN"
	}
}

// ParseVartype converts a case-insensitive vartype name ("binary", "SPIN", …)
// into a Vartype, or returns ErrUnknownVartype.
func ParseVartype(s string) (Vartype, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BINARY":
		return Binary, nil
	case "SPIN":
		return Spin, nil
	default:
		return 0, ErrUnknownVartype
	}
}

// valid reports whether vt is a known vartype.
func (vt Vartype) valid() bool {
	return vt == Binary || vt == Spin
}

// Interaction is one sparse quadratic coefficient: Weight multiplies the
// product of variables U and V. The pair is unordered; (U,V) and (V,U)
// describe the same term.
type Interaction struct {
	U, V   string
	Weight float64
}

// Sample assigns one value, in the model's vartype domain, to every model
// variable. Values are int8 in either domain: {0,1} for Binary, {-1,+1}
// for Spin.
type Sample map[string]int8
