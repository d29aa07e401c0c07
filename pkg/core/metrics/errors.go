// Package metrics provides the financial formula library. Every function is
// a pure transform over explicit numeric inputs. Failure never escapes a
// formula: functions that can fail return a *MetricError with a closed kind,
// everything else communicates degenerate input through forced-zero results.
package metrics

import "math"

// ErrKind enumerates the ways a metric computation can fail.
type ErrKind string

const (
	ErrMissingPrerequisite ErrKind = "missing_prerequisite"
	ErrDegenerateInput     ErrKind = "degenerate_input"
	ErrCoercionFailure     ErrKind = "coercion_failure"
	ErrSolverFailure       ErrKind = "solver_failure"
)

// MetricError is the error-shaped metric result.
type MetricError struct {
	Kind   ErrKind `json:"kind"`
	Reason string  `json:"error"`
}

func (e *MetricError) Error() string { return e.Reason }

func degenerate(reason string) *MetricError {
	return &MetricError{Kind: ErrDegenerateInput, Reason: reason}
}

// round4 and round2 reproduce the reference output precision: four decimals
// for ratios, two for percentages and currency amounts.
func round4(v float64) float64 { return math.Round(v*1e4) / 1e4 }
func round2(v float64) float64 { return math.Round(v*1e2) / 1e2 }
