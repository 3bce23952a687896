package training

import (
	"fmt"

	"github.com/2beens/gymlog/internal/validation"
)

type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeDenied
	OutcomeInvalid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeDenied:
		return "denied"
	case OutcomeInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

type DenialReason string

const (
	// DeniedNotFound also covers records owned by someone else.
	DeniedNotFound         DenialReason = "not-found"
	DeniedNotPlanSession   DenialReason = "not-plan-session"
	DeniedNotInPlan        DenialReason = "not-in-plan"
	DeniedSessionCompleted DenialReason = "session-completed"
	DeniedAlreadyCompleted DenialReason = "already-completed"
)

// Denial is a refused operation. Redirect is the safe view to send the caller to.
type Denial struct {
	Reason   DenialReason
	Redirect string
}

func newDenial(reason DenialReason, sessionID int) Denial {
	d := Denial{Reason: reason, Redirect: "/sessions"}
	switch reason {
	case DeniedNotInPlan, DeniedAlreadyCompleted:
		d.Redirect = planViewPath(sessionID)
	case DeniedSessionCompleted:
		d.Redirect = sessionPath(sessionID)
	}
	return d
}

// Result is the outcome of an engine operation. Value is set only for
// OutcomeOK, Denial only for OutcomeDenied, Fields only for OutcomeInvalid.
type Result[T any] struct {
	Outcome Outcome
	Value   T
	Denial  Denial
	Fields  []validation.FieldError
}

func (r Result[T]) OK() bool {
	return r.Outcome == OutcomeOK
}

func okResult[T any](v T) Result[T] {
	return Result[T]{Outcome: OutcomeOK, Value: v}
}

func deniedResult[T any](reason DenialReason, sessionID int) Result[T] {
	return Result[T]{Outcome: OutcomeDenied, Denial: newDenial(reason, sessionID)}
}

func invalidResult[T any](fields []validation.FieldError) Result[T] {
	return Result[T]{Outcome: OutcomeInvalid, Fields: fields}
}

func sessionPath(sessionID int) string {
	return fmt.Sprintf("/sessions/%d", sessionID)
}

func planViewPath(sessionID int) string {
	return fmt.Sprintf("/sessions/%d/plan", sessionID)
}

func freeLogPath(sessionID int) string {
	return fmt.Sprintf("/sessions/%d/exercises", sessionID)
}
