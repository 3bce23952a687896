package training

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/catalog"
	"github.com/2beens/gymlog/internal/clock"
	"github.com/2beens/gymlog/internal/plans"
	"github.com/2beens/gymlog/internal/reps"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/internal/validation"
)

const (
	RecentSessionsCount = 3

	defaultPlanReps     = "12"
	defaultPlanRestTime = 60
)

type exerciseCatalog interface {
	GetExercise(ctx context.Context, id int) (*catalog.Exercise, error)
}

type LogResult struct {
	LogID int    `json:"logId"`
	Next  string `json:"next"`
}

// PlanLogForm holds what a client needs to log one plan exercise: the catalog
// entry, pre-filled values and the previous execution, if there is one.
type PlanLogForm struct {
	SessionID int              `json:"sessionId"`
	Exercise  catalog.Exercise `json:"exercise"`
	Defaults  LogInput         `json:"defaults"`
	Last      *LoggedExercise  `json:"last"`
}

// Service is the session engine. Every call re-checks ownership inside its
// own transaction; nothing about a session is cached between calls.
type Service struct {
	store   Store
	catalog exerciseCatalog
	clock   clock.Clock
	metrics *metrics.Manager
}

func NewService(store Store, catalog exerciseCatalog, clk clock.Clock, metricsManager *metrics.Manager) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		clock:   clk,
		metrics: metricsManager,
	}
}

func (s *Service) StartFreeSession(ctx context.Context, userID string) (res Result[int], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.start-free")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()

	return s.startSession(ctx, userID, nil, "free")
}

// StartPlanSession does not check who owns the plan. Every later operation on
// the session does its own checks.
func (s *Service) StartPlanSession(ctx context.Context, userID string, planID int) (res Result[int], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.start-plan")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	return s.startSession(ctx, userID, &planID, "plan")
}

func (s *Service) startSession(ctx context.Context, userID string, planID *int, kind string) (Result[int], error) {
	var res Result[int]
	err := s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		sessionID, err := tx.CreateSession(ctx, &Session{
			UserID: userID,
			PlanID: planID,
			Date:   s.clock.Now(),
		})
		if err != nil {
			if errors.Is(err, plans.ErrPlanNotFound) {
				res = deniedResult[int](DeniedNotFound, 0)
				return nil
			}
			return err
		}
		res = okResult(sessionID)
		return nil
	})
	if err != nil {
		return Result[int]{}, fmt.Errorf("start %s session: %w", kind, err)
	}

	if res.OK() {
		s.metrics.CounterSessionsStarted.WithLabelValues(kind).Inc()
		log.Debugf("training: %s session %d started by %s", kind, res.Value, userID)
	}
	return res, nil
}

// LogExercise records a freeform execution. The same exercise may be logged
// any number of times per session.
func (s *Service) LogExercise(ctx context.Context, sessionID int, callerID string, exerciseID int, in LogInput) (res Result[LogResult], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.log-exercise")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID), attribute.Int("exercise.id", exerciseID))

	entry, fieldErrs, err := newLogEntry(sessionID, exerciseID, in)
	if err != nil {
		return Result[LogResult]{}, err
	}
	if fieldErrs != nil {
		return invalidResult[LogResult](fieldErrs), nil
	}

	err = s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		session, err := ownedSession(ctx, tx, sessionID, callerID, true)
		if err != nil {
			return err
		}
		if session == nil {
			res = deniedResult[LogResult](DeniedNotFound, sessionID)
			return nil
		}
		if session.IsCompleted {
			res = deniedResult[LogResult](DeniedSessionCompleted, sessionID)
			return nil
		}

		exercise, err := s.catalog.GetExercise(ctx, exerciseID)
		if err != nil {
			if errors.Is(err, catalog.ErrExerciseNotFound) {
				res = deniedResult[LogResult](DeniedNotFound, sessionID)
				return nil
			}
			return fmt.Errorf("lookup exercise %d: %w", exerciseID, err)
		}
		entry.ExerciseName = exercise.Name

		logID, err := tx.AddLog(ctx, entry)
		if err != nil {
			return err
		}
		res = okResult(LogResult{LogID: logID, Next: freeLogPath(sessionID)})
		return nil
	})
	if err != nil {
		return Result[LogResult]{}, fmt.Errorf("log exercise: %w", err)
	}

	if res.OK() {
		s.metrics.CounterExercisesLogged.WithLabelValues("free").Inc()
	}
	return res, nil
}

// LogExerciseFromPlan records an execution of one of the session's plan
// exercises. Plan membership is checked against the plan as it is now.
func (s *Service) LogExerciseFromPlan(ctx context.Context, sessionID, exerciseID int, callerID string, in LogInput) (res Result[LogResult], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.log-plan-exercise")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID), attribute.Int("exercise.id", exerciseID))

	entry, fieldErrs, err := newLogEntry(sessionID, exerciseID, in)
	if err != nil {
		return Result[LogResult]{}, err
	}
	if fieldErrs != nil {
		return invalidResult[LogResult](fieldErrs), nil
	}

	err = s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		session, plan, reason, err := ownedPlanSession(ctx, tx, sessionID, callerID, true)
		if err != nil {
			return err
		}
		if reason != "" {
			res = deniedResult[LogResult](reason, sessionID)
			return nil
		}
		if session.IsCompleted {
			res = deniedResult[LogResult](DeniedSessionCompleted, sessionID)
			return nil
		}

		planExercise, found := plan.Exercise(exerciseID)
		if !found {
			res = deniedResult[LogResult](DeniedNotInPlan, sessionID)
			return nil
		}
		entry.ExerciseName = planExercise.ExerciseName

		logID, err := tx.AddLog(ctx, entry)
		if err != nil {
			return err
		}
		res = okResult(LogResult{LogID: logID, Next: planViewPath(sessionID)})
		return nil
	})
	if err != nil {
		return Result[LogResult]{}, fmt.Errorf("log plan exercise: %w", err)
	}

	if res.OK() {
		s.metrics.CounterExercisesLogged.WithLabelValues("plan").Inc()
	}
	return res, nil
}

func (s *Service) PlanLogForm(ctx context.Context, sessionID, exerciseID int, callerID string) (res Result[PlanLogForm], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.plan-log-form")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID), attribute.Int("exercise.id", exerciseID))

	err = s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		session, plan, reason, err := ownedPlanSession(ctx, tx, sessionID, callerID, false)
		if err != nil {
			return err
		}
		if reason != "" {
			res = deniedResult[PlanLogForm](reason, sessionID)
			return nil
		}
		if session.IsCompleted {
			res = deniedResult[PlanLogForm](DeniedSessionCompleted, sessionID)
			return nil
		}

		planExercise, found := plan.Exercise(exerciseID)
		if !found {
			res = deniedResult[PlanLogForm](DeniedNotInPlan, sessionID)
			return nil
		}

		exercise, err := s.catalog.GetExercise(ctx, exerciseID)
		if err != nil {
			if errors.Is(err, catalog.ErrExerciseNotFound) {
				res = deniedResult[PlanLogForm](DeniedNotFound, sessionID)
				return nil
			}
			return fmt.Errorf("lookup exercise %d: %w", exerciseID, err)
		}

		last, err := tx.LastLogged(ctx, callerID, exerciseID)
		if err != nil && !errors.Is(err, ErrLogNotFound) {
			return err
		}

		form := PlanLogForm{
			SessionID: sessionID,
			Exercise:  *exercise,
			Defaults:  planDefaults(planExercise),
			Last:      last,
		}
		if last != nil {
			form.Defaults.Weight = last.Weight
		}
		res = okResult(form)
		return nil
	})
	if err != nil {
		return Result[PlanLogForm]{}, fmt.Errorf("plan log form: %w", err)
	}
	return res, nil
}

func planDefaults(pe plans.PlanExercise) LogInput {
	defaults := LogInput{
		Sets:          pe.TargetSets,
		Reps:          pe.TargetReps,
		RestTime:      pe.RecommendedRestTime,
		RestInMinutes: pe.RestInMinutes,
	}
	if defaults.Reps == "" {
		defaults.Reps = defaultPlanReps
	}
	if defaults.RestTime <= 0 {
		defaults.RestTime = defaultPlanRestTime
	}
	return defaults
}

// SkipExercise marks a plan exercise as not performed. The returned value
// reports whether a skip record was written; skipping twice is a no-op, while
// skipping an exercise that was already performed is refused.
func (s *Service) SkipExercise(ctx context.Context, sessionID, exerciseID int, callerID string) (res Result[bool], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.skip-exercise")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID), attribute.Int("exercise.id", exerciseID))

	err = s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		session, plan, reason, err := ownedPlanSession(ctx, tx, sessionID, callerID, true)
		if err != nil {
			return err
		}
		if reason != "" {
			res = deniedResult[bool](reason, sessionID)
			return nil
		}
		if _, found := plan.Exercise(exerciseID); !found {
			res = deniedResult[bool](DeniedNotInPlan, sessionID)
			return nil
		}
		if session.IsCompleted {
			res = deniedResult[bool](DeniedSessionCompleted, sessionID)
			return nil
		}

		logs, err := tx.SessionLogs(ctx, []int{sessionID})
		if err != nil {
			return err
		}
		performed := false
		for _, l := range logs[sessionID] {
			if l.ExerciseID != exerciseID {
				continue
			}
			if l.IsSkipped {
				res = okResult(false)
				return nil
			}
			performed = true
		}
		if performed {
			res = deniedResult[bool](DeniedAlreadyCompleted, sessionID)
			return nil
		}

		if _, err := tx.AddLog(ctx, skipRecord(sessionID, exerciseID)); err != nil {
			return err
		}
		res = okResult(true)
		return nil
	})
	if err != nil {
		return Result[bool]{}, fmt.Errorf("skip exercise: %w", err)
	}

	if res.OK() && res.Value {
		s.metrics.CounterExercisesSkipped.Inc()
	}
	return res, nil
}

// GetLastLogged returns the user's latest real execution of the exercise, or
// nil when there is none.
func (s *Service) GetLastLogged(ctx context.Context, userID string, exerciseID int) (res Result[*LoggedExercise], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.last-logged")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	err = s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		last, err := tx.LastLogged(ctx, userID, exerciseID)
		if err != nil {
			if errors.Is(err, ErrLogNotFound) {
				res = okResult[*LoggedExercise](nil)
				return nil
			}
			return err
		}
		res = okResult(last)
		return nil
	})
	if err != nil {
		return Result[*LoggedExercise]{}, fmt.Errorf("get last logged: %w", err)
	}
	return res, nil
}

func (s *Service) EditLoggedExercise(ctx context.Context, logID int, callerID string, in LogInput) (res Result[LoggedExercise], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.edit-log")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()
	span.SetAttributes(attribute.Int("log.id", logID))

	fieldErrs, err := validation.Struct(in)
	if err != nil {
		return Result[LoggedExercise]{}, err
	}
	if len(fieldErrs) > 0 {
		return invalidResult[LoggedExercise](fieldErrs), nil
	}
	integerReps, err := reps.IntegerReps(in.Reps)
	if err != nil {
		return Result[LoggedExercise]{}, fmt.Errorf("derive integer reps: %w", err)
	}

	err = s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		entry, reason, err := ownedOpenLog(ctx, tx, logID, callerID)
		if err != nil {
			return err
		}
		if reason != "" {
			res = deniedResult[LoggedExercise](reason, sessionIDOf(entry))
			return nil
		}

		entry.Sets = in.Sets
		entry.Reps = in.Reps
		entry.IntegerReps = integerReps
		entry.Weight = roundWeight(in.Weight)
		entry.RestTime = in.RestTime
		entry.RestInMinutes = in.RestInMinutes
		entry.Observation = in.Observation
		entry.ShouldIncreaseLoad = in.ShouldIncreaseLoad
		// an edited skip carries real numbers now, so it counts as performed
		entry.IsSkipped = false
		if err := tx.UpdateLog(ctx, entry); err != nil {
			return err
		}
		res = okResult(*entry)
		return nil
	})
	if err != nil {
		return Result[LoggedExercise]{}, fmt.Errorf("edit logged exercise: %w", err)
	}
	return res, nil
}

// DeleteLoggedExercise returns the id of the session the log belonged to.
func (s *Service) DeleteLoggedExercise(ctx context.Context, logID int, callerID string) (res Result[int], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.delete-log")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()
	span.SetAttributes(attribute.Int("log.id", logID))

	err = s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		entry, reason, err := ownedOpenLog(ctx, tx, logID, callerID)
		if err != nil {
			return err
		}
		if reason != "" {
			res = deniedResult[int](reason, sessionIDOf(entry))
			return nil
		}

		if err := tx.DeleteLog(ctx, logID); err != nil {
			if errors.Is(err, ErrLogNotFound) {
				res = deniedResult[int](DeniedNotFound, entry.SessionID)
				return nil
			}
			return err
		}
		res = okResult(entry.SessionID)
		return nil
	})
	if err != nil {
		return Result[int]{}, fmt.Errorf("delete logged exercise: %w", err)
	}
	return res, nil
}

// FinishSession completes the session. Finishing twice is fine; there is no
// way back.
func (s *Service) FinishSession(ctx context.Context, sessionID int, callerID string) (res Result[struct{}], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.finish-session")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	finished := false
	err = s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		session, err := ownedSession(ctx, tx, sessionID, callerID, true)
		if err != nil {
			return err
		}
		if session == nil {
			res = deniedResult[struct{}](DeniedNotFound, sessionID)
			return nil
		}
		if !session.IsCompleted {
			if err := tx.CompleteSession(ctx, sessionID); err != nil {
				return err
			}
			finished = true
		}
		res = okResult(struct{}{})
		return nil
	})
	if err != nil {
		return Result[struct{}]{}, fmt.Errorf("finish session: %w", err)
	}

	if finished {
		s.metrics.CounterSessionsFinished.Inc()
		log.Debugf("training: session %d finished by %s", sessionID, callerID)
	}
	return res, nil
}

// DeleteSession removes the session and its logs, completed or not.
func (s *Service) DeleteSession(ctx context.Context, sessionID int, callerID string) (res Result[struct{}], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.delete-session")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	err = s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		session, err := ownedSession(ctx, tx, sessionID, callerID, true)
		if err != nil {
			return err
		}
		if session == nil {
			res = deniedResult[struct{}](DeniedNotFound, sessionID)
			return nil
		}
		if err := tx.DeleteSession(ctx, sessionID); err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				res = deniedResult[struct{}](DeniedNotFound, sessionID)
				return nil
			}
			return err
		}
		res = okResult(struct{}{})
		return nil
	})
	if err != nil {
		return Result[struct{}]{}, fmt.Errorf("delete session: %w", err)
	}

	if res.OK() {
		log.Debugf("training: session %d deleted by %s", sessionID, callerID)
	}
	return res, nil
}

func (s *Service) ListSessions(ctx context.Context, userID string) (res Result[[]Session], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.list-sessions")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()

	sessions, err := s.sessionsWithLogs(ctx, userID, 0)
	if err != nil {
		return Result[[]Session]{}, fmt.Errorf("list sessions: %w", err)
	}
	return okResult(sessions), nil
}

func (s *Service) RecentSessions(ctx context.Context, userID string, n int) (res Result[[]Session], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.recent-sessions")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()

	if n <= 0 {
		n = RecentSessionsCount
	}
	sessions, err := s.sessionsWithLogs(ctx, userID, n)
	if err != nil {
		return Result[[]Session]{}, fmt.Errorf("recent sessions: %w", err)
	}
	return okResult(sessions), nil
}

func (s *Service) sessionsWithLogs(ctx context.Context, userID string, limit int) ([]Session, error) {
	var sessions []Session
	err := s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		sessions, err = tx.ListSessions(ctx, userID, limit)
		if err != nil || len(sessions) == 0 {
			return err
		}

		ids := make([]int, 0, len(sessions))
		for _, session := range sessions {
			ids = append(ids, session.ID)
		}
		logs, err := tx.SessionLogs(ctx, ids)
		if err != nil {
			return err
		}
		for i := range sessions {
			sessions[i].Logs = logs[sessions[i].ID]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []Session{}
	}
	return sessions, nil
}

func (s *Service) ViewSession(ctx context.Context, sessionID int, callerID string) (res Result[Session], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.view-session")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	err = s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		session, err := ownedSession(ctx, tx, sessionID, callerID, false)
		if err != nil {
			return err
		}
		if session == nil {
			res = deniedResult[Session](DeniedNotFound, sessionID)
			return nil
		}
		logs, err := tx.SessionLogs(ctx, []int{sessionID})
		if err != nil {
			return err
		}
		session.Logs = logs[sessionID]
		res = okResult(*session)
		return nil
	})
	if err != nil {
		return Result[Session]{}, fmt.Errorf("view session: %w", err)
	}
	return res, nil
}

// HasWorkoutToday reports whether the user has any session dated today in the
// reference timezone.
func (s *Service) HasWorkoutToday(ctx context.Context, userID string) (res Result[bool], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.has-workout-today")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()

	from, to := clock.Today(s.clock)
	err = s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		count, err := tx.CountSessionsBetween(ctx, userID, from, to)
		if err != nil {
			return err
		}
		res = okResult(count > 0)
		return nil
	})
	if err != nil {
		return Result[bool]{}, fmt.Errorf("has workout today: %w", err)
	}
	return res, nil
}

// ActiveSession is the latest open session dated today, nil if there is none.
func (s *Service) ActiveSession(ctx context.Context, userID string) (res Result[*Session], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.active-session")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()

	from, to := clock.Today(s.clock)
	err = s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		session, err := tx.LatestOpenSession(ctx, userID, from, to)
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				res = okResult[*Session](nil)
				return nil
			}
			return err
		}
		res = okResult(session)
		return nil
	})
	if err != nil {
		return Result[*Session]{}, fmt.Errorf("active session: %w", err)
	}
	return res, nil
}

// newLogEntry validates the input and builds the row to insert, with the
// integer reps derived from the reps spec.
func newLogEntry(sessionID, exerciseID int, in LogInput) (*LoggedExercise, []validation.FieldError, error) {
	fieldErrs, err := validation.Struct(in)
	if err != nil {
		return nil, nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	integerReps, err := reps.IntegerReps(in.Reps)
	if err != nil {
		return nil, nil, fmt.Errorf("derive integer reps: %w", err)
	}

	return &LoggedExercise{
		SessionID:          sessionID,
		ExerciseID:         exerciseID,
		Sets:               in.Sets,
		Reps:               in.Reps,
		IntegerReps:        integerReps,
		Weight:             roundWeight(in.Weight),
		RestTime:           in.RestTime,
		RestInMinutes:      in.RestInMinutes,
		Observation:        in.Observation,
		ShouldIncreaseLoad: in.ShouldIncreaseLoad,
	}, nil, nil
}

// ownedSession returns nil, without error, when the session is missing or
// belongs to someone else.
func ownedSession(ctx context.Context, tx Tx, sessionID int, callerID string, forUpdate bool) (*Session, error) {
	session, err := tx.GetSession(ctx, sessionID, forUpdate)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if session.UserID != callerID {
		return nil, nil
	}
	return session, nil
}

// ownedPlanSession loads an owned, plan backed session along with its
// current plan. A non empty reason means the caller must be denied.
func ownedPlanSession(ctx context.Context, tx Tx, sessionID int, callerID string, forUpdate bool) (*Session, *plans.Plan, DenialReason, error) {
	session, err := ownedSession(ctx, tx, sessionID, callerID, forUpdate)
	if err != nil {
		return nil, nil, "", err
	}
	if session == nil {
		return nil, nil, DeniedNotFound, nil
	}
	if !session.IsPlanBacked() {
		return nil, nil, DeniedNotPlanSession, nil
	}

	plan, err := tx.Plan(ctx, *session.PlanID)
	if err != nil {
		if errors.Is(err, plans.ErrPlanNotFound) {
			return nil, nil, DeniedNotPlanSession, nil
		}
		return nil, nil, "", err
	}
	return session, plan, "", nil
}

// ownedOpenLog loads a log whose session is owned by the caller and still
// open, locking the session row.
func ownedOpenLog(ctx context.Context, tx Tx, logID int, callerID string) (*LoggedExercise, DenialReason, error) {
	entry, err := tx.GetLog(ctx, logID)
	if err != nil {
		if errors.Is(err, ErrLogNotFound) {
			return nil, DeniedNotFound, nil
		}
		return nil, "", err
	}

	session, err := ownedSession(ctx, tx, entry.SessionID, callerID, true)
	if err != nil {
		return nil, "", err
	}
	if session == nil {
		return nil, DeniedNotFound, nil
	}
	if session.IsCompleted {
		return entry, DeniedSessionCompleted, nil
	}
	return entry, "", nil
}

func sessionIDOf(entry *LoggedExercise) int {
	if entry == nil {
		return 0
	}
	return entry.SessionID
}
