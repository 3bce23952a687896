package training

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/gymlog/internal/catalog"
	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/plans"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

const sessionColumns = `s.id, s.user_id, s.plan_id, COALESCE(p.name, ''), s.date, s.is_completed, s.total_duration_minutes`

const logColumns = `le.id, le.session_id, le.exercise_id, e.name, le.sets, le.reps, le.integer_reps,
	le.weight, le.rest_time, le.rest_in_minutes, le.observation, le.should_increase_load, le.is_skipped`

type PgStore struct {
	db *pgxpool.Pool
}

var _ Store = (*PgStore)(nil)

func NewPgStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{
		db: db,
	}
}

func (s *PgStore) InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.tx")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return db.InTx(ctx, s.db, func(tx pgx.Tx) error {
		return fn(ctx, &pgTx{tx: tx})
	})
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) CreateSession(ctx context.Context, session *Session) (int, error) {
	var id int
	err := t.tx.QueryRow(
		ctx,
		`INSERT INTO workout_session (user_id, plan_id, date, is_completed) VALUES ($1, $2, $3, FALSE) RETURNING id`,
		session.UserID, session.PlanID, session.Date,
	).Scan(&id)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return 0, plans.ErrPlanNotFound
		}
		return 0, fmt.Errorf("insert session: %w", err)
	}
	return id, nil
}

func (t *pgTx) GetSession(ctx context.Context, id int, forUpdate bool) (*Session, error) {
	query := `SELECT ` + sessionColumns + `
		FROM workout_session s
		LEFT JOIN workout_plan p ON p.id = s.plan_id
		WHERE s.id = $1`
	if forUpdate {
		query += ` FOR UPDATE OF s`
	}

	rows, err := t.tx.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	session, err := pgx.CollectOneRow(rows, scanSession)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return &session, nil
}

func (t *pgTx) ListSessions(ctx context.Context, userID string, limit int) ([]Session, error) {
	query := `SELECT ` + sessionColumns + `
		FROM workout_session s
		LEFT JOIN workout_plan p ON p.id = s.plan_id
		WHERE s.user_id = $1
		ORDER BY s.date DESC, s.id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := t.tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	sessions, err := pgx.CollectRows(rows, scanSession)
	if err != nil {
		return nil, fmt.Errorf("scan sessions: %w", err)
	}
	return sessions, nil
}

func (t *pgTx) LatestOpenSession(ctx context.Context, userID string, from, to time.Time) (*Session, error) {
	rows, err := t.tx.Query(
		ctx,
		`SELECT `+sessionColumns+`
			FROM workout_session s
			LEFT JOIN workout_plan p ON p.id = s.plan_id
			WHERE s.user_id = $1 AND NOT s.is_completed AND s.date >= $2 AND s.date < $3
			ORDER BY s.date DESC, s.id DESC
			LIMIT 1`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("latest open session: %w", err)
	}
	session, err := pgx.CollectOneRow(rows, scanSession)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return &session, nil
}

func (t *pgTx) CountSessionsBetween(ctx context.Context, userID string, from, to time.Time) (int, error) {
	var count int
	if err := t.tx.QueryRow(
		ctx,
		`SELECT count(*) FROM workout_session WHERE user_id = $1 AND date >= $2 AND date < $3`,
		userID, from, to,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}

func (t *pgTx) CompleteSession(ctx context.Context, id int) error {
	tag, err := t.tx.Exec(ctx, `UPDATE workout_session SET is_completed = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteSession relies on the foreign key to cascade to the session's logs.
func (t *pgTx) DeleteSession(ctx context.Context, id int) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM workout_session WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (t *pgTx) StaleSessions(ctx context.Context, cutoff time.Time) ([]StaleSession, error) {
	rows, err := t.tx.Query(
		ctx,
		`SELECT s.id, (SELECT count(*) FROM logged_exercise le WHERE le.session_id = s.id)
			FROM workout_session s
			WHERE NOT s.is_completed AND s.date < $1
			ORDER BY s.id
			FOR UPDATE OF s`,
		cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("list stale sessions: %w", err)
	}
	stale, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (StaleSession, error) {
		var ss StaleSession
		err := row.Scan(&ss.ID, &ss.LogCount)
		return ss, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan stale sessions: %w", err)
	}
	return stale, nil
}

func (t *pgTx) AddLog(ctx context.Context, l *LoggedExercise) (int, error) {
	var id int
	err := t.tx.QueryRow(
		ctx,
		`INSERT INTO logged_exercise
			(session_id, exercise_id, sets, reps, integer_reps, weight, rest_time,
			 rest_in_minutes, observation, should_increase_load, is_skipped)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id`,
		l.SessionID, l.ExerciseID, l.Sets, l.Reps, l.IntegerReps, l.Weight, l.RestTime,
		l.RestInMinutes, l.Observation, l.ShouldIncreaseLoad, l.IsSkipped,
	).Scan(&id)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return 0, catalog.ErrExerciseNotFound
		}
		return 0, fmt.Errorf("insert logged exercise: %w", err)
	}
	return id, nil
}

func (t *pgTx) GetLog(ctx context.Context, id int) (*LoggedExercise, error) {
	rows, err := t.tx.Query(
		ctx,
		`SELECT `+logColumns+`
			FROM logged_exercise le
			JOIN exercise e ON e.id = le.exercise_id
			WHERE le.id = $1`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get logged exercise: %w", err)
	}
	l, err := pgx.CollectOneRow(rows, scanLog)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLogNotFound
		}
		return nil, fmt.Errorf("scan logged exercise: %w", err)
	}
	return &l, nil
}

func (t *pgTx) UpdateLog(ctx context.Context, l *LoggedExercise) error {
	tag, err := t.tx.Exec(
		ctx,
		`UPDATE logged_exercise
			SET sets = $1, reps = $2, integer_reps = $3, weight = $4, rest_time = $5,
				rest_in_minutes = $6, observation = $7, should_increase_load = $8, is_skipped = $9
			WHERE id = $10`,
		l.Sets, l.Reps, l.IntegerReps, l.Weight, l.RestTime,
		l.RestInMinutes, l.Observation, l.ShouldIncreaseLoad, l.IsSkipped,
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("update logged exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

func (t *pgTx) DeleteLog(ctx context.Context, id int) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM logged_exercise WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete logged exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

func (t *pgTx) SessionLogs(ctx context.Context, sessionIDs []int) (map[int][]LoggedExercise, error) {
	logs := make(map[int][]LoggedExercise, len(sessionIDs))
	if len(sessionIDs) == 0 {
		return logs, nil
	}

	rows, err := t.tx.Query(
		ctx,
		`SELECT `+logColumns+`
			FROM logged_exercise le
			JOIN exercise e ON e.id = le.exercise_id
			WHERE le.session_id = ANY($1)
			ORDER BY le.session_id, le.id`,
		sessionIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("list session logs: %w", err)
	}
	all, err := pgx.CollectRows(rows, scanLog)
	if err != nil {
		return nil, fmt.Errorf("scan session logs: %w", err)
	}
	for _, l := range all {
		logs[l.SessionID] = append(logs[l.SessionID], l)
	}
	return logs, nil
}

func (t *pgTx) LastLogged(ctx context.Context, userID string, exerciseID int) (*LoggedExercise, error) {
	rows, err := t.tx.Query(
		ctx,
		`SELECT `+logColumns+`
			FROM logged_exercise le
			JOIN workout_session s ON s.id = le.session_id
			JOIN exercise e ON e.id = le.exercise_id
			WHERE s.user_id = $1 AND le.exercise_id = $2 AND NOT le.is_skipped
			ORDER BY s.date DESC, le.id DESC
			LIMIT 1`,
		userID, exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("last logged: %w", err)
	}
	l, err := pgx.CollectOneRow(rows, scanLog)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLogNotFound
		}
		return nil, fmt.Errorf("scan last logged: %w", err)
	}
	return &l, nil
}

func (t *pgTx) Plan(ctx context.Context, planID int) (*plans.Plan, error) {
	return plans.GetPlan(ctx, t.tx, planID)
}

func scanSession(row pgx.CollectableRow) (Session, error) {
	var s Session
	err := row.Scan(&s.ID, &s.UserID, &s.PlanID, &s.PlanName, &s.Date, &s.IsCompleted, &s.TotalDurationMinutes)
	return s, err
}

func scanLog(row pgx.CollectableRow) (LoggedExercise, error) {
	var l LoggedExercise
	err := row.Scan(
		&l.ID, &l.SessionID, &l.ExerciseID, &l.ExerciseName, &l.Sets, &l.Reps, &l.IntegerReps,
		&l.Weight, &l.RestTime, &l.RestInMinutes, &l.Observation, &l.ShouldIncreaseLoad, &l.IsSkipped,
	)
	return l, err
}
