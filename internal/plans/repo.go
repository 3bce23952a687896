package plans

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

var (
	ErrPlanNotFound    = errors.New("plan not found")
	ErrUnknownExercise = errors.New("plan references an unknown exercise")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, userID string, in PlanInput) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var plan *Plan
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		var planID int
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO workout_plan (user_id, name, is_active) VALUES ($1, $2, TRUE) RETURNING id`,
			userID, in.Name,
		).Scan(&planID); err != nil {
			return fmt.Errorf("insert plan: %w", err)
		}

		for _, pe := range in.Exercises {
			if err := insertPlanExercise(ctx, tx, planID, pe); err != nil {
				return err
			}
		}

		var err error
		plan, err = GetPlan(ctx, tx, planID)
		return err
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("plan.id", plan.ID))
	return plan, nil
}

// Update renames the plan and reconciles its exercise list with the submitted
// one: known ids are updated, the rest inserted, missing ones deleted.
func (r *Repo) Update(ctx context.Context, planID int, userID string, in PlanInput) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	var plan *Plan
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`UPDATE workout_plan SET name = $1 WHERE id = $2 AND user_id = $3`,
			in.Name, planID, userID,
		)
		if err != nil {
			return fmt.Errorf("update plan: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrPlanNotFound
		}

		rows, err := tx.Query(ctx, `SELECT id FROM plan_exercise WHERE plan_id = $1 ORDER BY id`, planID)
		if err != nil {
			return fmt.Errorf("list plan exercise ids: %w", err)
		}
		storedIDs, err := pgx.CollectRows(rows, pgx.RowTo[int])
		if err != nil {
			return fmt.Errorf("scan plan exercise ids: %w", err)
		}

		rec := reconcile(storedIDs, in.Exercises)
		if len(rec.delete) > 0 {
			if _, err := tx.Exec(
				ctx,
				`DELETE FROM plan_exercise WHERE plan_id = $1 AND id = ANY($2)`,
				planID, rec.delete,
			); err != nil {
				return fmt.Errorf("delete plan exercises: %w", err)
			}
		}
		for _, pe := range rec.update {
			if _, err := tx.Exec(
				ctx,
				`UPDATE plan_exercise
					SET exercise_id = $1, target_sets = $2, target_reps = $3,
						recommended_rest_time = $4, rest_in_minutes = $5, sort_order = $6
					WHERE id = $7 AND plan_id = $8`,
				pe.ExerciseID, pe.TargetSets, pe.TargetReps,
				pe.RecommendedRestTime, pe.RestInMinutes, pe.Order,
				pe.ID, planID,
			); err != nil {
				return wrapExerciseErr("update plan exercise", err)
			}
		}
		for _, pe := range rec.insert {
			if err := insertPlanExercise(ctx, tx, planID, pe); err != nil {
				return err
			}
		}

		plan, err = GetPlan(ctx, tx, planID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// Delete removes the plan and its entries. Sessions started from it survive
// with their plan reference cleared.
func (r *Repo) Delete(ctx context.Context, planID int, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_plan WHERE id = $1 AND user_id = $2`, planID, userID)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *Repo) SetActive(ctx context.Context, planID int, userID string, active bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.set-active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID), attribute.Bool("active", active))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_plan SET is_active = $1 WHERE id = $2 AND user_id = $3`,
		active, planID, userID,
	)
	if err != nil {
		return fmt.Errorf("set plan active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, planID int) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	return GetPlan(ctx, r.db, planID)
}

func (r *Repo) ListByUser(ctx context.Context, userID string, onlyActive bool) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, is_active, created_at
			FROM workout_plan
			WHERE user_id = $1 AND (NOT $2 OR is_active)
			ORDER BY created_at DESC, id DESC`,
		userID, onlyActive,
	)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	plans, err := pgx.CollectRows(rows, scanPlan)
	if err != nil {
		return nil, fmt.Errorf("scan plans: %w", err)
	}

	if len(plans) == 0 {
		return plans, nil
	}

	ids := make([]int, 0, len(plans))
	for _, p := range plans {
		ids = append(ids, p.ID)
	}
	exercises, err := planExercises(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		plans[i].Exercises = exercises[plans[i].ID]
		if plans[i].Exercises == nil {
			plans[i].Exercises = []PlanExercise{}
		}
	}

	span.SetAttributes(attribute.Int("count", len(plans)))
	return plans, nil
}

// GetPlan loads a plan with its entries ordered by position, ties by id.
// Callers holding a transaction pass it as q.
func GetPlan(ctx context.Context, q db.Querier, planID int) (*Plan, error) {
	rows, err := q.Query(
		ctx,
		`SELECT id, user_id, name, is_active, created_at FROM workout_plan WHERE id = $1`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	plan, err := pgx.CollectOneRow(rows, scanPlan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("scan plan: %w", err)
	}

	exercises, err := planExercises(ctx, q, []int{planID})
	if err != nil {
		return nil, err
	}
	plan.Exercises = exercises[planID]
	if plan.Exercises == nil {
		plan.Exercises = []PlanExercise{}
	}

	return &plan, nil
}

func scanPlan(row pgx.CollectableRow) (Plan, error) {
	var p Plan
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.IsActive, &p.CreatedAt)
	return p, err
}

func planExercises(ctx context.Context, q db.Querier, planIDs []int) (map[int][]PlanExercise, error) {
	rows, err := q.Query(
		ctx,
		`SELECT pe.plan_id, pe.id, pe.exercise_id, e.name, pe.target_sets, pe.target_reps,
				pe.recommended_rest_time, pe.rest_in_minutes, pe.sort_order
			FROM plan_exercise pe
			JOIN exercise e ON e.id = pe.exercise_id
			WHERE pe.plan_id = ANY($1)
			ORDER BY pe.plan_id, pe.sort_order, pe.id`,
		planIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("list plan exercises: %w", err)
	}
	defer rows.Close()

	exercises := make(map[int][]PlanExercise, len(planIDs))
	for rows.Next() {
		var planID int
		var pe PlanExercise
		if err := rows.Scan(
			&planID, &pe.ID, &pe.ExerciseID, &pe.ExerciseName, &pe.TargetSets, &pe.TargetReps,
			&pe.RecommendedRestTime, &pe.RestInMinutes, &pe.Order,
		); err != nil {
			return nil, fmt.Errorf("scan plan exercise: %w", err)
		}
		exercises[planID] = append(exercises[planID], pe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("plan exercise rows: %w", err)
	}

	return exercises, nil
}

func insertPlanExercise(ctx context.Context, q db.Querier, planID int, pe PlanExerciseInput) error {
	if _, err := q.Exec(
		ctx,
		`INSERT INTO plan_exercise
			(plan_id, exercise_id, target_sets, target_reps, recommended_rest_time, rest_in_minutes, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		planID, pe.ExerciseID, pe.TargetSets, pe.TargetReps, pe.RecommendedRestTime, pe.RestInMinutes, pe.Order,
	); err != nil {
		return wrapExerciseErr("insert plan exercise", err)
	}
	return nil
}

func wrapExerciseErr(op string, err error) error {
	if pkg.IsForeignKeyViolationError(err) {
		return ErrUnknownExercise
	}
	return fmt.Errorf("%s: %w", op, err)
}
