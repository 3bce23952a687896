package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// Repo is the read side of the exercise catalog.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetExercise(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var e Exercise
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, description FROM exercise WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.Name, &e.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	groups, err := r.muscleGroups(ctx, []int{id})
	if err != nil {
		return nil, err
	}
	e.MuscleGroups = groups[id]

	return &e, nil
}

func (r *Repo) ListExercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name, description FROM exercise ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	exercises, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Exercise, error) {
		var e Exercise
		err := row.Scan(&e.ID, &e.Name, &e.Description)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan exercises: %w", err)
	}

	ids := make([]int, 0, len(exercises))
	for _, e := range exercises {
		ids = append(ids, e.ID)
	}
	groups, err := r.muscleGroups(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		exercises[i].MuscleGroups = groups[exercises[i].ID]
	}

	span.SetAttributes(attribute.Int("count", len(exercises)))
	return exercises, nil
}

func (r *Repo) muscleGroups(ctx context.Context, exerciseIDs []int) (map[int][]MuscleGroup, error) {
	groups := make(map[int][]MuscleGroup, len(exerciseIDs))
	if len(exerciseIDs) == 0 {
		return groups, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT emg.exercise_id, mg.id, mg.name, mg.color, emg.is_primary
			FROM exercise_muscle_group emg
			JOIN muscle_group mg ON mg.id = emg.muscle_group_id
			WHERE emg.exercise_id = ANY($1)
			ORDER BY emg.exercise_id, emg.is_primary DESC, mg.name`,
		exerciseIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("list muscle groups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var exerciseID int
		var mg MuscleGroup
		if err := rows.Scan(&exerciseID, &mg.ID, &mg.Name, &mg.Color, &mg.IsPrimary); err != nil {
			return nil, fmt.Errorf("scan muscle group: %w", err)
		}
		groups[exerciseID] = append(groups[exerciseID], mg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("muscle group rows: %w", err)
	}

	return groups, nil
}
