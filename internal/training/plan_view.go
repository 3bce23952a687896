package training

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

type PlanView struct {
	SessionID   int                `json:"sessionId"`
	PlanID      int                `json:"planId"`
	PlanName    string             `json:"planName"`
	IsCompleted bool               `json:"isCompleted"`
	Exercises   []PlanViewExercise `json:"exercises"`
}

type PlanViewExercise struct {
	ExerciseID          int    `json:"exerciseId"`
	Name                string `json:"name"`
	Order               int    `json:"order"`
	TargetSets          int    `json:"targetSets"`
	TargetReps          string `json:"targetReps"`
	RecommendedRestTime int    `json:"recommendedRestTime"`
	RestInMinutes       bool   `json:"restInMinutes"`
	IsCompleted         bool   `json:"isCompleted"`
	IsSkipped           bool   `json:"isSkipped"`
}

// ExecutePlanView lists the plan's exercises in execution order, each marked
// with how it went in this session so far.
func (s *Service) ExecutePlanView(ctx context.Context, sessionID int, callerID string) (res Result[PlanView], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.plan-view")
	defer func() {
		tracing.EndSpanWithOutcome(span, res.Outcome.String(), err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	err = s.store.InTx(ctx, func(ctx context.Context, tx Tx) error {
		session, plan, reason, err := ownedPlanSession(ctx, tx, sessionID, callerID, false)
		if err != nil {
			return err
		}
		if reason != "" {
			res = deniedResult[PlanView](reason, sessionID)
			return nil
		}

		logs, err := tx.SessionLogs(ctx, []int{sessionID})
		if err != nil {
			return err
		}
		completed := map[int]bool{}
		skipped := map[int]bool{}
		for _, l := range logs[sessionID] {
			if l.IsSkipped {
				skipped[l.ExerciseID] = true
			} else {
				completed[l.ExerciseID] = true
			}
		}

		view := PlanView{
			SessionID:   sessionID,
			PlanID:      plan.ID,
			PlanName:    plan.Name,
			IsCompleted: session.IsCompleted,
			Exercises:   make([]PlanViewExercise, 0, len(plan.Exercises)),
		}
		for _, pe := range plan.Exercises {
			view.Exercises = append(view.Exercises, PlanViewExercise{
				ExerciseID:          pe.ExerciseID,
				Name:                pe.ExerciseName,
				Order:               pe.Order,
				TargetSets:          pe.TargetSets,
				TargetReps:          pe.TargetReps,
				RecommendedRestTime: pe.RecommendedRestTime,
				RestInMinutes:       pe.RestInMinutes,
				IsCompleted:         completed[pe.ExerciseID],
				IsSkipped:           skipped[pe.ExerciseID],
			})
		}
		// stable, so equal orders keep the plan's insertion order
		slices.SortStableFunc(view.Exercises, func(a, b PlanViewExercise) int {
			return cmp.Compare(a.Order, b.Order)
		})

		res = okResult(view)
		return nil
	})
	if err != nil {
		return Result[PlanView]{}, fmt.Errorf("execute plan view: %w", err)
	}
	return res, nil
}
