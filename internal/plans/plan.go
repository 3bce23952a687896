package plans

import (
	"time"
)

type Plan struct {
	ID        int            `json:"id"`
	UserID    string         `json:"userId"`
	Name      string         `json:"name"`
	IsActive  bool           `json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	Exercises []PlanExercise `json:"exercises"`
}

// PlanExercise is one entry of the ordered template. Order values need not be
// contiguous; equal orders keep insertion (id) order.
type PlanExercise struct {
	ID                  int    `json:"id"`
	ExerciseID          int    `json:"exerciseId"`
	ExerciseName        string `json:"exerciseName"`
	TargetSets          int    `json:"targetSets"`
	TargetReps          string `json:"targetReps"`
	RecommendedRestTime int    `json:"recommendedRestTime"`
	RestInMinutes       bool   `json:"restInMinutes"`
	Order               int    `json:"order"`
}

func (p *Plan) Exercise(exerciseID int) (PlanExercise, bool) {
	for _, pe := range p.Exercises {
		if pe.ExerciseID == exerciseID {
			return pe, true
		}
	}
	return PlanExercise{}, false
}

type PlanInput struct {
	Name      string              `json:"name" validate:"required,max=100"`
	Exercises []PlanExerciseInput `json:"exercises" validate:"dive"`
}

// PlanExerciseInput with ID 0 (or an ID unknown to the plan) is inserted,
// a known ID updates that entry in place.
type PlanExerciseInput struct {
	ID                  int    `json:"id" validate:"gte=0"`
	ExerciseID          int    `json:"exerciseId" validate:"gt=0"`
	TargetSets          int    `json:"targetSets" validate:"gte=1,lte=100"`
	TargetReps          string `json:"targetReps" validate:"reps"`
	RecommendedRestTime int    `json:"recommendedRestTime" validate:"gte=0,lte=3600"`
	RestInMinutes       bool   `json:"restInMinutes"`
	Order               int    `json:"order" validate:"gte=1,lte=100"`
}

type reconciliation struct {
	update []PlanExerciseInput
	insert []PlanExerciseInput
	delete []int
}

// reconcile diffs the submitted list against the stored entry ids.
func reconcile(storedIDs []int, submitted []PlanExerciseInput) reconciliation {
	stored := make(map[int]bool, len(storedIDs))
	for _, id := range storedIDs {
		stored[id] = true
	}

	var rec reconciliation
	kept := map[int]bool{}
	for _, in := range submitted {
		if in.ID > 0 && stored[in.ID] && !kept[in.ID] {
			kept[in.ID] = true
			rec.update = append(rec.update, in)
			continue
		}
		in.ID = 0
		rec.insert = append(rec.insert, in)
	}
	for _, id := range storedIDs {
		if !kept[id] {
			rec.delete = append(rec.delete, id)
		}
	}
	return rec
}
