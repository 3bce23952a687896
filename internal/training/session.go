package training

import (
	"math"
	"time"
)

// Session is one workout occurrence. A nil PlanID marks a freeform session.
type Session struct {
	ID                   int              `json:"id"`
	UserID               string           `json:"userId"`
	PlanID               *int             `json:"planId"`
	PlanName             string           `json:"planName,omitempty"`
	Date                 time.Time        `json:"date"`
	IsCompleted          bool             `json:"isCompleted"`
	TotalDurationMinutes *int             `json:"totalDurationMinutes,omitempty"`
	Logs                 []LoggedExercise `json:"logs,omitempty"`
}

func (s *Session) IsPlanBacked() bool {
	return s.PlanID != nil
}

// LoggedExercise is one recorded execution of an exercise in a session.
// IntegerReps is always derived from Reps.
type LoggedExercise struct {
	ID                 int     `json:"id"`
	SessionID          int     `json:"sessionId"`
	ExerciseID         int     `json:"exerciseId"`
	ExerciseName       string  `json:"exerciseName,omitempty"`
	Sets               int     `json:"sets"`
	Reps               string  `json:"reps"`
	IntegerReps        int     `json:"integerReps"`
	Weight             float64 `json:"weight"`
	RestTime           int     `json:"restTime"`
	RestInMinutes      bool    `json:"restInMinutes"`
	Observation        string  `json:"observation"`
	ShouldIncreaseLoad bool    `json:"shouldIncreaseLoad"`
	IsSkipped          bool    `json:"isSkipped"`
}

// LogInput carries the user editable fields of a log. There is deliberately no
// integer reps field.
type LogInput struct {
	Sets               int     `json:"sets" validate:"gte=1,lte=100"`
	Reps               string  `json:"reps" validate:"reps"`
	Weight             float64 `json:"weight" validate:"gte=0,lte=999.99"`
	RestTime           int     `json:"restTime" validate:"gte=0,lte=3600"`
	RestInMinutes      bool    `json:"restInMinutes"`
	Observation        string  `json:"observation" validate:"max=1000"`
	ShouldIncreaseLoad bool    `json:"shouldIncreaseLoad"`
}

// StaleSession is an open session past the cleanup threshold.
type StaleSession struct {
	ID       int
	LogCount int
}

func roundWeight(w float64) float64 {
	return math.Round(w*100) / 100
}

func skipRecord(sessionID, exerciseID int) *LoggedExercise {
	return &LoggedExercise{
		SessionID:  sessionID,
		ExerciseID: exerciseID,
		Reps:       "0",
		IsSkipped:  true,
	}
}
