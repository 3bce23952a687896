//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymlog/internal/plans"
	"github.com/2beens/gymlog/internal/training"
)

func (s *IntegrationTestSuite) TestPlanSessionWorkflow() {
	ctx := context.Background()
	t := s.T()
	_, token := s.newUser(ctx)
	_, strangerToken := s.newUser(ctx)

	var plan plans.Plan
	s.doJSON(ctx, "POST", "/plans", token, plans.PlanInput{
		Name: "Push",
		Exercises: []plans.PlanExerciseInput{
			{ExerciseID: 1, TargetSets: 4, TargetReps: "8-10", RecommendedRestTime: 90, Order: 2},
			{ExerciseID: 3, TargetSets: 3, TargetReps: "12", Order: 1},
			{ExerciseID: 4, TargetSets: 3, TargetReps: "60", RecommendedRestTime: 1, RestInMinutes: true, Order: 3},
		},
	}, http.StatusCreated, &plan)
	require.Len(t, plan.Exercises, 3)

	var started training.StartSessionResponse
	s.doJSON(ctx, "POST", fmt.Sprintf("/plans/%d/sessions", plan.ID), token, nil, http.StatusCreated, &started)
	sessionID := started.SessionID
	planPath := fmt.Sprintf("/sessions/%d/plan", sessionID)
	assert.Equal(t, planPath, started.Next)

	var view training.PlanView
	s.doJSON(ctx, "GET", planPath, token, nil, http.StatusOK, &view)
	require.Len(t, view.Exercises, 3)
	assert.Equal(t, []int{3, 1, 4}, []int{view.Exercises[0].ExerciseID, view.Exercises[1].ExerciseID, view.Exercises[2].ExerciseID})

	var form training.PlanLogForm
	s.doJSON(ctx, "GET", planPath+"/exercises/1", token, nil, http.StatusOK, &form)
	assert.Equal(t, "Bench Press", form.Exercise.Name)
	assert.Equal(t, 4, form.Defaults.Sets)
	assert.Equal(t, "8-10", form.Defaults.Reps)
	assert.Equal(t, 90, form.Defaults.RestTime)

	var logged training.LogResult
	s.doJSON(ctx, "POST", planPath+"/exercises/1", token, training.LogInput{Sets: 4, Reps: "8-10", Weight: 80}, http.StatusCreated, &logged)
	assert.Equal(t, planPath, logged.Next)

	var skipped training.SkipResponse
	s.doJSON(ctx, "POST", planPath+"/exercises/4/skip", token, nil, http.StatusOK, &skipped)
	assert.True(t, skipped.Skipped)
	s.doJSON(ctx, "POST", planPath+"/exercises/4/skip", token, nil, http.StatusOK, &skipped)
	assert.False(t, skipped.Skipped, "second skip is a no-op")

	resp := s.do(ctx, "POST", planPath+"/exercises/1/skip", token, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "performed exercise cannot be skipped")
	assert.Equal(t, planPath, resp.Location)

	resp = s.do(ctx, "POST", planPath+"/exercises/2", token, training.LogInput{Sets: 3, Reps: "10"})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "squat is not in the plan")
	assert.Equal(t, planPath, resp.Location)

	s.doJSON(ctx, "GET", planPath, token, nil, http.StatusOK, &view)
	assert.False(t, view.Exercises[0].IsCompleted)
	assert.True(t, view.Exercises[1].IsCompleted)
	assert.True(t, view.Exercises[2].IsSkipped)

	var active training.ActiveSessionResponse
	s.doJSON(ctx, "GET", "/sessions/active", token, nil, http.StatusOK, &active)
	require.NotNil(t, active.Session)
	assert.Equal(t, sessionID, active.Session.ID)

	var today training.TodayResponse
	s.doJSON(ctx, "GET", "/sessions/today", token, nil, http.StatusOK, &today)
	assert.True(t, today.HasWorkout)

	// another user sees nothing and changes nothing
	sessionPath := fmt.Sprintf("/sessions/%d", sessionID)
	resp = s.do(ctx, "GET", sessionPath, strangerToken, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/sessions", resp.Location)
	resp = s.do(ctx, "POST", sessionPath+"/finish", strangerToken, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	s.doJSON(ctx, "POST", sessionPath+"/finish", token, nil, http.StatusNoContent, nil)
	s.doJSON(ctx, "POST", sessionPath+"/finish", token, nil, http.StatusNoContent, nil)

	resp = s.do(ctx, "POST", sessionPath+"/exercises", token, training.LogExerciseRequest{
		ExerciseID: 3,
		LogInput:   training.LogInput{Sets: 3, Reps: "12"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "completed session is immutable")
	assert.Equal(t, sessionPath, resp.Location)

	var last training.LastLoggedResponse
	s.doJSON(ctx, "GET", "/exercises/1/last", token, nil, http.StatusOK, &last)
	require.NotNil(t, last.Last)
	assert.Equal(t, 10, last.Last.IntegerReps)
	assert.InDelta(t, 80.0, last.Last.Weight, 0.001)

	s.doJSON(ctx, "DELETE", sessionPath, token, nil, http.StatusNoContent, nil)
	resp = s.do(ctx, "GET", sessionPath, token, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	s.doJSON(ctx, "GET", "/exercises/1/last", token, nil, http.StatusOK, &last)
	assert.Nil(t, last.Last, "logs went away with the session")
}

func (s *IntegrationTestSuite) TestFreeSessionWorkflow() {
	ctx := context.Background()
	t := s.T()
	_, token := s.newUser(ctx)

	var started training.StartSessionResponse
	s.doJSON(ctx, "POST", "/sessions/free", token, nil, http.StatusCreated, &started)
	sessionPath := fmt.Sprintf("/sessions/%d", started.SessionID)
	assert.Equal(t, sessionPath+"/exercises", started.Next)

	var logged training.LogResult
	for _, reps := range []string{"5", "6 - 8"} {
		s.doJSON(ctx, "POST", sessionPath+"/exercises", token, training.LogExerciseRequest{
			ExerciseID: 2,
			LogInput:   training.LogInput{Sets: 5, Reps: reps, Weight: 100, RestTime: 180},
		}, http.StatusCreated, &logged)
	}

	resp := s.do(ctx, "POST", sessionPath+"/exercises", token, training.LogExerciseRequest{
		ExerciseID: 2,
		LogInput:   training.LogInput{Sets: 5, Reps: "lots"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "InvalidRepsFormat")

	resp = s.do(ctx, "POST", sessionPath+"/exercises", token, training.LogExerciseRequest{
		ExerciseID: 999,
		LogInput:   training.LogInput{Sets: 1, Reps: "1"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var edited training.LoggedExercise
	s.doJSON(ctx, "PUT", fmt.Sprintf("/logs/%d", logged.LogID), token, training.LogInput{Sets: 4, Reps: "10-12", Weight: 90}, http.StatusOK, &edited)
	assert.Equal(t, 12, edited.IntegerReps)

	var session training.Session
	s.doJSON(ctx, "GET", sessionPath, token, nil, http.StatusOK, &session)
	require.Len(t, session.Logs, 2)
	assert.Equal(t, 5, session.Logs[0].IntegerReps)
	assert.Equal(t, "10-12", session.Logs[1].Reps)
	assert.Equal(t, "Squat", session.Logs[1].ExerciseName)

	s.doJSON(ctx, "DELETE", fmt.Sprintf("/logs/%d", logged.LogID), token, nil, http.StatusNoContent, nil)

	var recent training.SessionsResponse
	s.doJSON(ctx, "GET", "/sessions/recent", token, nil, http.StatusOK, &recent)
	require.Len(t, recent.Sessions, 1)
	assert.Len(t, recent.Sessions[0].Logs, 1)
}

func (s *IntegrationTestSuite) TestPlanDeletionKeepsSessions() {
	ctx := context.Background()
	t := s.T()
	_, token := s.newUser(ctx)

	var plan plans.Plan
	s.doJSON(ctx, "POST", "/plans", token, plans.PlanInput{
		Name:      "Legs",
		Exercises: []plans.PlanExerciseInput{{ExerciseID: 2, TargetSets: 5, TargetReps: "5", Order: 1}},
	}, http.StatusCreated, &plan)

	var started training.StartSessionResponse
	s.doJSON(ctx, "POST", fmt.Sprintf("/plans/%d/sessions", plan.ID), token, nil, http.StatusCreated, &started)
	s.doJSON(ctx, "POST", fmt.Sprintf("/sessions/%d/plan/exercises/2", started.SessionID), token,
		training.LogInput{Sets: 5, Reps: "5", Weight: 120}, http.StatusCreated, nil)

	s.doJSON(ctx, "DELETE", fmt.Sprintf("/plans/%d", plan.ID), token, nil, http.StatusNoContent, nil)

	var session training.Session
	s.doJSON(ctx, "GET", fmt.Sprintf("/sessions/%d", started.SessionID), token, nil, http.StatusOK, &session)
	assert.Nil(t, session.PlanID)
	assert.Len(t, session.Logs, 1)

	resp := s.do(ctx, "GET", fmt.Sprintf("/sessions/%d/plan", started.SessionID), token, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/sessions", resp.Location)

	var planID *int
	require.NoError(t, s.DB.QueryRowContext(ctx,
		`SELECT plan_id FROM workout_session WHERE id = $1`, started.SessionID,
	).Scan(&planID))
	assert.Nil(t, planID)
}

func (s *IntegrationTestSuite) TestRequiresToken() {
	ctx := context.Background()

	resp := s.do(ctx, "GET", "/sessions", "", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(ctx, "POST", "/sessions/free", "not-a-token", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)
}
