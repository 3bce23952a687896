//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/middleware"
)

type response struct {
	StatusCode int
	Location   string
	Body       []byte
}

// newUser issues a session token for a fresh random user.
func (s *IntegrationTestSuite) newUser(ctx context.Context) (string, string) {
	userID := gofakeit.Username() + "-" + gofakeit.UUID()[:8]
	token, err := s.sessionStore.Issue(ctx, auth.Identity{UserID: userID}, time.Now())
	require.NoError(s.T(), err)
	return userID, token
}

func (s *IntegrationTestSuite) do(ctx context.Context, method, path, token string, body any) response {
	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "gymlog-integration-test")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AuthTokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	return response{
		StatusCode: resp.StatusCode,
		Location:   resp.Header.Get("Location"),
		Body:       respBytes,
	}
}

func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path, token string, body any, expectedStatus int, out any) {
	resp := s.do(ctx, method, path, token, body)
	require.Equal(s.T(), expectedStatus, resp.StatusCode, string(resp.Body))
	if out != nil {
		require.NoError(s.T(), json.Unmarshal(resp.Body, out))
	}
}
