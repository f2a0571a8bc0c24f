package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dkaratas/vrlearn-backend/internal/config"
	"github.com/dkaratas/vrlearn-backend/internal/dto"
	"github.com/dkaratas/vrlearn-backend/internal/middleware"
	"github.com/dkaratas/vrlearn-backend/internal/scores"
	"github.com/dkaratas/vrlearn-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type scoreTestApp struct {
	app *fiber.App
}

func newScoreTestApp(t *testing.T) *scoreTestApp {
	t.Helper()

	cfg := &config.Config{JWTSecret: testSecret}
	handler := NewScoreHandler(services.NewScoreService(scores.NewMemoryStore()))

	app := fiber.New()
	protected := middleware.JWTProtected(cfg)
	app.Post("/api/submit-score", protected, handler.Submit)
	app.Get("/api/score", protected, handler.GetCurrent)
	app.Get("/api/past-scores", protected, handler.GetHistory)

	return &scoreTestApp{app: app}
}

func mintToken(t *testing.T, email string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   uuid.New().String(),
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func (ta *scoreTestApp) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestSubmitScoreHappyPath(t *testing.T) {
	ta := newScoreTestApp(t)
	token := mintToken(t, "alice@example.com")

	resp := ta.request(t, http.MethodPost, "/api/submit-score", token, dto.SubmitScoreRequest{
		Activity: "road-crossing", Score: 7, Email: "alice@example.com",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[dto.SubmitScoreResponse](t, resp)
	assert.Equal(t, "Score submitted successfully", body.Message)

	resp = ta.request(t, http.MethodGet, "/api/score", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	current := decode[dto.CurrentScoreResponse](t, resp)
	assert.Equal(t, map[string]int{"road-crossing": 7}, current.Score)
}

func TestSubmitScoreRequiresToken(t *testing.T) {
	ta := newScoreTestApp(t)

	resp := ta.request(t, http.MethodPost, "/api/submit-score", "", dto.SubmitScoreRequest{
		Activity: "road-crossing", Score: 7, Email: "alice@example.com",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSubmitScoreRejectsEmailMismatch(t *testing.T) {
	ta := newScoreTestApp(t)
	token := mintToken(t, "alice@example.com")

	resp := ta.request(t, http.MethodPost, "/api/submit-score", token, dto.SubmitScoreRequest{
		Activity: "road-crossing", Score: 7, Email: "bob@example.com",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Bob's record must be untouched.
	bobToken := mintToken(t, "bob@example.com")
	current := decode[dto.CurrentScoreResponse](t, ta.request(t, http.MethodGet, "/api/score", bobToken, nil))
	assert.Empty(t, current.Score)
}

func TestSubmitScoreValidation(t *testing.T) {
	ta := newScoreTestApp(t)
	token := mintToken(t, "alice@example.com")

	cases := []struct {
		name string
		req  dto.SubmitScoreRequest
	}{
		{"unknown activity", dto.SubmitScoreRequest{Activity: "laser-tag", Score: 1, Email: "alice@example.com"}},
		{"score above maximum", dto.SubmitScoreRequest{Activity: "object-quiz", Score: 11, Email: "alice@example.com"}},
		{"negative score", dto.SubmitScoreRequest{Activity: "object-quiz", Score: -2, Email: "alice@example.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := ta.request(t, http.MethodPost, "/api/submit-score", token, tc.req)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	// No rejected submission may have created a record.
	current := decode[dto.CurrentScoreResponse](t, ta.request(t, http.MethodGet, "/api/score", token, nil))
	assert.Empty(t, current.Score)
}

func TestGetCurrentEmptyStateIsNotAnError(t *testing.T) {
	ta := newScoreTestApp(t)
	token := mintToken(t, "new-user@example.com")

	resp := ta.request(t, http.MethodGet, "/api/score", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	current := decode[dto.CurrentScoreResponse](t, resp)
	assert.NotNil(t, current.Score)
	assert.Empty(t, current.Score)
}

func TestPastScoresChronology(t *testing.T) {
	ta := newScoreTestApp(t)
	token := mintToken(t, "alice@example.com")

	submissions := []dto.SubmitScoreRequest{
		{Activity: "road-crossing", Score: 7, Email: "alice@example.com"},
		{Activity: "road-crossing", Score: 4, Email: "alice@example.com"},
		{Activity: "solar-system", Score: 3, Email: "alice@example.com"},
	}
	for _, sub := range submissions {
		resp := ta.request(t, http.MethodPost, "/api/submit-score", token, sub)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := ta.request(t, http.MethodGet, "/api/past-scores", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	past := decode[dto.PastScoresResponse](t, resp)
	require.Len(t, past.PastScores, 3)

	// Every entry is a full snapshot; the lower resubmission did not
	// regress road-crossing.
	assert.Equal(t, map[string]int{"road-crossing": 7}, past.PastScores[0].Score)
	assert.Equal(t, map[string]int{"road-crossing": 7}, past.PastScores[1].Score)
	assert.Equal(t, map[string]int{"road-crossing": 7, "solar-system": 3}, past.PastScores[2].Score)

	for i := 1; i < len(past.PastScores); i++ {
		assert.LessOrEqual(t, past.PastScores[i-1].Timestamp, past.PastScores[i].Timestamp)
	}
}
