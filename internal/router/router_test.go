package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/coursehive/config"
	adminctrl "github.com/lshigami/coursehive/internal/controller/admin"
	userctrl "github.com/lshigami/coursehive/internal/controller/user"
	"github.com/lshigami/coursehive/internal/event"
	"github.com/lshigami/coursehive/internal/middleware"
	"github.com/lshigami/coursehive/internal/model"
	"github.com/lshigami/coursehive/internal/repository"
	"github.com/lshigami/coursehive/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userSecret  = "user-secret"
	adminSecret = "admin-secret"
)

type failingTestRepository struct {
	repository.TestRepository
}

func (failingTestRepository) FindAllPublished(context.Context) ([]model.Test, error) {
	return nil, errors.New("connection refused by db-7.internal")
}

type apiClient struct {
	t      *testing.T
	router http.Handler
}

func newAPI(t *testing.T, tests repository.TestRepository, attempts repository.AttemptRepository) *apiClient {
	t.Helper()
	cfg := &config.Config{
		Server: config.Server{GinMode: gin.TestMode},
		JWT:    config.JWT{UserSecret: userSecret, AdminSecret: adminSecret},
	}
	pub := event.LogPublisher{}
	clock := service.SystemClock()
	results := service.NewAttemptService(tests, attempts, service.NewScoreConverterService())

	r := NewGinEngine(cfg)
	RegisterRoutes(r, cfg,
		adminctrl.NewAdminTestController(service.NewAdminTestService(tests, attempts, pub, clock), results),
		userctrl.NewUserTestController(
			service.NewUserTestService(tests),
			service.NewTestSubmissionService(tests, attempts, pub, clock),
			results,
		),
	)
	return &apiClient{t: t, router: r}
}

func newMemoryAPI(t *testing.T) *apiClient {
	store := repository.NewMemoryStore()
	return newAPI(t, store.Tests(), store.Attempts())
}

func token(t *testing.T, secret, id string) string {
	t.Helper()
	tok, err := middleware.NewTokenVerifier(secret).Sign(id, time.Hour)
	require.NoError(t, err)
	return tok
}

func (a *apiClient) do(method, path, tok string, body interface{}) (int, map[string]interface{}) {
	a.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

var createBody = map[string]interface{}{
	"title":           "Physics quiz",
	"durationMinutes": 10,
	"questions": []map[string]interface{}{
		{"text": "Unit of force?", "options": []string{"joule", "newton", "watt"}, "correctIndex": 1, "marks": 2},
		{"text": "Unit of power?", "options": []string{"watt", "volt"}, "correctIndex": 0, "marks": 3},
	},
}

func TestHealth(t *testing.T) {
	api := newMemoryAPI(t)
	status, body := api.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
}

func TestAuthentication(t *testing.T) {
	api := newMemoryAPI(t)

	status, body := api.do(http.MethodGet, "/api/v1/tests", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "No token provided!", body["message"])
	assert.Equal(t, false, body["success"])

	status, _ = api.do(http.MethodGet, "/api/v1/admin/tests", token(t, userSecret, "user-1"), nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = api.do(http.MethodGet, "/api/v1/tests", token(t, adminSecret, "admin-1"), nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestTestLifecycle(t *testing.T) {
	api := newMemoryAPI(t)
	admin := token(t, adminSecret, "admin-1")
	alice := token(t, userSecret, "alice")
	bob := token(t, userSecret, "bob")

	status, body := api.do(http.MethodPost, "/api/v1/admin/tests", admin, createBody)
	require.Equal(t, http.StatusCreated, status, body)
	test := body["test"].(map[string]interface{})
	testID := test["id"].(string)
	assert.Equal(t, float64(5), test["totalMarks"])
	assert.Equal(t, "admin-1", test["createdBy"])

	status, body = api.do(http.MethodGet, "/api/v1/tests", alice, nil)
	require.Equal(t, http.StatusOK, status)
	tests := body["tests"].([]interface{})
	require.Len(t, tests, 1)
	safeQuestion := tests[0].(map[string]interface{})["questions"].([]interface{})[0].(map[string]interface{})
	assert.NotContains(t, safeQuestion, "correctIndex")
	assert.NotContains(t, safeQuestion, "negativeMarks")

	status, body = api.do(http.MethodGet, "/api/v1/tests/"+testID, alice, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Physics quiz", body["test"].(map[string]interface{})["title"])

	status, body = api.do(http.MethodPost, "/api/v1/tests/"+testID+"/start", alice, nil)
	require.Equal(t, http.StatusOK, status, body)
	attemptID := body["attemptId"].(string)
	assert.NotEmpty(t, body["expiresAt"])
	assert.Len(t, body["test"].(map[string]interface{})["questions"], 2)

	submission := map[string]interface{}{
		"attemptId": attemptID,
		"answers": []map[string]interface{}{
			{"questionIndex": 0, "selectedIndex": 1},
			{"questionIndex": 1, "selectedIndex": 1},
		},
	}
	status, body = api.do(http.MethodPost, "/api/v1/tests/"+testID+"/submit", bob, submission)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = api.do(http.MethodPost, "/api/v1/tests/"+testID+"/submit", alice, submission)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["score"])
	assert.Equal(t, float64(5), body["maxScore"])
	assert.Equal(t, false, body["autoSubmitted"])

	status, body = api.do(http.MethodPost, "/api/v1/tests/"+testID+"/submit", alice, submission)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, body["success"])

	status, body = api.do(http.MethodPost, "/api/v1/tests/"+testID+"/start", alice, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "You have already attempted this test and retake not allowed", body["message"])

	for _, path := range []string{"/api/v1/attempts/", "/api/v1/results/"} {
		status, body = api.do(http.MethodGet, path+attemptID, alice, nil)
		require.Equal(t, http.StatusOK, status)
		attempt := body["attempt"].(map[string]interface{})
		assert.Equal(t, "submitted", attempt["status"])
		assert.Equal(t, float64(40), attempt["percentage"])
	}

	status, _ = api.do(http.MethodGet, "/api/v1/attempts/"+attemptID, bob, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = api.do(http.MethodGet, "/api/v1/admin/tests/"+testID+"/attempts", admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["attempts"], 1)

	status, body = api.do(http.MethodPut, "/api/v1/admin/tests/"+testID, admin, map[string]interface{}{"published": false})
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, false, body["test"].(map[string]interface{})["published"])

	status, _ = api.do(http.MethodGet, "/api/v1/tests/"+testID, alice, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = api.do(http.MethodDelete, "/api/v1/admin/tests/"+testID, token(t, adminSecret, "admin-2"), nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = api.do(http.MethodDelete, "/api/v1/admin/tests/"+testID, admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, body = api.do(http.MethodGet, "/api/v1/admin/tests/"+testID+"/attempts", admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["attempts"])
}

func TestBadRequests(t *testing.T) {
	api := newMemoryAPI(t)
	admin := token(t, adminSecret, "admin-1")
	alice := token(t, userSecret, "alice")

	status, body := api.do(http.MethodPost, "/api/v1/admin/tests", admin, `{"title": "x", "durationMinutes": 5}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["message"], "questions")

	status, _ = api.do(http.MethodPost, "/api/v1/admin/tests", admin, `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = api.do(http.MethodGet, "/api/v1/tests/not-a-uuid", alice, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid Test ID format", body["message"])

	status, _ = api.do(http.MethodGet, "/api/v1/tests/6f1c2d9e-1b7a-4c55-9a43-0a3f5b8f7e21", alice, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = api.do(http.MethodPost, "/api/v1/tests/6f1c2d9e-1b7a-4c55-9a43-0a3f5b8f7e21/submit", alice, `{"answers": []}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = api.do(http.MethodPost, "/api/v1/tests/6f1c2d9e-1b7a-4c55-9a43-0a3f5b8f7e21/submit", alice, `{"attemptId": "abc"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = api.do(http.MethodGet, "/api/v1/attempts/6f1c2d9e-1b7a-4c55-9a43-0a3f5b8f7e21", alice, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUnexpectedErrorsAreNotLeaked(t *testing.T) {
	store := repository.NewMemoryStore()
	api := newAPI(t, failingTestRepository{TestRepository: store.Tests()}, store.Attempts())

	status, body := api.do(http.MethodGet, "/api/v1/tests", token(t, userSecret, "alice"), nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["message"])
	assert.Equal(t, false, body["success"])
}
