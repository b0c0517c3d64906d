package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega-dev/taskboard-api/internal/domain"
)

// newTaskTestRouter mounts the task handler behind a fake authentication
// middleware for the given user.
func newTaskTestRouter(store *mockTaskStore, userID uuid.UUID) http.Handler {
	handler := NewTaskHandler(store)

	r := chi.NewRouter()
	r.Use(withUserID(userID))
	r.Post("/tasks", handler.Create)
	r.Get("/tasks", handler.List)
	r.Get("/tasks/{id}", handler.Get)
	r.Put("/tasks/{id}", handler.Update)
	r.Delete("/tasks/{id}", handler.Delete)
	r.Post("/tasks/{id}/restore", handler.Restore)
	return r
}

func jsonRequest(t *testing.T, method, path string, payload any) *http.Request {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func mustCreateTask(t *testing.T, store *mockTaskStore, userID uuid.UUID, title string) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(userID, title, "")
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), task))
	return task
}

func TestTaskCreate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	store := newMockTaskStore()
	router := newTaskTestRouter(store, userID)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/tasks", CreateTaskRequest{
		Title:       "write report",
		Description: "quarterly numbers",
	}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, domain.TaskStatusPending, created.Status)
}

func TestTaskCreateRejectsPlaceholderTitle(t *testing.T) {
	t.Parallel()

	router := newTaskTestRouter(newMockTaskStore(), uuid.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/tasks", CreateTaskRequest{
		Title: "string",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskGetOwnership(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	intruder := uuid.New()
	store := newMockTaskStore()
	task := mustCreateTask(t, store, owner, "mine")

	rec := httptest.NewRecorder()
	newTaskTestRouter(store, owner).
		ServeHTTP(rec, jsonRequest(t, http.MethodGet, "/tasks/"+task.ID.String(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	newTaskTestRouter(store, intruder).
		ServeHTTP(rec, jsonRequest(t, http.MethodGet, "/tasks/"+task.ID.String(), nil))
	assert.Equal(t, http.StatusForbidden, rec.Code, "another user's task is forbidden, not hidden")
}

func TestTaskGetNotFound(t *testing.T) {
	t.Parallel()

	router := newTaskTestRouter(newMockTaskStore(), uuid.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodGet, "/tasks/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodGet, "/tasks/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskUpdate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	store := newMockTaskStore()
	task := mustCreateTask(t, store, userID, "draft")
	router := newTaskTestRouter(store, userID)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodPut, "/tasks/"+task.ID.String(), UpdateTaskRequest{
		Title:  "final",
		Status: "completed",
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := store.Get(context.Background(), task.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "final", stored.Title)
	assert.Equal(t, domain.TaskStatusCompleted, stored.Status)
}

func TestTaskUpdateRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	store := newMockTaskStore()
	task := mustCreateTask(t, store, userID, "draft")
	router := newTaskTestRouter(store, userID)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodPut, "/tasks/"+task.ID.String(), UpdateTaskRequest{
		Title:  "final",
		Status: "archived",
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskSoftDeleteAndRestore(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	store := newMockTaskStore()
	task := mustCreateTask(t, store, userID, "to delete")
	router := newTaskTestRouter(store, userID)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodDelete, "/tasks/"+task.ID.String(), nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodGet, "/tasks/"+task.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code, "soft-deleted tasks disappear from reads")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/tasks/"+task.ID.String()+"/restore", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodGet, "/tasks/"+task.ID.String(), nil))
	assert.Equal(t, http.StatusOK, rec.Code, "restore brings the task back")
}

func TestTaskListScopedToOwnerAndDeletionFlag(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	other := uuid.New()
	store := newMockTaskStore()
	kept := mustCreateTask(t, store, owner, "kept")
	deleted := mustCreateTask(t, store, owner, "deleted")
	mustCreateTask(t, store, other, "not mine")
	require.NoError(t, store.SoftDelete(context.Background(), deleted.ID))

	router := newTaskTestRouter(store, owner)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodGet, "/tasks", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []domain.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, kept.ID, tasks[0].ID)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodGet, "/tasks?include_deleted=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	assert.Len(t, tasks, 2)
}
