package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andrejsm/taskkeeper/internal/common"
	"github.com/andrejsm/taskkeeper/internal/server/models"
	"github.com/andrejsm/taskkeeper/internal/server/services"
)

func postJSON(t *testing.T, ts *httptest.Server, path, body, token string) *http.Response {
	t.Helper()
	return doJSON(t, ts, http.MethodPost, path, body, token)
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, body, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("error building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func TestHandleRegister_Success(t *testing.T) {
	user := &models.User{
		ID: "u-1", Name: "Alice", Email: "a@x.com",
		Password:  "$2a$10$secret-hash",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	s := newTestServer(&fakeUserService{
		registerRes: &services.AuthResult{Token: "tok-1", User: user},
	}, &fakeTaskService{})
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	res := postJSON(t, ts, "/api/auth/register",
		`{"name":"Alice","email":"a@x.com","password":"pw","confirmPassword":"pw"}`, "")

	if res.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", res.StatusCode)
	}

	env := decodeEnvelope(t, res)
	if env.Status.Code != http.StatusCreated || env.Status.Message != "User registered successfully" {
		t.Fatalf("unexpected status: %+v", env.Status)
	}

	raw, err := json.Marshal(env.Data)
	if err != nil {
		t.Fatalf("error re-marshalling data: %v", err)
	}
	var payload struct {
		Token string `json:"token"`
		User  map[string]any
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("error decoding payload: %v", err)
	}
	if payload.Token != "tok-1" {
		t.Fatalf("want token tok-1, got %q", payload.Token)
	}

	// the hash must never leave the server
	if strings.Contains(string(raw), "secret-hash") || strings.Contains(strings.ToLower(string(raw)), "password") {
		t.Fatalf("response leaks password material: %s", raw)
	}
}

func TestHandleRegister_Errors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"missing fields", common.ErrorFieldsRequired, http.StatusBadRequest, "Name, email, and password are required"},
		{"mismatch", common.ErrorPasswordMismatch, http.StatusBadRequest, "Password and confirm password do not match"},
		{"duplicate", common.ErrorEmailInUse, http.StatusConflict, "Email already in use"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestServer(&fakeUserService{registerErr: c.err}, &fakeTaskService{})
			ts := httptest.NewServer(s.Routes())
			defer ts.Close()

			res := postJSON(t, ts, "/api/auth/register",
				`{"name":"Alice","email":"a@x.com","password":"pw","confirmPassword":"pw"}`, "")
			env := decodeEnvelope(t, res)

			if res.StatusCode != c.wantCode {
				t.Fatalf("want %d, got %d", c.wantCode, res.StatusCode)
			}
			if env.Status.Message != c.wantMsg {
				t.Fatalf("want %q, got %q", c.wantMsg, env.Status.Message)
			}
		})
	}
}

func TestHandleRegister_BadJSON(t *testing.T) {
	s := newTestServer(&fakeUserService{}, &fakeTaskService{})
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	res := postJSON(t, ts, "/api/auth/register", `{"name":`, "")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", res.StatusCode)
	}
	env := decodeEnvelope(t, res)
	if env.Status.Message != "Invalid request format" {
		t.Fatalf("unexpected message %q", env.Status.Message)
	}
}

func TestHandleLogin(t *testing.T) {
	user := &models.User{ID: "u-1", Name: "Alice", Email: "a@x.com", Password: "hash"}

	t.Run("success", func(t *testing.T) {
		s := newTestServer(&fakeUserService{
			loginRes: &services.AuthResult{Token: "tok-2", User: user},
		}, &fakeTaskService{})
		ts := httptest.NewServer(s.Routes())
		defer ts.Close()

		res := postJSON(t, ts, "/api/auth/login", `{"email":"a@x.com","password":"pw"}`, "")
		if res.StatusCode != http.StatusOK {
			t.Fatalf("want 200, got %d", res.StatusCode)
		}
		env := decodeEnvelope(t, res)
		if env.Status.Message != "Login successful" {
			t.Fatalf("unexpected message %q", env.Status.Message)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		s := newTestServer(&fakeUserService{loginErr: common.ErrorInvalidCredentials}, &fakeTaskService{})
		ts := httptest.NewServer(s.Routes())
		defer ts.Close()

		res := postJSON(t, ts, "/api/auth/login", `{"email":"a@x.com","password":"wrong"}`, "")
		env := decodeEnvelope(t, res)

		if res.StatusCode != http.StatusUnauthorized {
			t.Fatalf("want 401, got %d", res.StatusCode)
		}
		if env.Status.Message != "Invalid email or password" {
			t.Fatalf("unexpected message %q", env.Status.Message)
		}
	})

	t.Run("internal error stays generic", func(t *testing.T) {
		s := newTestServer(&fakeUserService{loginErr: common.ErrorInternal}, &fakeTaskService{})
		ts := httptest.NewServer(s.Routes())
		defer ts.Close()

		res := postJSON(t, ts, "/api/auth/login", `{"email":"a@x.com","password":"pw"}`, "")
		env := decodeEnvelope(t, res)

		if res.StatusCode != http.StatusInternalServerError {
			t.Fatalf("want 500, got %d", res.StatusCode)
		}
		if env.Status.Message != "Internal server error" {
			t.Fatalf("internals must not leak, got %q", env.Status.Message)
		}
	})
}

func TestHandleGetTasks(t *testing.T) {
	now := time.Now()
	s := newTestServer(
		&fakeUserService{active: &models.User{ID: "u-1", Email: "a@x.com"}},
		&fakeTaskService{list: []*models.Task{
			{ID: "t-2", Title: "new", Status: models.TaskStatusPending, CreatedAt: now},
			{ID: "t-1", Title: "old", Status: models.TaskStatusCompleted, CreatedAt: now.Add(-time.Hour)},
		}},
	)
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	token := issueToken(t, "u-1", "a@x.com")

	res := doJSON(t, ts, http.MethodGet, "/api/task/get-tasks?status=ALL", "", token)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", res.StatusCode)
	}
	env := decodeEnvelope(t, res)
	if env.Status.Message != "Tasks retrieved successfully" {
		t.Fatalf("unexpected message %q", env.Status.Message)
	}

	items, ok := env.Data.([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("want 2 tasks, got %#v", env.Data)
	}
}

func TestHandleGetTasks_InvalidStatus(t *testing.T) {
	s := newTestServer(
		&fakeUserService{active: &models.User{ID: "u-1"}},
		&fakeTaskService{listErr: common.ErrorInvalidStatus},
	)
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	res := doJSON(t, ts, http.MethodGet, "/api/task/get-tasks?status=DONE", "", issueToken(t, "u-1", "a@x.com"))
	env := decodeEnvelope(t, res)

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", res.StatusCode)
	}
	if env.Status.Message != "Invalid or missing status" {
		t.Fatalf("unexpected message %q", env.Status.Message)
	}
}

func TestHandleAddTask(t *testing.T) {
	s := newTestServer(
		&fakeUserService{active: &models.User{ID: "u-1"}},
		&fakeTaskService{created: &models.Task{ID: "t-1", Title: "write report", Status: models.TaskStatusPending}},
	)
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	res := postJSON(t, ts, "/api/task/add-task", `{"title":"write report"}`, issueToken(t, "u-1", "a@x.com"))
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", res.StatusCode)
	}
	env := decodeEnvelope(t, res)
	if env.Status.Message != "Task created successfully" {
		t.Fatalf("unexpected message %q", env.Status.Message)
	}
}

func TestHandleEditTask_NotOwned(t *testing.T) {
	s := newTestServer(
		&fakeUserService{active: &models.User{ID: "u-2"}},
		&fakeTaskService{updateErr: common.ErrorTaskNotFound},
	)
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	res := doJSON(t, ts, http.MethodPatch, "/api/task/edit-task/t-1",
		`{"status":"COMPLETED"}`, issueToken(t, "u-2", "b@x.com"))
	env := decodeEnvelope(t, res)

	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", res.StatusCode)
	}
	if env.Status.Message != "Task not found or access denied" {
		t.Fatalf("unexpected message %q", env.Status.Message)
	}
}

func TestHandleDeleteTask(t *testing.T) {
	s := newTestServer(
		&fakeUserService{active: &models.User{ID: "u-1"}},
		&fakeTaskService{},
	)
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	res := doJSON(t, ts, http.MethodDelete, "/api/task/delete-task/t-1", "", issueToken(t, "u-1", "a@x.com"))
	if res.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", res.StatusCode)
	}
	env := decodeEnvelope(t, res)
	if env.Status.Message != "Task deleted successfully" {
		t.Fatalf("unexpected message %q", env.Status.Message)
	}
}

func TestHandleAddAttachment(t *testing.T) {
	link := &services.AttachmentLink{
		Attachment: &models.Attachment{ID: "a-1", TaskID: "t-1", FileName: "report.pdf", StorageKey: "tasks/k"},
		URL:        "http://localhost:9000/attachments/tasks/k?signed",
	}
	s := newTestServer(
		&fakeUserService{active: &models.User{ID: "u-1"}},
		&fakeTaskService{attached: link},
	)
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	token := issueToken(t, "u-1", "a@x.com")

	res := postJSON(t, ts, "/api/task/t-1/attachments", `{"fileName":"report.pdf"}`, token)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", res.StatusCode)
	}
	env := decodeEnvelope(t, res)

	raw, _ := json.Marshal(env.Data)
	if !strings.Contains(string(raw), "signed") {
		t.Fatalf("response must carry the presigned URL, got %s", raw)
	}

	// missing file name is rejected before the service is called
	res = postJSON(t, ts, "/api/task/t-1/attachments", `{}`, token)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for empty fileName, got %d", res.StatusCode)
	}
	res.Body.Close()
}
