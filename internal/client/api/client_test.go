package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func writeEnvelope(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": map[string]any{"code": code, "message": message},
		"data":   data,
	})
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected call: %s %s", r.Method, r.URL.Path)
		}
		writeEnvelope(w, http.StatusOK, "Login successful", map[string]any{
			"token": "tok-1",
			"user":  map[string]any{"id": "u-1", "email": "a@x.com"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	user, err := c.Login(context.Background(), "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if c.Token() != "tok-1" {
		t.Fatalf("token not stored, got %q", c.Token())
	}
}

func TestTasks_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, "Tasks retrieved successfully", []map[string]any{
			{"id": "t-1", "title": "a", "status": "PENDING"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	c.token = "tok-9"

	tasks, err := c.Tasks(context.Background(), "ALL")
	if err != nil {
		t.Fatalf("Tasks error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "t-1" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
	if gotAuth != "Bearer tok-9" {
		t.Fatalf("want bearer header, got %q", gotAuth)
	}
}

func TestDo_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "Invalid email or password", nil)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	_, err := c.Login(context.Background(), "a@x.com", "wrong")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want APIError, got %v", err)
	}
	if apiErr.Code != http.StatusUnauthorized || apiErr.Message != "Invalid email or password" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestDo_ServerDown(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Second)

	_, err := c.Tasks(context.Background(), "")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestAttachFile_UploadsThroughPresignedURL(t *testing.T) {
	var uploaded []byte

	store := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("want PUT to store, got %s", r.Method)
		}
		uploaded, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer store.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusCreated, "Attachment registered successfully", map[string]any{
			"id":       "a-1",
			"fileName": "report.pdf",
			"url":      store.URL + "/attachments/tasks/k?signed",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	c.token = "tok-1"

	attachment, err := c.AttachFile(context.Background(), "t-1", "report.pdf", []byte("file-bytes"))
	if err != nil {
		t.Fatalf("AttachFile error: %v", err)
	}
	if attachment.ID != "a-1" {
		t.Fatalf("unexpected attachment: %+v", attachment)
	}
	if string(uploaded) != "file-bytes" {
		t.Fatalf("store received %q", uploaded)
	}
}
