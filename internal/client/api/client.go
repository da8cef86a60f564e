// Package api is the HTTP client for the TaskKeeper server. It speaks the
// server's envelope protocol and carries the access token on every
// authenticated call.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrUnavailable marks transport-level failures (server down, DNS,
// timeout) as opposed to an error answer from the server.
var ErrUnavailable = errors.New("server unavailable")

// APIError is a non-success answer from the server, as carried in the
// response envelope.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d)", e.Message, e.Code)
}

type status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Status status          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// User mirrors the server's account view.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Task mirrors the server's task view.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Attachment mirrors the server's attachment view. URL is presigned and
// short-lived.
type Attachment struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

type authPayload struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Token returns the access token captured by the last successful
// Register or Login call.
func (c *Client) Token() string {
	return c.token
}

// Logout drops the stored access token.
func (c *Client) Logout() {
	c.token = ""
}

// do sends a JSON request and decodes the envelope. A non-2xx answer
// becomes an *APIError carrying the server's status message.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{Code: env.Status.Code, Message: env.Status.Message}
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("error decoding payload: %w", err)
		}
	}

	return nil
}

// Register creates an account and stores the returned access token.
func (c *Client) Register(ctx context.Context, name, email, password, confirmPassword string) (*User, error) {
	var payload authPayload
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"name":            name,
		"email":           email,
		"password":        password,
		"confirmPassword": confirmPassword,
	}, &payload)
	if err != nil {
		return nil, err
	}
	c.token = payload.Token
	return payload.User, nil
}

// Login authenticates and stores the returned access token.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var payload authPayload
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &payload)
	if err != nil {
		return nil, err
	}
	c.token = payload.Token
	return payload.User, nil
}

// Tasks lists the account's tasks, optionally filtered by status.
func (c *Client) Tasks(ctx context.Context, status string) ([]Task, error) {
	path := "/api/task/get-tasks"
	if status != "" {
		path += "?status=" + status
	}
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) AddTask(ctx context.Context, title, description string) (*Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPost, "/api/task/add-task", map[string]string{
		"title":       title,
		"description": description,
	}, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) EditTask(ctx context.Context, id, status string) (*Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPatch, "/api/task/edit-task/"+id, map[string]string{
		"status": status,
	}, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/task/delete-task/"+id, nil, nil)
}

// AttachFile registers an attachment on the task and uploads the bytes
// through the presigned URL the server answers with.
func (c *Client) AttachFile(ctx context.Context, taskID, fileName string, data []byte) (*Attachment, error) {
	var attachment Attachment
	err := c.do(ctx, http.MethodPost, "/api/task/"+taskID+"/attachments", map[string]string{
		"fileName": fileName,
	}, &attachment)
	if err != nil {
		return nil, err
	}

	if err := UploadToPresignedURL(ctx, c.http, attachment.URL, data); err != nil {
		return nil, err
	}

	return &attachment, nil
}

// Attachments lists the task's attachments with fresh download URLs.
func (c *Client) Attachments(ctx context.Context, taskID string) ([]Attachment, error) {
	var attachments []Attachment
	if err := c.do(ctx, http.MethodGet, "/api/task/"+taskID+"/attachments", nil, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}
