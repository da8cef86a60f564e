package httpapi

import (
	"net/http"
)

type addTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type editTaskRequest struct {
	Status string `json:"status"`
}

type addAttachmentRequest struct {
	FileName string `json:"fileName"`
}

func (s *Server) handleGetTasks(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		s.writeJSON(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	tasks, err := s.tasks.List(r.Context(), identity.ID, r.URL.Query().Get("status"))
	if err != nil {
		s.writeError(r, w, err)
		return
	}

	views := make([]*TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, newTaskView(t))
	}

	s.writeJSON(w, http.StatusOK, "Tasks retrieved successfully", views)
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		s.writeJSON(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var req addTaskRequest
	if !s.decode(w, r, &req) {
		return
	}

	task, err := s.tasks.Create(r.Context(), identity.ID, req.Title, req.Description)
	if err != nil {
		s.writeError(r, w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, "Task created successfully", newTaskView(task))
}

func (s *Server) handleEditTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		s.writeJSON(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var req editTaskRequest
	if !s.decode(w, r, &req) {
		return
	}

	task, err := s.tasks.UpdateStatus(r.Context(), identity.ID, r.PathValue("id"), req.Status)
	if err != nil {
		s.writeError(r, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, "Task status updated", newTaskView(task))
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		s.writeJSON(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	if err := s.tasks.Delete(r.Context(), identity.ID, r.PathValue("id")); err != nil {
		s.writeError(r, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, "Task deleted successfully", nil)
}

func (s *Server) handleAddAttachment(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		s.writeJSON(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var req addAttachmentRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.FileName == "" {
		s.writeJSON(w, http.StatusBadRequest, "File name is required", nil)
		return
	}

	link, err := s.tasks.AttachFile(r.Context(), identity.ID, r.PathValue("id"), req.FileName)
	if err != nil {
		s.writeError(r, w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, "Attachment registered successfully", newAttachmentView(link))
}

func (s *Server) handleListAttachments(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		s.writeJSON(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	links, err := s.tasks.ListAttachments(r.Context(), identity.ID, r.PathValue("id"))
	if err != nil {
		s.writeError(r, w, err)
		return
	}

	views := make([]*AttachmentView, 0, len(links))
	for _, l := range links {
		views = append(views, newAttachmentView(l))
	}

	s.writeJSON(w, http.StatusOK, "Attachments retrieved successfully", views)
}
