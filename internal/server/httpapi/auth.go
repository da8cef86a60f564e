package httpapi

import (
	"encoding/json"
	"net/http"
)

const maxBodySize = 1 << 20 // 1MB

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the payload of both credential endpoints.
type authResponse struct {
	Token string    `json:"token"`
	User  *UserView `json:"user"`
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeJSON(w, http.StatusBadRequest, "Invalid request format", nil)
		return false
	}
	return true
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !s.decode(w, r, &req) {
		return
	}

	res, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		s.writeError(r, w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, "User registered successfully", authResponse{
		Token: res.Token,
		User:  newUserView(res.User),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decode(w, r, &req) {
		return
	}

	res, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(r, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, "Login successful", authResponse{
		Token: res.Token,
		User:  newUserView(res.User),
	})
}
