package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/minjongk/teamauth/internal/common"
	"github.com/minjongk/teamauth/internal/server/services"
)

type signupRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out := s.auth.SignUp(r.Context(), req.Username, req.Password, req.DisplayName)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := s.auth.LogIn(r.Context(), req.Username, req.Password)
	if err != nil {
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.auth.LogOut(r.Context()))
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeUnauthenticated(w)
		return
	}

	out, err := s.auth.Me(r.Context(), token)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeUnauthenticated(w)
			return
		}
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, services.Outcome{
			Code:    "BAD_REQUEST",
			Message: "request body must be valid JSON",
		})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, out services.Outcome) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(out)
}

func writeUnauthenticated(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, services.Outcome{
		Code:    "UNAUTHENTICATED",
		Message: "missing or invalid bearer token",
	})
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, services.Outcome{
		Code:    "INTERNAL_ERROR",
		Message: "internal error",
	})
}
