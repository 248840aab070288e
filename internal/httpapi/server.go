package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/yczhou/minibattle/internal/account"
)

// UserDirectory is the account surface the server exposes.
type UserDirectory interface {
	CreateUser(ctx context.Context, userID string) error
	DeleteUser(ctx context.Context, userID string) error
}

// Server serves the account-management endpoints.
type Server struct {
	directory UserDirectory
	logger    *slog.Logger
}

// NewServer creates the account HTTP server.
func NewServer(directory UserDirectory, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{directory: directory, logger: logger}
}

// Handler returns the HTTP handler for the account surface.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/create_user", s.route(s.handleCreateUser))
	mux.HandleFunc("/delete_user", s.route(s.handleDeleteUser))
	mux.HandleFunc("/", s.handleNotRegistered)
	return mux
}

// userRequest is the JSON body of both account endpoints.
type userRequest struct {
	UserID string `json:"user_id"`
}

// msgResponse is the JSON body of every account response.
type msgResponse struct {
	Msg string `json:"msg"`
}

// route wraps an endpoint with method routing, CORS preflight, and the
// catch-all error policy. Handlers respond themselves on success and
// return the failure otherwise.
func (s *Server) route(post func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodOptions:
			s.respond(w, http.StatusOK, "options success")

		case http.MethodPost:
			err := post(w, r)
			switch {
			case err == nil:
			case errors.Is(err, account.ErrEmptyUserID),
				errors.Is(err, account.ErrUserExists),
				errors.Is(err, account.ErrUserNotFound):
				s.respond(w, http.StatusBadRequest, err.Error())
			default:
				s.logger.Error("account request failed", "path", r.URL.Path, "error", err)
				s.respond(w, http.StatusInternalServerError, err.Error())
			}

		default:
			s.respond(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	}
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) error {
	req := decodeUserRequest(r)
	if err := s.directory.CreateUser(r.Context(), req.UserID); err != nil {
		return err
	}
	s.respond(w, http.StatusOK, "create user success")
	return nil
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) error {
	req := decodeUserRequest(r)
	if err := s.directory.DeleteUser(r.Context(), req.UserID); err != nil {
		return err
	}
	s.respond(w, http.StatusOK, "delete user success")
	return nil
}

func (s *Server) handleNotRegistered(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusNotFound, fmt.Sprintf("Path '%s' not registered.", r.URL.Path))
}

// decodeUserRequest parses the body, treating a missing or malformed
// body as an empty request so validation produces "empty user_id".
func decodeUserRequest(r *http.Request) userRequest {
	var req userRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}
	return req
}

// respond writes the CORS headers and the JSON message body.
func (s *Server) respond(w http.ResponseWriter, status int, msg string) {
	writeCORS(w.Header())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(msgResponse{Msg: msg})
}

func writeCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST,OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type,Access-Control-Allow-Origin,Access-Control-Allow-Methods,Access-Control-Allow-Headers")
}
