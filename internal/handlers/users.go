package handlers

import (
	"errors"
	"net/http"

	"github.com/averyk/miniblog/internal/auth"
	"github.com/averyk/miniblog/internal/common"
)

// authFormData feeds the signup and login templates.
type authFormData struct {
	Username string
	Error    string
}

// SignupForm renders the signup page. Clients that already hold a session are
// sent to the dashboard instead.
func (h *Handlers) SignupForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Current(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	h.renderPage(w, r, "signup", authFormData{})
}

// Signup creates a user from the submitted username and establishes the
// session. Validation problems redisplay the form without touching state.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Current(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	username := r.FormValue("username")
	user, err := h.store.CreateUser(r.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			h.renderPage(w, r, "signup", authFormData{Username: username, Error: "Username required"})
		case errors.Is(err, common.ErrUsernameTaken):
			h.renderPage(w, r, "signup", authFormData{Username: username, Error: "Username already exists"})
		default:
			h.log.Error(r.Context(), "signup failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	h.establish(w, r, auth.Identity{UserID: user.ID, Username: user.Username})
}

// LoginForm renders the login page.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Current(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	h.renderPage(w, r, "login", authFormData{})
}

// Login binds the session to an existing user. There is no credential check
// beyond the username lookup; that is the contract of this application.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Current(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	username := r.FormValue("username")
	user, err := h.store.UserByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			h.renderPage(w, r, "login", authFormData{Username: username, Error: "User not found"})
			return
		}
		h.log.Error(r.Context(), "login failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.establish(w, r, auth.Identity{UserID: user.ID, Username: user.Username})
}

// Logout clears the session and returns to signup.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		h.log.Error(r.Context(), "clearing session failed", "error", err)
	}
	http.Redirect(w, r, "/signup", http.StatusFound)
}

func (h *Handlers) establish(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	if err := h.sessions.Establish(w, r, id); err != nil {
		h.log.Error(r.Context(), "saving session failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}
