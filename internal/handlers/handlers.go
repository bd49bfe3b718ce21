// Package handlers translates HTTP requests into store and session calls and
// renders the result. Handlers hold no state of their own.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/averyk/miniblog/internal/auth"
	"github.com/averyk/miniblog/internal/logging"
	"github.com/averyk/miniblog/internal/render"
	"github.com/averyk/miniblog/internal/store"
)

// Handlers bundles the collaborators every route needs.
type Handlers struct {
	store    *store.Store
	sessions *auth.Sessions
	render   *render.Renderer
	log      logging.Logger
}

// New wires the handler set.
func New(st *store.Store, sessions *auth.Sessions, rd *render.Renderer, log logging.Logger) *Handlers {
	return &Handlers{store: st, sessions: sessions, render: rd, log: log}
}

// Routes returns the application router. Everything below /dashboard requires
// an established session.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Index)
	r.Get("/health", h.Health)
	r.Get("/signup", h.SignupForm)
	r.Post("/signup", h.Signup)
	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(h.sessions.RequireIdentity)
		r.Get("/dashboard", h.Dashboard)
		r.Get("/create", h.CreateForm)
		r.Post("/create", h.Create)
		r.Get("/edit/{postID}", h.EditForm)
		r.Post("/edit/{postID}", h.Edit)
		r.Get("/delete/{postID}", h.Delete)
	})

	return r
}

// Index sends authenticated clients to the dashboard and everyone else to
// signup.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Current(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/signup", http.StatusFound)
}

// Health is the liveness probe.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

func (h *Handlers) renderPage(w http.ResponseWriter, r *http.Request, page string, data any) {
	if err := h.render.HTML(w, page, data); err != nil {
		h.log.Error(r.Context(), "render failed", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
