// Package auth binds identities to sessions and decides what the current
// identity may see or touch.
package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "miniblog_session"

// Identity is the {user id, username} pair bound to a session after signup
// or login.
type Identity struct {
	UserID   string
	Username string
}

// Sessions wraps a cookie store and owns the session lifecycle: read the
// current identity, establish one, or clear it.
type Sessions struct {
	store *sessions.CookieStore
}

// NewSessions builds a cookie-backed session store signed with secret.
func NewSessions(secret string) *Sessions {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return &Sessions{store: store}
}

// Current returns the identity bound to the request's session, if any.
func (s *Sessions) Current(r *http.Request) (Identity, bool) {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return Identity{}, false
	}
	userID, ok := session.Values["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, false
	}
	username, _ := session.Values["username"].(string)
	return Identity{UserID: userID, Username: username}, true
}

// Establish binds id to the client's session. Subsequent requests carrying
// the cookie see it via Current.
func (s *Sessions) Establish(w http.ResponseWriter, r *http.Request, id Identity) error {
	session, _ := s.store.Get(r, sessionName)
	session.Values["user_id"] = id.UserID
	session.Values["username"] = id.Username
	return session.Save(r, w)
}

// Clear removes the identity binding and expires the cookie.
func (s *Sessions) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, sessionName)
	for k := range session.Values {
		delete(session.Values, k)
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
