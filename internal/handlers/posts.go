package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/averyk/miniblog/internal/auth"
	"github.com/averyk/miniblog/internal/common"
	"github.com/averyk/miniblog/internal/images"
	"github.com/averyk/miniblog/models"
)

type dashboardData struct {
	Username string
	Posts    []auth.AnnotatedPost
}

// postFormData feeds the create and edit templates.
type postFormData struct {
	PostID  string
	Title   string
	Content string
	Error   string
}

// Dashboard lists every post newest first, flagged with the viewer's
// ownership.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	posts, err := h.store.AllPostsNewestFirst(r.Context())
	if err != nil {
		h.log.Error(r.Context(), "listing posts failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.renderPage(w, r, "dashboard", dashboardData{
		Username: identity.Username,
		Posts:    auth.AnnotateOwnership(posts, identity, ok),
	})
}

// CreateForm renders the empty post form.
func (h *Handlers) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "create", postFormData{})
}

// Create inserts a post owned by the session identity.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	title := r.FormValue("title")
	content := r.FormValue("content")
	form := postFormData{Title: title, Content: content}

	image, ext, err := h.readImage(r)
	if err != nil {
		h.postError(w, r, "create", form, err)
		return
	}

	post := &models.Post{
		OwnerID:       identity.UserID,
		OwnerUsername: identity.Username,
		Title:         title,
		Content:       content,
		Image:         image,
		ImageExt:      ext,
	}
	if err := h.store.CreatePost(r.Context(), post); err != nil {
		h.postError(w, r, "create", form, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// EditForm renders the form pre-filled from the owned post. An unknown or
// foreign post id lands back on the dashboard.
func (h *Handlers) EditForm(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	postID := chi.URLParam(r, "postID")

	post, err := h.store.OwnedPost(r.Context(), postID, identity.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		h.log.Error(r.Context(), "loading post failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.renderPage(w, r, "edit", postFormData{PostID: post.ID, Title: post.Title, Content: post.Content})
}

// Edit updates title, content, and optionally the image of an owned post.
// Leaving the file input empty keeps the stored image.
func (h *Handlers) Edit(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	postID := chi.URLParam(r, "postID")
	title := r.FormValue("title")
	content := r.FormValue("content")
	form := postFormData{PostID: postID, Title: title, Content: content}

	image, ext, err := h.readImage(r)
	if err != nil {
		h.postError(w, r, "edit", form, err)
		return
	}

	err = h.store.UpdateOwnedPost(r.Context(), postID, identity.UserID, title, content, image, ext)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		h.postError(w, r, "edit", form, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Delete removes an owned post. The redirect is the same whether the post was
// deleted, missing, or owned by someone else.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFrom(r.Context())
	postID := chi.URLParam(r, "postID")

	if err := h.store.DeleteOwnedPost(r.Context(), postID, identity.UserID); err != nil && !errors.Is(err, common.ErrNotFound) {
		h.log.Error(r.Context(), "deleting post failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// readImage pulls the optional upload out of the multipart form. A missing
// file part simply means the post has no image.
func (h *Handlers) readImage(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", nil
		}
		return nil, "", err
	}
	defer file.Close()
	return images.Read(file, header.Filename)
}

// postError redisplays the form on validation failures and answers 500 on
// anything else.
func (h *Handlers) postError(w http.ResponseWriter, r *http.Request, page string, form postFormData, err error) {
	if errors.Is(err, common.ErrValidation) {
		form.Error = validationMessage(err)
		h.renderPage(w, r, page, form)
		return
	}
	h.log.Error(r.Context(), "saving post failed", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func validationMessage(err error) string {
	msg := err.Error()
	prefix := common.ErrValidation.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return "Invalid input"
}
