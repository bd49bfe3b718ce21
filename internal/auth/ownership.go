package auth

import (
	"github.com/averyk/miniblog/models"
)

// AnnotatedPost pairs a post with the viewer's ownership flag for display.
type AnnotatedPost struct {
	models.Post
	IsOwner bool
}

// AnnotateOwnership flags each post the viewer owns. With no identity
// (ok false) every flag is false. Input order is preserved.
func AnnotateOwnership(posts []models.Post, id Identity, ok bool) []AnnotatedPost {
	annotated := make([]AnnotatedPost, len(posts))
	for i, p := range posts {
		annotated[i] = AnnotatedPost{
			Post:    p,
			IsOwner: ok && p.OwnerID == id.UserID,
		}
	}
	return annotated
}
