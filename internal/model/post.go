package model

import "time"

// Post is a published article. AuthorID is nil for anonymous posts
// (creation does not require authentication). SavedBy holds the IDs of
// users who bookmarked the post and behaves as a set.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  *string   `json:"author_id,omitempty"`
	ImageURL  *string   `json:"image_url,omitempty"`
	SavedBy   []string  `json:"saved_by"`
	Views     int       `json:"views"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// SavedByUser reports whether userID has bookmarked the post.
func (p *Post) SavedByUser(userID string) bool {
	for _, id := range p.SavedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// PostWithAuthor pairs a post with its resolved author, if any.
type PostWithAuthor struct {
	Post   *Post        `json:"post"`
	Author *UserSummary `json:"author,omitempty"`
}

// Validation limits for post fields.
const (
	MaxTitleLength   = 200
	MaxContentLength = 50000
)
