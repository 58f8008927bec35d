package model

import "time"

// DefaultCommentAuthor is used when a commenter gives no display name.
const DefaultCommentAuthor = "Anonymous"

// Comment belongs to exactly one post. Comments are not tied to
// accounts; AuthorName is free text supplied by the commenter.
type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"post_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}

// Validation limits for comment fields.
const (
	MaxCommentAuthorLength  = 100
	MaxCommentContentLength = 5000
)
