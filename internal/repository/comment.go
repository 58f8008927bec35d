package repository

import (
	"context"
	"errors"

	"github.com/verso/inkwell/api/internal/database"
	"github.com/verso/inkwell/api/internal/model"
)

// CommentRepository handles comment data access
type CommentRepository struct {
	db database.Database
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db database.Database) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment on a post
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		CREATE comment CONTENT {
			post: $post_id,
			author_name: $author_name,
			content: $content,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"post_id":     comment.PostID,
		"author_name": comment.AuthorName,
		"content":     comment.Content,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	comment.ID = created.ID
	comment.CreatedOn = created.CreatedOn
	comment.UpdatedOn = created.UpdatedOn
	return nil
}

// ListByPost retrieves all comments on a post, oldest first.
func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	query := `SELECT * FROM comment WHERE post = $post_id ORDER BY created_on ASC`
	vars := map[string]interface{}{"post_id": postID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Comment{}, nil
	}

	comments := make([]*model.Comment, 0, len(records))
	for _, record := range records {
		comment, err := parseCommentResult(record)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				continue
			}
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

func parseCommentResult(result interface{}) (*model.Comment, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	comment := &model.Comment{
		ID:         convertSurrealID(data["id"]),
		PostID:     convertSurrealID(data["post"]),
		AuthorName: getString(data, "author_name"),
		Content:    getString(data, "content"),
	}
	if t := getTime(data, "created_on"); t != nil {
		comment.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		comment.UpdatedOn = *t
	}

	return comment, nil
}
