package repository

import (
	"context"
	"errors"

	"github.com/verso/inkwell/api/internal/database"
	"github.com/verso/inkwell/api/internal/model"
)

// PostRepository handles post data access
type PostRepository struct {
	db database.Database
}

// NewPostRepository creates a new post repository
func NewPostRepository(db database.Database) *PostRepository {
	return &PostRepository{db: db}
}

// Create creates a new post. Author and image are optional.
func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		CREATE post CONTENT {
			title: $title,
			content: $content,
			author: IF $author IS NOT NULL THEN $author ELSE NONE END,
			image_url: IF $image_url IS NOT NULL THEN $image_url ELSE NONE END,
			saved_by: [],
			views: 0,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"title":     post.Title,
		"content":   post.Content,
		"author":    ptrToNone(post.AuthorID),
		"image_url": ptrToNone(post.ImageURL),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	post.ID = created.ID
	post.SavedBy = []string{}
	post.CreatedOn = created.CreatedOn
	post.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	post, err := parsePostResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

// List retrieves all posts, newest first.
func (r *PostRepository) List(ctx context.Context) ([]*model.Post, error) {
	query := `SELECT * FROM post ORDER BY created_on DESC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Post{}, nil
	}

	posts := make([]*model.Post, 0, len(records))
	for _, record := range records {
		post, err := parsePostResult(record)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				continue
			}
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// Update replaces the title and content of a post. Authorship, saves
// and the view counter are untouched.
func (r *PostRepository) Update(ctx context.Context, id, title, content string) error {
	query := `
		UPDATE type::record($id) SET
			title = $title,
			content = $content,
			updated_on = time::now()
	`
	vars := map[string]interface{}{
		"id":      id,
		"title":   title,
		"content": content,
	}

	return r.db.Execute(ctx, query, vars)
}

// DeleteWithComments removes a post and all of its comments in a
// single transaction so a failure cannot leave orphaned comments.
func (r *PostRepository) DeleteWithComments(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE comment WHERE post = $post_id`, map[string]interface{}{
		"post_id": id,
	})
	batch.Add(`DELETE type::record($id)`, map[string]interface{}{
		"id": id,
	})
	return batch.Execute(ctx, r.db)
}

// IncrementViews bumps the view counter and returns the new value.
func (r *PostRepository) IncrementViews(ctx context.Context, id string) (int, error) {
	query := `UPDATE type::record($id) SET views += 1 RETURN AFTER`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, database.ErrNotFound
		}
		return 0, err
	}

	post, err := parsePostResult(result)
	if err != nil {
		return 0, err
	}
	return post.Views, nil
}

// AddSaver records that a user bookmarked the post. saved_by behaves
// as a set, so repeating the call for the same user changes nothing.
func (r *PostRepository) AddSaver(ctx context.Context, postID, userID string) error {
	query := `
		UPDATE type::record($id) SET
			saved_by = array::union(saved_by, [$user_id]),
			updated_on = time::now()
	`
	vars := map[string]interface{}{
		"id":      postID,
		"user_id": userID,
	}

	return r.db.Execute(ctx, query, vars)
}

// RemoveSaver removes a user's bookmark. Removing an absent bookmark
// is a no-op.
func (r *PostRepository) RemoveSaver(ctx context.Context, postID, userID string) error {
	query := `
		UPDATE type::record($id) SET
			saved_by -= $user_id,
			updated_on = time::now()
	`
	vars := map[string]interface{}{
		"id":      postID,
		"user_id": userID,
	}

	return r.db.Execute(ctx, query, vars)
}

func parsePostResult(result interface{}) (*model.Post, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Navigate through SurrealDB response structure
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

	// Handle array wrapper
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

	post := &model.Post{
		ID:      convertSurrealID(data["id"]),
		Title:   getString(data, "title"),
		Content: getString(data, "content"),
		Views:   getInt(data, "views"),
		SavedBy: getStringSlice(data, "saved_by"),
	}
	if post.SavedBy == nil {
		post.SavedBy = []string{}
	}
	if author, ok := data["author"]; ok && author != nil {
		if id := convertSurrealID(author); id != "" {
			post.AuthorID = &id
		}
	}
	post.ImageURL = getStringPtr(data, "image_url")
	if t := getTime(data, "created_on"); t != nil {
		post.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		post.UpdatedOn = *t
	}

	return post, nil
}
