// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories handle database insertion
// and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	user := f.CreateUser(t)
//	post := f.CreatePost(t, user)
//	comment := f.CreateComment(t, post)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/verso/inkwell/api/internal/database"
	"github.com/verso/inkwell/api/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// Factory creates test entities in the database
type Factory struct {
	db database.Database
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{db: db}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	// Store cancel to prevent leak warning
	_ = cancel
	return c
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Name     string
	Email    string
	Password string
}

// CreateUser creates a user with optional customizations. The password
// is hashed with bcrypt.MinCost to keep fixture setup fast.
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	o := &UserOpts{
		Name:     fmt.Sprintf("User %s", randomID()),
		Email:    fmt.Sprintf("user_%s@test.local", randomID()),
		Password: "testpass123",
	}
	for _, fn := range opts {
		fn(o)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}

	query := `
		CREATE user CONTENT {
			name: $name,
			email: $email,
			hash: $hash,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	results, err := f.db.Query(ctx(), query, map[string]interface{}{
		"name":  o.Name,
		"email": o.Email,
		"hash":  string(hash),
	})
	if err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}

	data := extractFirstResult(t, results)
	return &model.User{
		ID:        getString(data, "id"),
		Name:      getString(data, "name"),
		Email:     getString(data, "email"),
		CreatedOn: getTime(data, "created_on"),
		UpdatedOn: getTime(data, "updated_on"),
	}
}

// ============================================================================
// Post Fixtures
// ============================================================================

// PostOpts customizes post creation
type PostOpts struct {
	Title    string
	Content  string
	ImageURL *string
	Views    int
	SavedBy  []string
}

// CreatePost creates a post. A nil author makes the post anonymous.
func (f *Factory) CreatePost(t *testing.T, author *model.User, opts ...func(*PostOpts)) *model.Post {
	t.Helper()

	o := &PostOpts{
		Title:   fmt.Sprintf("Post %s", randomID()),
		Content: "Fixture post content.",
		SavedBy: []string{},
	}
	for _, fn := range opts {
		fn(o)
	}

	var authorID interface{}
	if author != nil {
		authorID = author.ID
	}

	query := `
		CREATE post CONTENT {
			title: $title,
			content: $content,
			author: IF $author_id IS NOT NULL THEN type::record($author_id) ELSE NONE END,
			image_url: IF $image_url IS NOT NULL THEN $image_url ELSE NONE END,
			saved_by: $saved_by,
			views: $views,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	results, err := f.db.Query(ctx(), query, map[string]interface{}{
		"title":     o.Title,
		"content":   o.Content,
		"author_id": authorID,
		"image_url": o.ImageURL,
		"saved_by":  o.SavedBy,
		"views":     o.Views,
	})
	if err != nil {
		t.Fatalf("fixtures: failed to create post: %v", err)
	}

	data := extractFirstResult(t, results)
	post := &model.Post{
		ID:        getString(data, "id"),
		Title:     getString(data, "title"),
		Content:   getString(data, "content"),
		ImageURL:  o.ImageURL,
		SavedBy:   o.SavedBy,
		Views:     o.Views,
		CreatedOn: getTime(data, "created_on"),
		UpdatedOn: getTime(data, "updated_on"),
	}
	if author != nil {
		post.AuthorID = &author.ID
	}
	return post
}

// ============================================================================
// Comment Fixtures
// ============================================================================

// CommentOpts customizes comment creation
type CommentOpts struct {
	AuthorName string
	Content    string
}

// CreateComment creates a comment on a post
func (f *Factory) CreateComment(t *testing.T, post *model.Post, opts ...func(*CommentOpts)) *model.Comment {
	t.Helper()

	o := &CommentOpts{
		AuthorName: model.DefaultCommentAuthor,
		Content:    fmt.Sprintf("Comment %s", randomID()),
	}
	for _, fn := range opts {
		fn(o)
	}

	query := `
		CREATE comment CONTENT {
			post: type::record($post_id),
			author_name: $author_name,
			content: $content,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	results, err := f.db.Query(ctx(), query, map[string]interface{}{
		"post_id":     post.ID,
		"author_name": o.AuthorName,
		"content":     o.Content,
	})
	if err != nil {
		t.Fatalf("fixtures: failed to create comment: %v", err)
	}

	data := extractFirstResult(t, results)
	return &model.Comment{
		ID:         getString(data, "id"),
		PostID:     post.ID,
		AuthorName: getString(data, "author_name"),
		Content:    getString(data, "content"),
		CreatedOn:  getTime(data, "created_on"),
		UpdatedOn:  getTime(data, "updated_on"),
	}
}

// ============================================================================
// Data Extraction Helpers
// ============================================================================

func extractFirstResult(t *testing.T, results []interface{}) map[string]interface{} {
	t.Helper()
	if len(results) == 0 {
		t.Fatal("fixtures: no results returned")
	}

	// Handle SurrealDB response wrapper
	resp, ok := results[0].(map[string]interface{})
	if !ok {
		t.Fatalf("fixtures: unexpected result type: %T", results[0])
	}

	result, ok := resp["result"]
	if !ok {
		t.Fatal("fixtures: no result in response")
	}

	// Handle array result
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			t.Fatal("fixtures: empty result array")
		}
		data, ok := arr[0].(map[string]interface{})
		if !ok {
			t.Fatalf("fixtures: unexpected array item type: %T", arr[0])
		}
		return data
	}

	// Handle single result
	data, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("fixtures: unexpected result type: %T", result)
	}
	return data
}

func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	// Handle SurrealDB record ID type - could be a struct or map
	if v := data[key]; v != nil {
		if m, ok := v.(map[string]interface{}); ok {
			if tb, ok := m["tb"].(string); ok {
				if id := m["id"]; id != nil {
					return fmt.Sprintf("%s:%v", tb, id)
				}
			}
		}
		// Fallback: use string conversion but fix the format if needed
		s := fmt.Sprintf("%v", v)
		// Convert "{table id}" to "table:id"
		if len(s) > 2 && s[0] == '{' && s[len(s)-1] == '}' {
			inner := s[1 : len(s)-1]
			for i, c := range inner {
				if c == ' ' {
					return inner[:i] + ":" + inner[i+1:]
				}
			}
		}
		return s
	}
	return ""
}

func getTime(data map[string]interface{}, key string) time.Time {
	if v, ok := data[key].(string); ok {
		t, _ := time.Parse(time.RFC3339Nano, v)
		return t
	}
	return time.Time{}
}
