package handler

import (
	"net/http"
	"testing"

	"github.com/verso/inkwell/api/internal/model"
)

func TestCommentHandler_Create_Success(t *testing.T) {
	app := newTestApp()

	post := app.seedPost("Discussed", "Body", nil)

	rec := doJSON(t, app, http.MethodPost, "/v1/posts/"+post.ID+"/comments", "", map[string]string{
		"author_name": "Visitor",
		"content":     "Nice one.",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var response CommentResponse
	decodeData(t, rec, &response)
	if response.AuthorName != "Visitor" {
		t.Errorf("expected author Visitor, got %q", response.AuthorName)
	}
	if response.PostID != post.ID {
		t.Errorf("expected post %q, got %q", post.ID, response.PostID)
	}
}

func TestCommentHandler_Create_BlankAuthorDefaults(t *testing.T) {
	app := newTestApp()

	post := app.seedPost("Discussed", "Body", nil)

	rec := doJSON(t, app, http.MethodPost, "/v1/posts/"+post.ID+"/comments", "", map[string]string{
		"author_name": "   ",
		"content":     "Anonymously yours.",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var response CommentResponse
	decodeData(t, rec, &response)
	if response.AuthorName != model.DefaultCommentAuthor {
		t.Errorf("expected default author %q, got %q", model.DefaultCommentAuthor, response.AuthorName)
	}
}

func TestCommentHandler_Create_MissingContent(t *testing.T) {
	app := newTestApp()

	post := app.seedPost("Discussed", "Body", nil)

	before := app.comments.writes
	rec := doJSON(t, app, http.MethodPost, "/v1/posts/"+post.ID+"/comments", "", map[string]string{
		"author_name": "Visitor",
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d (body: %s)", rec.Code, rec.Body.String())
	}
	if app.comments.writes != before {
		t.Error("validation failure must not write to storage")
	}
}

func TestCommentHandler_Create_MissingPost(t *testing.T) {
	app := newTestApp()

	before := app.comments.writes
	rec := doJSON(t, app, http.MethodPost, "/v1/posts/post:missing/comments", "", map[string]string{
		"content": "into the void",
	})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (body: %s)", rec.Code, rec.Body.String())
	}
	if app.comments.writes != before {
		t.Error("comment on a missing post must not write to storage")
	}
}

func TestCommentHandler_List(t *testing.T) {
	app := newTestApp()

	post := app.seedPost("Discussed", "Body", nil)

	for _, content := range []string{"first", "second", "third"} {
		rec := doJSON(t, app, http.MethodPost, "/v1/posts/"+post.ID+"/comments", "", map[string]string{
			"content": content,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed to seed comment: %d (body: %s)", rec.Code, rec.Body.String())
		}
	}

	rec := doJSON(t, app, http.MethodGet, "/v1/posts/"+post.ID+"/comments", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var response []CommentResponse
	decodeData(t, rec, &response)
	if len(response) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(response))
	}
	for i, want := range []string{"first", "second", "third"} {
		if response[i].Content != want {
			t.Errorf("comment %d: expected %q, got %q", i, want, response[i].Content)
		}
	}
}

func TestCommentHandler_List_MissingPost(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app, http.MethodGet, "/v1/posts/post:missing/comments", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (body: %s)", rec.Code, rec.Body.String())
	}
}
