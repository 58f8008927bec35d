package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/verso/inkwell/api/internal/database"
	"github.com/verso/inkwell/api/internal/middleware"
	"github.com/verso/inkwell/api/internal/model"
	"github.com/verso/inkwell/api/internal/service"
	"github.com/verso/inkwell/api/pkg/jwt"
)

const testJWTSecret = "handler-test-secret"

// In-memory repositories shared by the handler tests. They mirror the
// repository contracts: Create assigns an ID and timestamps on the
// passed model, reads return nil for missing records.

type memUserRepo struct {
	mu     sync.Mutex
	seq    int
	byID   map[string]*model.User
	writes int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: make(map[string]*model.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return fmt.Errorf("email taken: %w", database.ErrDuplicate)
		}
	}
	r.seq++
	user.ID = fmt.Sprintf("user:%d", r.seq)
	user.CreatedOn = time.Now().UTC()
	user.UpdatedOn = user.CreatedOn
	copied := *user
	r.byID[user.ID] = &copied
	r.writes++
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.byID[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(ctx context.Context) ([]*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]*model.User, 0, len(r.byID))
	for _, user := range r.byID {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

type memPostRepo struct {
	mu     sync.Mutex
	seq    int
	byID   map[string]*model.Post
	order  []string
	writes int
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{byID: make(map[string]*model.Post)}
}

func (r *memPostRepo) Create(ctx context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	post.ID = fmt.Sprintf("post:%d", r.seq)
	post.CreatedOn = time.Now().UTC()
	post.UpdatedOn = post.CreatedOn
	if post.SavedBy == nil {
		post.SavedBy = []string{}
	}
	copied := *post
	r.byID[post.ID] = &copied
	r.order = append(r.order, post.ID)
	r.writes++
	return nil
}

func (r *memPostRepo) GetByID(ctx context.Context, id string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post, ok := r.byID[id]; ok {
		copied := *post
		copied.SavedBy = append([]string{}, post.SavedBy...)
		return &copied, nil
	}
	return nil, nil
}

func (r *memPostRepo) List(ctx context.Context) ([]*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := make([]*model.Post, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		copied := *r.byID[r.order[i]]
		posts = append(posts, &copied)
	}
	return posts, nil
}

func (r *memPostRepo) Update(ctx context.Context, id, title, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.byID[id]
	if !ok {
		return database.ErrNotFound
	}
	post.Title = title
	post.Content = content
	post.UpdatedOn = time.Now().UTC()
	r.writes++
	return nil
}

func (r *memPostRepo) DeleteWithComments(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.writes++
	return nil
}

func (r *memPostRepo) IncrementViews(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.byID[id]
	if !ok {
		return 0, database.ErrNotFound
	}
	post.Views++
	r.writes++
	return post.Views, nil
}

func (r *memPostRepo) AddSaver(ctx context.Context, postID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.byID[postID]
	if !ok {
		return database.ErrNotFound
	}
	for _, existing := range post.SavedBy {
		if existing == userID {
			return nil
		}
	}
	post.SavedBy = append(post.SavedBy, userID)
	r.writes++
	return nil
}

func (r *memPostRepo) RemoveSaver(ctx context.Context, postID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.byID[postID]
	if !ok {
		return database.ErrNotFound
	}
	for i, existing := range post.SavedBy {
		if existing == userID {
			post.SavedBy = append(post.SavedBy[:i], post.SavedBy[i+1:]...)
			r.writes++
			return nil
		}
	}
	return nil
}

type memCommentRepo struct {
	mu     sync.Mutex
	seq    int
	byPost map[string][]*model.Comment
	writes int
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{byPost: make(map[string][]*model.Comment)}
}

func (r *memCommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	comment.ID = fmt.Sprintf("comment:%d", r.seq)
	comment.CreatedOn = time.Now().UTC()
	comment.UpdatedOn = comment.CreatedOn
	copied := *comment
	r.byPost[comment.PostID] = append(r.byPost[comment.PostID], &copied)
	r.writes++
	return nil
}

func (r *memCommentRepo) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comments := make([]*model.Comment, 0, len(r.byPost[postID]))
	for _, comment := range r.byPost[postID] {
		copied := *comment
		comments = append(comments, &copied)
	}
	return comments, nil
}

// spyUploadStore records uploads and removals without touching disk.
type spyUploadStore struct {
	mu      sync.Mutex
	saved   []string
	removed []string
	saveErr error
}

func (s *spyUploadStore) Save(file io.Reader, originalName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return "", s.saveErr
	}
	path := "/uploads/" + originalName
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *spyUploadStore) Remove(publicPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, publicPath)
	return nil
}

// testApp wires handlers, services and in-memory repositories behind
// the same route table cmd/server registers.
type testApp struct {
	handler      http.Handler
	users        *memUserRepo
	posts        *memPostRepo
	comments     *memCommentRepo
	uploads      *spyUploadStore
	tokenService *service.TokenService
	authService  *service.AuthService
}

func newTestApp() *testApp {
	users := newMemUserRepo()
	posts := newMemPostRepo()
	comments := newMemCommentRepo()
	uploads := &spyUploadStore{}

	jwtService, err := jwt.NewService(jwt.Config{Secret: testJWTSecret, Issuer: "inkwell-test"})
	if err != nil {
		panic(err)
	}
	tokenService := service.NewTokenService(jwtService)
	authService := service.NewAuthService(users, tokenService)
	postService := service.NewPostService(posts, users, uploads, slog.New(slog.NewTextHandler(io.Discard, nil)))
	commentService := service.NewCommentService(comments, posts)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(authService)
	postHandler := NewPostHandler(postService, uploads, 1<<20)
	commentHandler := NewCommentHandler(commentService)

	requireAuth := middleware.Auth(tokenService)
	optionalAuth := middleware.OptionalAuth(tokenService)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)
	mux.Handle("GET /v1/auth/me", requireAuth(http.HandlerFunc(authHandler.Me)))
	mux.HandleFunc("GET /v1/users", userHandler.List)
	mux.HandleFunc("GET /v1/posts", postHandler.List)
	mux.Handle("POST /v1/posts", optionalAuth(http.HandlerFunc(postHandler.Create)))
	mux.HandleFunc("GET /v1/posts/{postId}", postHandler.Get)
	mux.HandleFunc("PATCH /v1/posts/{postId}", postHandler.Update)
	mux.HandleFunc("DELETE /v1/posts/{postId}", postHandler.Delete)
	mux.HandleFunc("POST /v1/posts/{postId}/views", postHandler.RecordView)
	mux.Handle("POST /v1/posts/{postId}/save", requireAuth(http.HandlerFunc(postHandler.Save)))
	mux.Handle("POST /v1/posts/{postId}/unsave", requireAuth(http.HandlerFunc(postHandler.Unsave)))
	mux.HandleFunc("POST /v1/posts/{postId}/comments", commentHandler.Create)
	mux.HandleFunc("GET /v1/posts/{postId}/comments", commentHandler.List)

	return &testApp{
		handler:      mux,
		users:        users,
		posts:        posts,
		comments:     comments,
		uploads:      uploads,
		tokenService: tokenService,
		authService:  authService,
	}
}

// registerUser creates an account directly through the service and
// returns the user together with a valid bearer token.
func (a *testApp) registerUser(name, email, password string) (*model.User, string, error) {
	result, err := a.authService.Register(context.Background(), service.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, "", err
	}
	return result.User, result.Token, nil
}

// seedPost inserts a post straight into the repository.
func (a *testApp) seedPost(title, content string, authorID *string) *model.Post {
	post := &model.Post{Title: title, Content: content, AuthorID: authorID}
	if err := a.posts.Create(context.Background(), post); err != nil {
		panic(err)
	}
	return post
}
