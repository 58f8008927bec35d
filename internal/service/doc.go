// Package service implements the business logic layer for the Inkwell API.
//
// Services sit between HTTP handlers and repositories. They own
// validation, authorization-adjacent rules (such as attributing a post
// to the acting user) and cross-entity workflows (post deletion
// cascading to comments and uploaded images).
//
// # Structure
//
// Each service accepts its dependencies as interfaces defined in this
// package, so handlers depend on concrete services while tests supply
// hand-rolled mocks:
//
//	type UserRepository interface {
//	    Create(ctx context.Context, user *model.User) error
//	    GetByEmail(ctx context.Context, email string) (*model.User, error)
//	    ...
//	}
//
// # Errors
//
// Services return sentinel errors declared in errors.go. Handlers map
// them to RFC 9457 problem responses with errors.Is; services never
// construct HTTP-shaped errors themselves.
package service
