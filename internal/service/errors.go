package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 72 characters")
	ErrNameTooLong        = errors.New("name is too long")
)

// ===== Post Errors =====
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title is too long")
	ErrContentRequired = errors.New("content is required")
	ErrContentTooLong  = errors.New("content is too long")
)

// ===== Comment Errors =====
var (
	ErrCommentContentRequired = errors.New("comment content is required")
	ErrCommentTooLong         = errors.New("comment content is too long")
)
