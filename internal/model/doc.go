// Package model defines domain entities and data structures for the Inkwell API.
//
// The model package contains all struct definitions for domain objects and
// error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: Registered account with credentials
//   - Post: Published article, optionally authored and optionally illustrated
//   - Comment: Free-text reply attached to a post
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Post struct {
//	    ID    string `json:"id"`
//	    Title string `json:"title"`
//	    Views int    `json:"views"`
//	}
//
// # Validation Constants
//
// The package defines validation constants:
//
//	const (
//	    MaxTitleLength   = 200
//	    MaxContentLength = 50000
//	)
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
