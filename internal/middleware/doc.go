// Package middleware provides HTTP middleware for the Inkwell API.
//
// The middleware package contains reusable middleware components for
// authentication and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Auth: Requires a valid bearer token, rejects with 401 otherwise
//   - OptionalAuth: Attaches the actor when a valid token is present,
//     proceeds unauthenticated when it is missing or invalid
//   - RequestID: Unique request identifier propagation
//   - Logger: Structured request logging via slog
//   - Recovery: Panic recovery with a problem+json 500 response
//   - CORS: Cross-origin resource sharing headers
//   - Compress: gzip response compression
//
// # Authentication
//
// Wrap protected routes with Auth and public-but-attributable routes
// with OptionalAuth:
//
//	mux.Handle("POST /v1/posts/{postId}/save", authRequired(saveHandler))
//	mux.Handle("POST /v1/posts", authOptional(createHandler))
//
// After authentication, handlers can access user info:
//
//	userID := middleware.GetUserID(r.Context())
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns authenticated user ID ("" when anonymous)
//   - GetClaims(ctx): Returns parsed token claims
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
