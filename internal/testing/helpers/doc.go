// Package helpers provides test utility functions for the Inkwell API.
//
// The helpers package contains common test utilities for assertions,
// pointer creation, and test data manipulation.
//
// # Pointer Helpers
//
// Create pointers to literal values:
//
//	name := helpers.StringPtr("test")
//	count := helpers.IntPtr(42)
//
// # JWT Helpers
//
// Generate test JWT tokens with the shared test secret:
//
//	jwtHelper := helpers.NewJWTHelper(t)
//	token := jwtHelper.GenerateToken(t, user)
//	stale := jwtHelper.GenerateExpiredToken(t, user)
//
// # Assertion Helpers
//
// Common test assertions:
//
//	helpers.AssertStatus(t, resp, http.StatusCreated)
//	helpers.AssertRecordExists(t, db, "post", post.ID)
//	helpers.AssertValidationError(t, resp, "email")
package helpers
