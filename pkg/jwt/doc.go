// Package jwt provides JSON Web Token utilities for the Inkwell API.
//
// The jwt package handles token signing, validation, and claims
// extraction for authentication. Tokens are HMAC-SHA256 signed and
// fully stateless: there is no revocation list or refresh flow, a
// token is valid until it expires.
//
// # Token Signing
//
// Sign tokens for authenticated users:
//
//	service, err := jwt.NewService(jwt.Config{
//	    Secret:     "signing-secret",
//	    Issuer:     "inkwell-api",
//	    Expiration: 30 * 24 * time.Hour,
//	})
//
//	token, err := service.Sign(userID)
//
// # Token Validation
//
// Validate and extract claims:
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	userID := claims.UserID
//
// # Testing
//
// NewServiceWithClock accepts a clock function so tests can sign
// tokens at a chosen instant and advance time past expiry without
// sleeping.
package jwt
