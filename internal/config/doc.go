// Package config manages application configuration for the Inkwell API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: token signing settings
//   - UploadsConfig: image upload settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT         - HTTP server port (default: 8080)
//	SERVER_ENV          - development, production or test
//	DB_HOST / DB_PORT   - SurrealDB endpoint
//	DB_NAMESPACE        - Database namespace (default: inkwell)
//	DB_DATABASE         - Database name (default: main)
//	JWT_SECRET          - HMAC signing secret; required in production
//	JWT_EXPIRATION_DAYS - Token lifetime in days (default: 30)
//	UPLOADS_DIR         - Directory for uploaded images
//
// An unset JWT_SECRET falls back to config.DevSecret in development;
// Validate rejects that fallback when SERVER_ENV is production.
package config
