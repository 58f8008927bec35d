// Command mktoken mints a bearer token for local development and
// debugging against a running Inkwell API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/verso/inkwell/api/internal/config"
	"github.com/verso/inkwell/api/pkg/jwt"
)

func main() {
	// Flags for customization
	secret := flag.String("secret", "", "JWT signing secret (default: JWT_SECRET env or dev secret)")
	userID := flag.String("user", "user:dev", "User ID for the token")
	issuer := flag.String("issuer", "api.inkwell.verso.dev", "JWT issuer")
	expDays := flag.Int("exp", 30, "Token expiration in days")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	signingSecret := *secret
	if signingSecret == "" {
		signingSecret = os.Getenv("JWT_SECRET")
	}
	if signingSecret == "" {
		signingSecret = config.DevSecret
		fmt.Fprintln(os.Stderr, "warning: using development secret; the server must run with the same secret")
	}

	expiration := time.Duration(*expDays) * 24 * time.Hour

	jwtService, err := jwt.NewService(jwt.Config{
		Secret:     signingSecret,
		Issuer:     *issuer,
		Expiration: expiration,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		os.Exit(1)
	}

	token, err := jwtService.Sign(*userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   int(expiration.Seconds()),
			"user_id":      *userID,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
	} else {
		expTime := time.Now().Add(expiration)
		fmt.Println("Token Generated")
		fmt.Println("===============")
		fmt.Printf("User ID:  %s\n", *userID)
		fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
		fmt.Println()
		fmt.Println("Token:")
		fmt.Println(token)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8080/v1/auth/me\n", token[:50]+"...")
	}
}
