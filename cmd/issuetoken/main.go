// Command issuetoken mints the bearer tokens front ends use to call the API.
package main

import (
	"fmt"
	"os"
	"time"

	"premium-reconciler/internal/pkg/jwt"

	"github.com/spf13/pflag"
)

func main() {
	subject := pflag.String("subject", "", "caller name recorded in the token (required)")
	role := pflag.String("role", string(jwt.RoleService), "service or admin")
	secret := pflag.String("secret", "", "signing secret (defaults to $JWT_SECRET)")
	duration := pflag.Duration("duration", 720*time.Hour, "token lifetime")
	pflag.Parse()

	if err := run(*subject, *role, *secret, *duration); err != nil {
		fmt.Fprintln(os.Stderr, "issuetoken:", err)
		os.Exit(1)
	}
}

func run(subject, roleName, secret string, duration time.Duration) error {
	if subject == "" {
		return fmt.Errorf("--subject is required")
	}
	role, err := jwt.ParseRole(roleName)
	if err != nil {
		return fmt.Errorf("--role %q: %w", roleName, err)
	}
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		return fmt.Errorf("no signing secret: pass --secret or set JWT_SECRET")
	}
	if duration <= 0 {
		return fmt.Errorf("--duration must be positive")
	}

	token, err := jwt.NewService(secret, duration).GenerateToken(subject, role)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
