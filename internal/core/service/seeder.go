package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/ligonine/hospital-system/internal/core/domain"
	"github.com/ligonine/hospital-system/internal/core/ports"
)

type AdminSeed struct {
	UserName string
	Email    string
	Password string
	// GeneratedPasswordOut receives a generated password, once. It is kept
	// out of the structured log. Defaults to os.Stderr.
	GeneratedPasswordOut io.Writer
}

// SeedAdmin creates the administrator account holding every role when no
// user with seed.UserName exists yet. It is safe to call on every start.
func SeedAdmin(ctx context.Context, users ports.UserRepository, hasher PasswordHasher, seed AdminSeed, logger zerolog.Logger) error {
	existing, err := users.FindByUserName(ctx, seed.UserName)
	if err == nil && existing != nil {
		return nil
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("seed admin: %w", err)
	}

	password := seed.Password
	generated := password == ""
	if generated {
		if password, err = randomPassword(); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("seed admin: hash password: %w", err)
	}

	created, err := users.Create(ctx, &domain.User{
		UserName:     seed.UserName,
		Email:        seed.Email,
		PasswordHash: hash,
		Roles:        append([]string(nil), domain.AllRoles...),
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, domain.ErrUserNameTaken) {
		// another replica won the race
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	event := logger.Info()
	if generated {
		out := seed.GeneratedPasswordOut
		if out == nil {
			out = os.Stderr
		}
		if _, err := fmt.Fprintf(out, "generated password for %s: %s\n", created.UserName, password); err != nil {
			return fmt.Errorf("seed admin: write generated password: %w", err)
		}
		event = logger.Warn().Bool("password_generated", true)
	}
	event.Str("user_id", created.ID).Str("user_name", created.UserName).Msg("admin user seeded")
	return nil
}

func randomPassword() (string, error) {
	b := make([]byte, 18)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	// suffix guarantees one character of every class
	return base64.RawURLEncoding.EncodeToString(b) + "!1aA", nil
}
