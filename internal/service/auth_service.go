package service

import (
	"context"
	"fmt"

	"taskboard/internal/auth"
	"taskboard/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Identity is the minimal authenticated principal embedded in session tokens.
type Identity struct {
	ID    uuid.UUID
	Email string
}

type AuthService struct {
	userRepo  repository.UserRepositoryInterface
	jwtSecret string
}

func NewAuthService(userRepo repository.UserRepositoryInterface, jwtSecret string) *AuthService {
	return &AuthService{userRepo: userRepo, jwtSecret: jwtSecret}
}

// ValidateUser checks the supplied credentials. It returns nil, nil on any
// credential failure (unknown email or wrong password) so callers cannot
// distinguish the two cases.
func (s *AuthService) ValidateUser(ctx context.Context, email, password string) (*Identity, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to validate user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	// bcrypt comparison is constant-time on the hash.
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, nil
	}

	return &Identity{ID: user.ID, Email: user.Email}, nil
}

// Login issues a signed session token for a validated identity. Tokens are
// self-contained; no session state is stored.
func (s *AuthService) Login(identity *Identity) (string, error) {
	token, err := auth.GenerateToken(s.jwtSecret, identity.ID, identity.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
