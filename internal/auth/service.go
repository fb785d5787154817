package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidKey is returned when the provided API key does not match any operator.
var ErrInvalidKey = errors.New("invalid API key")

// KeyPrefix starts every generated operator key.
const KeyPrefix = "wm_"

// Service provides authentication operations.
type Service struct {
	repo       OperatorRepository
	bcryptCost int
}

// NewService creates a new auth Service.
func NewService(repo OperatorRepository, bcryptCost int) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
	}
}

// GenerateKey creates a new operator key and its bcrypt hash.
// The raw key is: 32 random bytes -> base64url -> prepend "wm_".
func (s *Service) GenerateKey() (rawKey, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generating random bytes: %w", err)
	}

	rawKey = KeyPrefix + base64.RawURLEncoding.EncodeToString(b)

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(rawKey), s.bcryptCost)
	if err != nil {
		return "", "", fmt.Errorf("hashing key: %w", err)
	}

	return rawKey, string(hashBytes), nil
}

// Authenticate resolves a raw operator key to an Identity by bcrypt-comparing
// it against every configured operator.
func (s *Service) Authenticate(ctx context.Context, rawKey string) (*Identity, error) {
	if len(rawKey) <= len(KeyPrefix) {
		return nil, ErrInvalidKey
	}

	operators, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing operators: %w", err)
	}

	for _, op := range operators {
		if bcrypt.CompareHashAndPassword([]byte(op.KeyHash), []byte(rawKey)) == nil {
			return &Identity{Operator: op.Name}, nil
		}
	}

	return nil, ErrInvalidKey
}
