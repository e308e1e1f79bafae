// Package auth implements credential verification and the opaque bearer
// token lifecycle: one active token per user, issued get-or-create,
// resolved by store lookup so revocation takes effect immediately.
package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avalero/blog-backend/database"
	"github.com/avalero/blog-backend/errs"
	"github.com/avalero/blog-backend/models"
)

const bearerPrefix = "Bearer "

type Service struct {
	db         database.Database
	signingKey []byte
}

func NewService(db database.Database, signingKey []byte) *Service {
	return &Service{db: db, signingKey: signingKey}
}

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// Authenticate verifies a username/password pair. A nonexistent user, a
// wrong password or an inactive account all return (nil, nil): this is a
// lookup, not a protocol error.
func (s *Service) Authenticate(username, password string) (*models.User, error) {
	user, err := s.db.UserRepo().FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

// IssueToken returns the user's token, minting one only if none exists.
// Concurrent duplicate logins race on the unique user_id index; the loser
// re-reads the winner's token.
func (s *Service) IssueToken(user *models.User) (string, error) {
	existing, err := s.db.TokenRepo().FindByUserID(user.ID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.Token, nil
	}

	value, err := s.mintToken(user)
	if err != nil {
		return "", err
	}

	token := &models.AccessToken{UserID: user.ID, Token: value}
	if err := s.db.TokenRepo().Add(token); err != nil {
		winner, findErr := s.db.TokenRepo().FindByUserID(user.ID)
		if findErr == nil && winner != nil {
			return winner.Token, nil
		}
		return "", err
	}
	return value, nil
}

// RevokeToken deletes the user's token if present. Returns false, without
// error, when there was nothing to revoke.
func (s *Service) RevokeToken(user *models.User) (bool, error) {
	return s.db.TokenRepo().DeleteByUserID(user.ID)
}

// ResolveBearer maps an Authorization header to a user. A missing header is
// an authentication_required failure; a malformed or unknown token is an
// invalid_token failure.
func (s *Service) ResolveBearer(header string) (*models.User, error) {
	if header == "" {
		return nil, errs.NewAuthenticationRequiredError("You are not authenticated")
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, errs.NewInvalidTokenError("Invalid token")
	}
	value := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if value == "" {
		return nil, errs.NewInvalidTokenError("Invalid token")
	}

	// Reject values that were never minted here before touching the store.
	if _, err := jwt.Parse(value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.signingKey, nil
	}); err != nil {
		return nil, errs.NewInvalidTokenError("Invalid token")
	}

	stored, err := s.db.TokenRepo().FindByToken(value)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.User == nil {
		return nil, errs.NewInvalidTokenError("Invalid token")
	}
	return stored.User, nil
}

// mintToken produces the opaque token value. It happens to be a signed JWT
// so junk values can be rejected without a store round-trip; the jti claim
// keeps values unique per mint.
func (s *Service) mintToken(user *models.User) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject: fmt.Sprintf("%d", user.ID),
		ID:      uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
