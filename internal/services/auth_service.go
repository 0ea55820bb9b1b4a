package services

import (
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"beautestore/internal/models"
	"beautestore/internal/normalize"
	"beautestore/internal/store"
)

// AuthService handles the single back-office account: identity lookup,
// password login and JWT validation.
type AuthService struct {
	store      store.Store
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(s store.Store, jwtSecret string) *AuthService {
	return &AuthService{
		store:      s,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// Me returns the deployment's single user.
func (s *AuthService) Me() (models.User, error) {
	records, err := s.store.Get(store.Users)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to load users: %w", err)
	}
	if len(records) == 0 {
		return models.User{}, store.ErrNotFound
	}
	return normalize.User(records[0]), nil
}

// SetPassword stores a bcrypt hash of the admin password on the user
// record. Called at startup when ADMIN_PASSWORD is configured.
func (s *AuthService) SetPassword(password string) error {
	user, err := s.Me()
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	_, err = s.store.UpdateByID(store.Users, user.ID, store.Record{"password_hash": string(hash)})
	return err
}

// Login authenticates the admin and returns a JWT token.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.Me()
	if err != nil || user.Email != email || user.PasswordHash == "" {
		return "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims
// if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
