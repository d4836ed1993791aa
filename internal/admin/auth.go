// Package admin authenticates the shop owner and serves catalog exports.
package admin

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	authmw "github.com/Skotchmaster/vape_shop/pkg/middleware/auth"
	"github.com/Skotchmaster/vape_shop/pkg/tokens"
)

var (
	ErrValidation         = errors.New("validation")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Session struct {
	Token     string
	ExpiresAt time.Time
}

type Authenticator struct {
	Username     string
	PasswordHash []byte
	Secret       []byte
	TTL          time.Duration
}

// NewAuthenticator uses passwordHash when set, otherwise hashes password.
func NewAuthenticator(username, password, passwordHash string, secret []byte, ttl time.Duration) (*Authenticator, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: admin username is empty", ErrValidation)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: jwt secret is empty", ErrValidation)
	}

	hash := []byte(passwordHash)
	if len(hash) == 0 {
		if password == "" {
			return nil, fmt.Errorf("%w: admin password is empty", ErrValidation)
		}
		var err error
		hash, err = HashPassword(password)
		if err != nil {
			return nil, err
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("%w: admin password hash: %v", ErrValidation, err)
	}

	return &Authenticator{Username: username, PasswordHash: hash, Secret: secret, TTL: ttl}, nil
}

func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

func (a *Authenticator) Login(username, password string) (Session, error) {
	if username == "" || password == "" {
		return Session{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password))
	if !userOK || passErr != nil {
		return Session{}, ErrInvalidCredentials
	}

	exp := time.Now().Add(a.TTL).UTC()
	token, err := tokens.NewAccessToken(a.Secret, a.Username, authmw.RoleAdmin, exp)
	if err != nil {
		return Session{}, fmt.Errorf("sign admin token: %w", err)
	}
	return Session{Token: token, ExpiresAt: exp}, nil
}
