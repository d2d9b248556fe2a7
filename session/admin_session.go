package session

//go:generate mockgen -destination=mock_verifier.go -package=session . CredentialsVerifier

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"civicreporter/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialsVerifier resolves an email/password pair to an account.
type CredentialsVerifier interface {
	Verify(email, password string) (models.AdminAccount, error)
}

const (
	BuiltinAdminEmail    = "admin@civic.gov"
	builtinAdminPassword = "admin123"
)

// StaticVerifier accepts a fixed set of accounts. It is a placeholder for a
// real identity provider.
type StaticVerifier struct {
	accounts map[string]models.AdminAccount
}

// NewBuiltinVerifier knows only the demo admin account.
func NewBuiltinVerifier() (*StaticVerifier, error) {
	admin := models.AdminAccount{
		Email:    BuiltinAdminEmail,
		Password: builtinAdminPassword,
		Role:     models.RoleAdmin,
	}
	if err := admin.HashPassword(); err != nil {
		return nil, fmt.Errorf("hash builtin admin password: %w", err)
	}
	return NewStaticVerifier(admin), nil
}

// NewStaticVerifier expects account passwords to be bcrypt hashes already.
func NewStaticVerifier(accounts ...models.AdminAccount) *StaticVerifier {
	v := &StaticVerifier{accounts: make(map[string]models.AdminAccount, len(accounts))}
	for _, a := range accounts {
		v.accounts[a.Email] = a
	}
	return v
}

func (v *StaticVerifier) Verify(email, password string) (models.AdminAccount, error) {
	account, ok := v.accounts[email]
	if !ok || !account.ComparePassword(password) {
		return models.AdminAccount{}, ErrInvalidCredentials
	}
	return account, nil
}

// AdminSession holds the single optional admin session of the process.
type AdminSession struct {
	mu       sync.RWMutex
	current  *models.Session
	verifier CredentialsVerifier
}

func NewAdminSession(verifier CredentialsVerifier) *AdminSession {
	return &AdminSession{verifier: verifier}
}

// Login replaces the session on success. On failure the session is left as
// it was.
func (s *AdminSession) Login(email, password string) (models.Session, error) {
	account, err := s.verifier.Verify(email, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return models.Session{}, err
		}
		return models.Session{}, fmt.Errorf("verify credentials: %w", err)
	}

	id, err := newSessionID()
	if err != nil {
		return models.Session{}, err
	}

	sess := models.Session{ID: id, Email: account.Email, Role: account.Role}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	return sess, nil
}

func (s *AdminSession) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Current returns the active session, if any.
func (s *AdminSession) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

func (s *AdminSession) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.IsAdmin()
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
