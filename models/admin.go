package models

import (
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin is the only role the admin view accepts.
const RoleAdmin = "admin"

// AdminAccount is a credential the session layer can verify against.
type AdminAccount struct {
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

func (a *AdminAccount) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashed)
	return nil
}

func (a *AdminAccount) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(candidate))
	return err == nil
}

// Session is the currently authenticated admin identity.
type Session struct {
	ID    string `json:"-"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
