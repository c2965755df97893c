package services

import (
	"fmt"

	"restaurant-desk/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt only reads the first 72 bytes of a password.
const maxPasswordBytes = 72

// cashOnHand is reported by ViewCash; there is no real accounting behind it.
var cashOnHand = decimal.RequireFromString("1000.00")

// Admin holds the single configured admin credential. Only a bcrypt hash of
// the password is kept after construction.
type Admin struct {
	username     string
	passwordHash []byte
}

func NewAdmin(username, password string) (*Admin, error) {
	if username == "" {
		return nil, fmt.Errorf("admin username cannot be empty")
	}
	if password == "" {
		return nil, fmt.Errorf("admin password cannot be empty")
	}
	if len(password) > maxPasswordBytes {
		return nil, fmt.Errorf("admin password is longer than %d bytes", maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &Admin{username: username, passwordHash: hash}, nil
}

func (a *Admin) Username() string {
	return a.username
}

// Authenticate succeeds only for the exact configured username and password.
func (a *Admin) Authenticate(username, password string) error {
	if username != a.username || len(password) > maxPasswordBytes {
		return ErrAuthenticationFailed
	}
	if bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) != nil {
		return ErrAuthenticationFailed
	}
	return nil
}

func (a *Admin) ViewCash() decimal.Decimal {
	return cashOnHand
}

func (a *Admin) AddItemToMenu(menu *Menu, item models.MenuItem) error {
	return menu.AddItem(item)
}

func (a *Admin) DeleteItemFromMenu(menu *Menu, name string) (models.MenuItem, error) {
	return menu.RemoveItem(name)
}
