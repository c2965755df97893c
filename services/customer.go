package services

import (
	"strings"

	"github.com/google/uuid"
)

// Customer holds the state of one customer session.
type Customer struct {
	SessionID uuid.UUID
	Name      string
	Phone     string
	Address   string
	Orders    *Ledger
}

func NewCustomer(name, phone, address string, orderCapacity int) *Customer {
	return &Customer{
		SessionID: uuid.New(),
		Name:      strings.TrimSpace(name),
		Phone:     strings.TrimSpace(phone),
		Address:   strings.TrimSpace(address),
		Orders:    NewLedger(orderCapacity),
	}
}
