package services

import "errors"

var (
	ErrMenuFull             = errors.New("menu is full")
	ErrDuplicateItem        = errors.New("item already on the menu")
	ErrItemNotFound         = errors.New("item not found in the menu")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrLedgerFull           = errors.New("order list is full")
	ErrIndexOutOfRange      = errors.New("invalid order index")
	ErrInvalidQuantity      = errors.New("quantity must be greater than 0")
	ErrAuthenticationFailed = errors.New("authentication failed")
)
