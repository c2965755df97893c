package services

import (
	"fmt"
	"slices"

	"restaurant-desk/models"

	"github.com/shopspring/decimal"
)

// Ledger is one customer's ordered list of order lines. Deleting a line
// shifts every later line down by one index.
type Ledger struct {
	items    []models.OrderItem
	capacity int // 0 = unbounded
}

func NewLedger(capacity int) *Ledger {
	return &Ledger{capacity: capacity}
}

// LineError reports why one requested line was not added.
type LineError struct {
	Line models.OrderLine
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("%s x%d: %v", e.Line.ItemName, e.Line.Quantity, e.Err)
}

func (e LineError) Unwrap() error { return e.Err }

type PlaceResult struct {
	Added    []models.OrderItem
	Rejected []LineError
}

// PlaceOrder resolves each line against the menu and appends the valid ones.
// A bad line is reported and skipped; it never aborts the rest of the batch.
func (l *Ledger) PlaceOrder(menu *Menu, lines []models.OrderLine) PlaceResult {
	var res PlaceResult
	for _, line := range lines {
		item, ok := menu.FindItem(line.ItemName)
		if !ok {
			res.Rejected = append(res.Rejected, LineError{Line: line, Err: ErrItemNotFound})
			continue
		}
		if line.Quantity <= 0 {
			res.Rejected = append(res.Rejected, LineError{Line: line, Err: ErrInvalidQuantity})
			continue
		}
		if l.capacity > 0 && len(l.items) >= l.capacity {
			res.Rejected = append(res.Rejected, LineError{Line: line, Err: ErrLedgerFull})
			continue
		}
		oi := models.NewOrderItem(item, line.Quantity)
		l.items = append(l.items, oi)
		res.Added = append(res.Added, oi)
	}
	return res
}

type OrderView struct {
	Index    int
	Summary  string
	Quantity int
	Total    decimal.Decimal
}

func (l *Ledger) ViewOrders() []OrderView {
	views := make([]OrderView, 0, len(l.items))
	for i, it := range l.items {
		views = append(views, OrderView{
			Index:    i,
			Summary:  it.Summary(),
			Quantity: it.Quantity,
			Total:    it.Total(),
		})
	}
	return views
}

func (l *Ledger) DeleteOrder(index int) (models.OrderItem, error) {
	if err := l.checkIndex(index); err != nil {
		return models.OrderItem{}, err
	}
	removed := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	return removed, nil
}

func (l *Ledger) EditOrder(index, quantity int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	l.items[index].Quantity = quantity
	return nil
}

func (l *Ledger) Len() int {
	return len(l.items)
}

func (l *Ledger) Items() []models.OrderItem {
	return slices.Clone(l.items)
}

func (l *Ledger) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range l.items {
		sum = sum.Add(it.Total())
	}
	return sum
}

func (l *Ledger) checkIndex(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %d (have %d orders)", ErrIndexOutOfRange, index, len(l.items))
	}
	return nil
}
