// Package cart holds the session cart: ordered line items keyed by
// (product id, size, color) plus the sidebar visibility flag. All mutations
// are synchronous and run on the caller's goroutine; each session owns its
// own ledger.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

type Ledger struct {
	items  []models.LineItem
	isOpen bool
}

// New returns an empty, closed ledger.
func New() *Ledger {
	return &Ledger{items: make([]models.LineItem, 0)}
}

// Restore rebuilds a ledger from a persisted snapshot. Duplicate composite
// keys in a snapshot are merged and non-positive quantities dropped, so a
// bad snapshot can never corrupt the ledger's invariants.
func Restore(snap models.CartSnapshot) *Ledger {
	l := New()
	l.isOpen = snap.IsOpen
	for _, item := range snap.Items {
		if item.Quantity > 0 {
			l.AddItem(item.Product, item.Size, item.Color, item.Quantity)
		}
	}
	return l
}

// Snapshot returns the persistable state of the ledger.
func (l *Ledger) Snapshot() models.CartSnapshot {
	items := make([]models.LineItem, len(l.items))
	copy(items, l.items)
	return models.CartSnapshot{Items: items, IsOpen: l.isOpen}
}

// indexOf locates a line item by composite key, -1 when absent.
func (l *Ledger) indexOf(productID, size, color string) int {
	for i, item := range l.items {
		if item.Product.ID == productID && item.Size == size && item.Color == color {
			return i
		}
	}
	return -1
}

// AddItem merges the quantity into an existing line item with the same
// composite key, or appends a new one at the end. A non-positive quantity
// is clamped to 1 rather than rejected.
func (l *Ledger) AddItem(product models.Product, size, color string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if i := l.indexOf(product.ID, size, color); i >= 0 {
		l.items[i].Quantity += quantity
		return
	}
	l.items = append(l.items, models.LineItem{
		Product:  product,
		Size:     size,
		Color:    color,
		Quantity: quantity,
	})
}

// RemoveItem deletes the matching line item. Removing an absent key is a
// no-op, not an error.
func (l *Ledger) RemoveItem(productID, size, color string) {
	i := l.indexOf(productID, size, color)
	if i < 0 {
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// UpdateQuantity sets the line item's quantity to exactly the given value.
// A quantity of zero or below behaves exactly as RemoveItem for that key.
func (l *Ledger) UpdateQuantity(productID, size, color string, quantity int) {
	if quantity <= 0 {
		l.RemoveItem(productID, size, color)
		return
	}
	if i := l.indexOf(productID, size, color); i >= 0 {
		l.items[i].Quantity = quantity
	}
}

// Clear removes every line item. The visibility flag is untouched.
func (l *Ledger) Clear() {
	l.items = make([]models.LineItem, 0)
}

// Toggle flips the cart sidebar open/closed. Pure UI state; totals are
// unaffected.
func (l *Ledger) Toggle() {
	l.isOpen = !l.isOpen
}

func (l *Ledger) IsOpen() bool {
	return l.isOpen
}

// Items returns the line items in insertion order.
func (l *Ledger) Items() []models.LineItem {
	items := make([]models.LineItem, len(l.items))
	copy(items, l.items)
	return items
}

// TotalItems sums the quantities across all line items.
func (l *Ledger) TotalItems() int {
	total := 0
	for _, item := range l.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice accumulates price * quantity exactly; rounding for display is
// the presentation layer's concern.
func (l *Ledger) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.items {
		line := decimal.NewFromFloat(item.Product.Price).
			Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// RWNPrice converts the cart total into reward tokens:
// ceil(total * 0.9 * 100). The 10% discount applies to the whole cart
// regardless of per-item eligibility, and the result always rounds up so
// the house never under-charges in tokens.
func (l *Ledger) RWNPrice() int64 {
	return l.TotalPrice().
		Mul(models.RWNDiscount()).
		Mul(models.RWNExchangeRate()).
		Ceil().
		IntPart()
}

// Totals bundles the derived values for an API response. TotalPrice is
// rounded to cents here, at the presentation boundary.
func (l *Ledger) Totals() models.CartTotals {
	return models.CartTotals{
		TotalItems: l.TotalItems(),
		TotalPrice: l.TotalPrice().Round(2).InexactFloat64(),
		RWNPrice:   l.RWNPrice(),
	}
}
