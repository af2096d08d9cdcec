// Package cart is the session shopping cart: a JSON array of line items in
// one durable storage slot. Every mutation is a whole-slot read-modify-write;
// two concurrent writers race with last-write-wins, which is acceptable for
// one shopper in one browser.
package cart

import (
	"context"
	"encoding/json"

	"threadline/internal/domain"
	applog "threadline/internal/log"
	"threadline/internal/storage"
)

// TaxRate is a flat rate applied to every order. No jurisdiction logic.
const TaxRate = 0.18

// ReadState reports what a raw read of the cart slot found.
type ReadState int

const (
	ReadOK ReadState = iota
	ReadEmpty
	ReadCorrupt
)

type Store struct {
	KV storage.Store
}

func NewStore(kv storage.Store) *Store { return &Store{KV: kv} }

// Read returns the stored lines without any policy applied. Callers that
// care whether the slot was empty or unparseable get told which it was.
func (s *Store) Read(ctx context.Context, sid string) ([]domain.CartItem, ReadState, error) {
	raw, ok, err := s.KV.Get(ctx, sid, storage.SlotCart)
	if err != nil {
		return nil, ReadEmpty, err
	}
	if !ok || raw == "" {
		return []domain.CartItem{}, ReadEmpty, nil
	}
	var items []domain.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []domain.CartItem{}, ReadCorrupt, nil
	}
	return items, ReadOK, nil
}

// Get returns the cart lines in display order. A corrupt slot reads as an
// empty cart: the shopper loses the cart rather than the page; the event is
// logged so it is at least visible in ops.
func (s *Store) Get(ctx context.Context, sid string) ([]domain.CartItem, error) {
	items, state, err := s.Read(ctx, sid)
	if err != nil {
		return nil, err
	}
	if state == ReadCorrupt {
		applog.Warn(nil, "cart.read.corrupt", nil, map[string]any{"sid": sid})
		return []domain.CartItem{}, nil
	}
	return items, nil
}

func (s *Store) save(ctx context.Context, sid string, items []domain.CartItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.KV.Set(ctx, sid, storage.SlotCart, string(b))
}

// Add merges the item into an existing line with the same
// (product, size, color) key, or appends a new line at the end. Quantities
// are not clamped against stock here; the backend rejects over-orders at
// checkout.
func (s *Store) Add(ctx context.Context, sid string, item domain.CartItem) error {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	items, err := s.Get(ctx, sid)
	if err != nil {
		return err
	}
	merged := false
	for i := range items {
		if items[i].Key() == item.Key() {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	return s.save(ctx, sid, items)
}

// UpdateQuantity sets the quantity of the line with the given key; a
// non-positive quantity removes the line. An unknown key is a no-op, which
// covers the line having been removed from another page in the meantime.
func (s *Store) UpdateQuantity(ctx context.Context, sid, key string, qty int) error {
	items, err := s.Get(ctx, sid)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].Key() != key {
			continue
		}
		if qty <= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = qty
		}
		return s.save(ctx, sid, items)
	}
	return nil
}

// Remove deletes the line with the given key, if present.
func (s *Store) Remove(ctx context.Context, sid, key string) error {
	return s.UpdateQuantity(ctx, sid, key, 0)
}

// Clear deletes the whole slot.
func (s *Store) Clear(ctx context.Context, sid string) error {
	return s.KV.Delete(ctx, sid, storage.SlotCart)
}

// Totals recomputes subtotal, tax and total from the current lines.
// Nothing here is ever cached.
func (s *Store) Totals(ctx context.Context, sid string) (domain.CartTotals, error) {
	items, err := s.Get(ctx, sid)
	if err != nil {
		return domain.CartTotals{}, err
	}
	return Totals(items), nil
}

func Totals(items []domain.CartItem) domain.CartTotals {
	var t domain.CartTotals
	for _, it := range items {
		t.Subtotal += it.Product.Price * float64(it.Quantity)
	}
	t.Tax = t.Subtotal * TaxRate
	t.Total = t.Subtotal + t.Tax
	return t
}

// Count is the header badge number: the sum of line quantities.
func (s *Store) Count(ctx context.Context, sid string) (int, error) {
	items, err := s.Get(ctx, sid)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n, nil
}
