package cart_test

import (
	"context"
	"math"
	"testing"

	"threadline/internal/cart"
	"threadline/internal/domain"
	"threadline/internal/storage"
)

func memStore(t *testing.T) *cart.Store {
	t.Helper()
	kv, err := storage.OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return cart.NewStore(kv)
}

func tee(price float64) domain.Product {
	return domain.Product{ID: 1, Name: "Crewneck Tee", Price: price, Category: "T-Shirts",
		Sizes: []string{"S", "M", "L"}, Colors: []string{"Black", "White"}, Stock: 10, IsActive: true}
}

func TestAddMergesSameVariant(t *testing.T) {
	s := memStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, "sid1", domain.CartItem{Product: tee(500), Quantity: 1, SelectedSize: "M"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ctx, "sid1", domain.CartItem{Product: tee(500), Quantity: 2, SelectedSize: "M"}); err != nil {
		t.Fatal(err)
	}

	items, err := s.Get(ctx, "sid1")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Quantity)
	}
}

func TestAddDifferentVariantsStaySeparate(t *testing.T) {
	s := memStore(t)
	ctx := context.Background()

	_ = s.Add(ctx, "sid1", domain.CartItem{Product: tee(500), Quantity: 1, SelectedSize: "M", SelectedColor: "Black"})
	_ = s.Add(ctx, "sid1", domain.CartItem{Product: tee(500), Quantity: 1, SelectedSize: "L", SelectedColor: "Black"})
	_ = s.Add(ctx, "sid1", domain.CartItem{Product: tee(500), Quantity: 1, SelectedSize: "M", SelectedColor: "White"})

	items, err := s.Get(ctx, "sid1")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("expected three lines, got %d", len(items))
	}
	// Append order is display order
	if items[0].SelectedSize != "M" || items[0].SelectedColor != "Black" {
		t.Fatalf("first line out of order: %+v", items[0])
	}
	if items[2].SelectedColor != "White" {
		t.Fatalf("third line out of order: %+v", items[2])
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	s := memStore(t)
	ctx := context.Background()

	_ = s.Add(ctx, "sid1", domain.CartItem{Product: tee(500), Quantity: 2, SelectedSize: "M"})
	_ = s.Add(ctx, "sid1", domain.CartItem{Product: tee(500), Quantity: 1, SelectedSize: "L"})

	key := domain.LineKey(1, "M", "")
	if err := s.UpdateQuantity(ctx, "sid1", key, 0); err != nil {
		t.Fatal(err)
	}

	items, _ := s.Get(ctx, "sid1")
	if len(items) != 1 {
		t.Fatalf("expected one line after removal, got %d", len(items))
	}
	if items[0].SelectedSize != "L" {
		t.Fatalf("wrong line removed: %+v", items[0])
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	s := memStore(t)
	ctx := context.Background()

	_ = s.Add(ctx, "sid1", domain.CartItem{Product: tee(500), Quantity: 2, SelectedSize: "M"})
	if err := s.UpdateQuantity(ctx, "sid1", domain.LineKey(1, "M", ""), 7); err != nil {
		t.Fatal(err)
	}
	items, _ := s.Get(ctx, "sid1")
	if items[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", items[0].Quantity)
	}
}

func TestUpdateQuantityUnknownKeyIsNoop(t *testing.T) {
	s := memStore(t)
	ctx := context.Background()

	_ = s.Add(ctx, "sid1", domain.CartItem{Product: tee(500), Quantity: 2, SelectedSize: "M"})
	if err := s.UpdateQuantity(ctx, "sid1", domain.LineKey(99, "M", ""), 5); err != nil {
		t.Fatal(err)
	}
	items, _ := s.Get(ctx, "sid1")
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("cart changed on unknown key: %+v", items)
	}
}

func TestTotals(t *testing.T) {
	s := memStore(t)
	ctx := context.Background()

	_ = s.Add(ctx, "sid1", domain.CartItem{Product: tee(500), Quantity: 2, SelectedSize: "M"})

	tot, err := s.Totals(ctx, "sid1")
	if err != nil {
		t.Fatal(err)
	}
	const eps = 1e-9
	if math.Abs(tot.Subtotal-1000) > eps {
		t.Fatalf("subtotal = %v, want 1000", tot.Subtotal)
	}
	if math.Abs(tot.Tax-180) > eps {
		t.Fatalf("tax = %v, want 180", tot.Tax)
	}
	if math.Abs(tot.Total-1180) > eps {
		t.Fatalf("total = %v, want 1180", tot.Total)
	}
	if math.Abs(tot.Total-(tot.Subtotal+tot.Subtotal*cart.TaxRate)) > eps {
		t.Fatalf("total != subtotal + tax: %+v", tot)
	}
}

func TestClearThenGetIsEmpty(t *testing.T) {
	s := memStore(t)
	ctx := context.Background()

	_ = s.Add(ctx, "sid1", domain.CartItem{Product: tee(500), Quantity: 2})
	if err := s.Clear(ctx, "sid1"); err != nil {
		t.Fatal(err)
	}
	items, err := s.Get(ctx, "sid1")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart after clear, got %d lines", len(items))
	}
}

func TestCorruptSlotReadsAsEmpty(t *testing.T) {
	kv, err := storage.OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	s := cart.NewStore(kv)
	ctx := context.Background()

	if err := kv.Set(ctx, "sid1", storage.SlotCart, "{not json"); err != nil {
		t.Fatal(err)
	}

	_, state, err := s.Read(ctx, "sid1")
	if err != nil {
		t.Fatal(err)
	}
	if state != cart.ReadCorrupt {
		t.Fatalf("expected corrupt read state, got %v", state)
	}

	items, err := s.Get(ctx, "sid1")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("corrupt cart should read as empty, got %d lines", len(items))
	}
}

func TestCartsAreScopedBySession(t *testing.T) {
	s := memStore(t)
	ctx := context.Background()

	_ = s.Add(ctx, "sid1", domain.CartItem{Product: tee(500), Quantity: 1})
	items, _ := s.Get(ctx, "sid2")
	if len(items) != 0 {
		t.Fatalf("sid2 should have an empty cart, got %d lines", len(items))
	}
}

func TestCount(t *testing.T) {
	s := memStore(t)
	ctx := context.Background()

	_ = s.Add(ctx, "sid1", domain.CartItem{Product: tee(500), Quantity: 2, SelectedSize: "M"})
	_ = s.Add(ctx, "sid1", domain.CartItem{Product: tee(500), Quantity: 3, SelectedSize: "L"})

	n, err := s.Count(ctx, "sid1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Fatalf("count = %d, want 5", n)
	}
}
