package domain

import "testing"

func TestParseSortOrder(t *testing.T) {
	cases := []struct {
		in   string
		want SortOrder
		ok   bool
	}{
		{"", "", true},
		{"newest", SortNewest, true},
		{"price_asc", SortPriceAsc, true},
		{"price_desc", SortPriceDesc, true},
		{"popularity", SortPopularity, true},
		{"cheapest", "", false},
		{"PRICE_ASC", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseSortOrder(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ParseSortOrder(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLineKeyMatchesItemKey(t *testing.T) {
	it := CartItem{
		Product:       Product{ID: 42},
		SelectedSize:  "M",
		SelectedColor: "Black",
	}
	if it.Key() != LineKey(42, "M", "Black") {
		t.Errorf("item key %q does not match LineKey %q", it.Key(), LineKey(42, "M", "Black"))
	}
	if LineKey(42, "M", "Black") == LineKey(42, "L", "Black") {
		t.Error("keys for different sizes should differ")
	}
}

func TestStatusColor(t *testing.T) {
	if c := StatusColor(StatusDelivered); c != "green" {
		t.Errorf("delivered color = %q", c)
	}
	if c := StatusColor("NOT_A_STATUS"); c != "grey" {
		t.Errorf("unknown status color = %q, want grey", c)
	}
}
