package importer

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

const (
	menuA    = "0b4c7d1e-5a1f-4c3e-8f00-000000000001"
	menuB    = "0b4c7d1e-5a1f-4c3e-8f00-000000000002"
	submenuA = "0b4c7d1e-5a1f-4c3e-8f00-000000000011"
	submenuB = "0b4c7d1e-5a1f-4c3e-8f00-000000000012"
	dishA    = "0b4c7d1e-5a1f-4c3e-8f00-000000000021"
	dishB    = "0b4c7d1e-5a1f-4c3e-8f00-000000000022"
	dishC    = "0b4c7d1e-5a1f-4c3e-8f00-000000000023"
)

func sampleRows() [][]string {
	return [][]string{
		{menuA, "Lunch", "Weekdays"},
		{"", submenuA, "Soups", "Hot"},
		{"", "", dishA, "Borscht", "Beetroot", "6,50", "10"},
		{"", "", dishB, "Solyanka", "Meat", "7.25"},
		{},
		{menuB, "Bar", ""},
		{"", submenuB, "Cocktails", ""},
		{"", "", dishC, "Negroni", "", "9", "15"},
	}
}

func TestParseRowsBuildsHierarchy(t *testing.T) {
	t.Parallel()

	snap := ParseRows(context.Background(), sampleRows())

	if len(snap.Menus) != 2 || len(snap.Submenus) != 2 || len(snap.Dishes) != 3 {
		t.Fatalf("unexpected snapshot sizes: %d/%d/%d", len(snap.Menus), len(snap.Submenus), len(snap.Dishes))
	}
	if snap.Ignored != 0 {
		t.Fatalf("expected no ignored rows, got %d", snap.Ignored)
	}
	if snap.Submenus[1].MenuID != uuid.MustParse(menuB) {
		t.Fatalf("expected second submenu to inherit menu B, got %s", snap.Submenus[1].MenuID)
	}
	borscht := snap.Dishes[0]
	if borscht.SubmenuID != uuid.MustParse(submenuA) || borscht.Price.StringFixed(2) != "6.50" || borscht.Discount != 10 {
		t.Fatalf("unexpected first dish: %+v", borscht)
	}
	if snap.Dishes[1].Discount != 0 {
		t.Fatalf("expected blank discount to default to 0, got %d", snap.Dishes[1].Discount)
	}
	if snap.Dishes[2].SubmenuID != uuid.MustParse(submenuB) {
		t.Fatalf("expected last dish to attach to submenu B")
	}
}

func TestParseRowsIgnoresMalformedIDs(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"not-a-uuid", "Broken", ""},
		{"", submenuA, "Orphan", ""},
		{"", "", dishA, "Orphan dish", "", "1"},
		{menuA, "Lunch", ""},
		{"", "bad", "Bad submenu", ""},
		{"", "", dishB, "Also orphan", "", "2"},
		{"", submenuB, "Soups", ""},
		{"", "", "bad", "Bad dish", "", "3"},
		{"", "", dishC, "Priced badly", "", "abc"},
	}

	snap := ParseRows(context.Background(), rows)
	if len(snap.Menus) != 1 || len(snap.Submenus) != 1 || len(snap.Dishes) != 0 {
		t.Fatalf("unexpected snapshot sizes: %d/%d/%d", len(snap.Menus), len(snap.Submenus), len(snap.Dishes))
	}
	if snap.Ignored != 7 {
		t.Fatalf("expected 7 ignored rows, got %d", snap.Ignored)
	}
}

func TestParseRowsKeepsLastDuplicate(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{menuA, "Old title", ""},
		{menuA, "New title", ""},
	}
	snap := ParseRows(context.Background(), rows)
	if len(snap.Menus) != 1 || snap.Menus[0].Title != "New title" {
		t.Fatalf("expected last duplicate to win, got %+v", snap.Menus)
	}
}

func TestParseDiscountClamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"15", 15},
		{"12.9", 12},
		{"-5", 0},
		{"250", 100},
	}
	for _, tt := range tests {
		got, err := parseDiscount(tt.raw)
		if err != nil {
			t.Fatalf("parseDiscount(%q) returned error: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("parseDiscount(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
	if _, err := parseDiscount("ten"); err == nil {
		t.Fatal("expected error for non-numeric discount")
	}
}
