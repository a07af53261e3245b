package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestDishCurrentPrice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		price    string
		discount int
		want     string
	}{
		{"no discount", "12.50", 0, "12.50"},
		{"ten percent", "12.50", 10, "11.25"},
		{"rounds to cents", "9.99", 15, "8.49"},
		{"full discount", "40.00", 100, "0.00"},
		{"clamps above hundred", "40.00", 150, "0.00"},
		{"negative ignored", "7.00", -5, "7.00"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dish := Dish{Price: decimal.RequireFromString(tt.price), Discount: tt.discount}
			if got := dish.CurrentPrice().StringFixed(2); got != tt.want {
				t.Fatalf("CurrentPrice() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBeforeCreateAssignsIdentifiers(t *testing.T) {
	t.Parallel()

	menu := &Menu{}
	if err := menu.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if menu.ID == uuid.Nil {
		t.Fatal("expected menu id to be generated")
	}

	fixed := uuid.New()
	submenu := &Submenu{ID: fixed}
	if err := submenu.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if submenu.ID != fixed {
		t.Fatalf("expected existing id to be preserved, got %s", submenu.ID)
	}

	dish := &Dish{}
	if err := dish.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if dish.ID == uuid.Nil {
		t.Fatal("expected dish id to be generated")
	}
}
