package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxDiscount is the upper bound of Dish.Discount, expressed in percent.
const MaxDiscount = 100

var hundred = decimal.NewFromInt(100)

// Dish is a priced item of a Submenu.
type Dish struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string          `gorm:"uniqueIndex;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Discount    int             `gorm:"not null;default:0" json:"discount"`
	SubmenuID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"submenu_id"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// CurrentPrice applies the discount percentage to the list price, rounded to cents.
func (d Dish) CurrentPrice() decimal.Decimal {
	if d.Discount <= 0 {
		return d.Price.Round(2)
	}
	discount := d.Discount
	if discount > MaxDiscount {
		discount = MaxDiscount
	}
	cut := d.Price.Mul(decimal.NewFromInt(int64(discount))).Div(hundred)
	return d.Price.Sub(cut).Round(2)
}
