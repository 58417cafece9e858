package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// StringList is stored as a JSONB array so sizes, colors, and image URLs
// keep their order.
type StringList []string

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = make(StringList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringList")
	}
	return json.Unmarshal(bytes, s)
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// Product is the catalog record served to the storefront. Products are
// supplied by the catalog source at load time and never mutated afterwards.
type Product struct {
	ID            string     `json:"id" yaml:"id" gorm:"primaryKey"`
	Name          string     `json:"name" yaml:"name" gorm:"not null;index"`
	Brand         string     `json:"brand" yaml:"brand" gorm:"not null;index"`
	Price         float64    `json:"price" yaml:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	OriginalPrice *float64   `json:"original_price,omitempty" yaml:"original_price,omitempty" gorm:"type:numeric(12,2)"`
	Images        StringList `json:"images" yaml:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Category      string     `json:"category" yaml:"category" gorm:"not null;index"`
	Subcategory   string     `json:"subcategory" yaml:"subcategory"`
	Sizes         StringList `json:"sizes" yaml:"sizes" gorm:"type:jsonb;not null;default:'[]'"`
	Colors        StringList `json:"colors" yaml:"colors" gorm:"type:jsonb;not null;default:'[]'"`
	Description   string     `json:"description" yaml:"description"`
	IsNew         bool       `json:"is_new" yaml:"is_new"`
	IsTrending    bool       `json:"is_trending" yaml:"is_trending"`
	IsOnSale      bool       `json:"is_on_sale" yaml:"is_on_sale"`
	RWNEligible   bool       `json:"rwn_eligible" yaml:"rwn_eligible"`
	Rating        float64    `json:"rating" yaml:"rating"`
	ReviewCount   int        `json:"review_count" yaml:"review_count"`
	CreatedAt     time.Time  `json:"created_at,omitempty" yaml:"-" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at,omitempty" yaml:"-" gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// RWNCardPrice is the per-item token price shown on product cards:
// ceil(price * 0.9 * 100) RWN, only meaningful when the product is
// RWN-eligible. Returns 0 for ineligible products.
func (p Product) RWNCardPrice() int64 {
	if !p.RWNEligible {
		return 0
	}
	return decimal.NewFromFloat(p.Price).
		Mul(rwnDiscount).
		Mul(rwnExchangeRate).
		Ceil().
		IntPart()
}

var (
	// RWN checkout applies a flat 10% discount.
	rwnDiscount = decimal.NewFromFloat(0.9)
	// Fixed exchange rate: 100 RWN per primary-currency unit (1 RWN = $0.01).
	rwnExchangeRate = decimal.NewFromInt(100)
)

// RWNDiscount and RWNExchangeRate expose the conversion constants to the
// cart ledger so the card price and the cart total stay on one rule.
func RWNDiscount() decimal.Decimal     { return rwnDiscount }
func RWNExchangeRate() decimal.Decimal { return rwnExchangeRate }
