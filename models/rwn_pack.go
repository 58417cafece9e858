package models

// RWNPack is one purchasable token bundle on the Get RWN page. Credited
// tokens = Tokens + Bonus.
type RWNPack struct {
	ID      string  `json:"id" yaml:"id"`
	Price   float64 `json:"price" yaml:"price"`
	Tokens  int64   `json:"tokens" yaml:"tokens"`
	Bonus   int64   `json:"bonus" yaml:"bonus"`
	Popular bool    `json:"popular,omitempty" yaml:"popular,omitempty"`
}

type PurchasePackRequest struct {
	PackID string `json:"pack_id" binding:"required"`
}

type PurchasePackResponse struct {
	Credited   int64 `json:"credited"`
	RWNBalance int64 `json:"rwn_balance"`
}
