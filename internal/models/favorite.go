package models

// Favorite is identified by the (user_id, ad_id) pair; there is no surrogate id.
type Favorite struct {
	UserID int `json:"user_id"`
	AdID   int `json:"ad_id"`

	Ad *Ad `json:"ad,omitempty"`
}
