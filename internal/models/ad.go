package models

import (
	"time"
)

const (
	ConditionNew  = "New"
	ConditionUsed = "Used"
)

type Ad struct {
	ID          int       `json:"ad_id"`
	UserID      int       `json:"user_id"`
	CategoryID  int       `json:"category_id"`
	LocationID  *int      `json:"location_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Condition   string    `json:"condition"`
	IsSold      bool      `json:"is_sold"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Embedded one level deep on detail responses.
	User     *User     `json:"user,omitempty"`
	Category *Category `json:"category,omitempty"`
	Location *Location `json:"location,omitempty"`
	Images   []AdImage `json:"images,omitempty"`
}

// AdUpdate carries a partial update. LocationID distinguishes an absent
// field from an explicit null, so an ad's location can be cleared.
type AdUpdate struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Price       *float64    `json:"price"`
	Condition   *string     `json:"condition"`
	CategoryID  *int        `json:"category_id"`
	LocationID  OptionalInt `json:"location_id"`
	IsSold      *bool       `json:"is_sold"`
}

func ValidCondition(c string) bool {
	return c == ConditionNew || c == ConditionUsed
}
