package models

type Location struct {
	ID      int     `json:"location_id"`
	City    string  `json:"city"`
	State   *string `json:"state,omitempty"`
	Country string  `json:"country"`
}

type LocationUpdate struct {
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
}
