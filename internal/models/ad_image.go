package models

type AdImage struct {
	ID       int    `json:"image_id"`
	AdID     int    `json:"ad_id"`
	ImageURL string `json:"image_url"`
}
