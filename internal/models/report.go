package models

import (
	"time"
)

type Report struct {
	ID         int       `json:"report_id"`
	AdID       int       `json:"ad_id"`
	ReportedBy int       `json:"reported_by"`
	Reason     string    `json:"reason"`
	ReportedAt time.Time `json:"reported_at"`
}
