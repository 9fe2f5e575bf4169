package models

import "time"

// PageView is a single analytics hit. Page views are written, never read.
type PageView struct {
	ID        string    `json:"id"`
	Page      string    `json:"page"`
	UserAgent *string   `json:"user_agent"`
	IPAddress *string   `json:"ip_address"`
	Referrer  *string   `json:"referrer"`
	Timestamp time.Time `json:"timestamp"`
}

type PageViewInput struct {
	Page      string  `json:"page" validate:"required"`
	UserAgent *string `json:"user_agent"`
	Referrer  *string `json:"referrer"`
}
