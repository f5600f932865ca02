package models

import "time"

// Notification is an admin notification from the storefront backend.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationsSnapshot is what the gateway serves to the dashboard header.
type NotificationsSnapshot struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
	FetchedAt     time.Time      `json:"fetched_at"`
}
