package models

import "time"

type Notification struct {
	ID            int64     `json:"id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	ReferenceID   *int64    `json:"referenceId,omitempty"`
	ReferenceType string    `json:"referenceType,omitempty"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     time.Time `json:"createdAt"`
}

type UnreadCount struct {
	Count int `json:"count"`
}

type SearchResult struct {
	Employees []Employee `json:"employees"`
	Documents []Document `json:"documents"`
}

func (r SearchResult) Empty() bool {
	return len(r.Employees) == 0 && len(r.Documents) == 0
}
