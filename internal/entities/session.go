package entities

import "time"

// Session is the persisted form of a bearer token. The token itself is
// stored encrypted; Account is the email the token was issued for.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Account   string    `gorm:"uniqueIndex;size:255" json:"account"`
	Token     string    `gorm:"size:2048" json:"-"`
	TokenType string    `gorm:"size:32" json:"token_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
