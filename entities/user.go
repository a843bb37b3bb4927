package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OpenID       string    `gorm:"size:64;uniqueIndex;not null" json:"open_id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `gorm:"size:320" json:"email,omitempty"`
	LoginMethod  string    `gorm:"size:64" json:"login_method,omitempty"`
	Role         string    `gorm:"size:16;default:'user';not null" json:"role"`
	LastSignedIn time.Time `json:"last_signed_in"`
	Timestamp
}
