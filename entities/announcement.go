package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	AnnouncementTypeInfo      = "info"
	AnnouncementTypeUpdate    = "update"
	AnnouncementTypeImportant = "important"
)

type Announcement struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title        string     `gorm:"size:200;not null" json:"title"`
	Content      string     `gorm:"not null" json:"content"`
	Type         string     `gorm:"size:16;default:'info';not null" json:"type"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	DisplayOrder int        `gorm:"default:0" json:"display_order"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	Timestamp
}

// VisibleAt reports whether the announcement should show on the public site
// at the given moment. A nil bound leaves that side of the window open.
func (a *Announcement) VisibleAt(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.StartDate != nil && now.Before(*a.StartDate) {
		return false
	}
	if a.EndDate != nil && now.After(*a.EndDate) {
		return false
	}
	return true
}
