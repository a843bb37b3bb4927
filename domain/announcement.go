package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetAnnouncements   = "announcements retrieved successfully"
	MessageSuccessCreateAnnouncement = "announcement created successfully"
	MessageSuccessUpdateAnnouncement = "announcement updated successfully"
	MessageSuccessDeleteAnnouncement = "announcement deleted successfully"

	MessageFailedGetAnnouncements   = "failed to retrieve announcements"
	MessageFailedCreateAnnouncement = "failed to create announcement"
	MessageFailedUpdateAnnouncement = "failed to update announcement"
	MessageFailedDeleteAnnouncement = "failed to delete announcement"

	ErrAnnouncementNotFound = errors.New("announcement not found")
)

type (
	CreateAnnouncementRequest struct {
		Title        string     `json:"title" validate:"required,min=1"`
		Content      string     `json:"content" validate:"required,min=1"`
		Type         string     `json:"type" validate:"omitempty,oneof=info update important"`
		IsActive     *bool      `json:"is_active"`
		DisplayOrder *int       `json:"display_order"`
		StartDate    *time.Time `json:"start_date"`
		EndDate      *time.Time `json:"end_date"`
	}

	UpdateAnnouncementRequest struct {
		Title        *string    `json:"title" validate:"omitempty,min=1"`
		Content      *string    `json:"content" validate:"omitempty,min=1"`
		Type         *string    `json:"type" validate:"omitempty,oneof=info update important"`
		IsActive     *bool      `json:"is_active"`
		DisplayOrder *int       `json:"display_order"`
		StartDate    *time.Time `json:"start_date"`
		EndDate      *time.Time `json:"end_date"`
	}

	CreateAnnouncementResponse struct {
		ID string `json:"id"`
	}
)
