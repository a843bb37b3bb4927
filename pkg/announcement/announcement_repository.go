package announcement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
)

type (
	AnnouncementRepository interface {
		Create(ctx context.Context, announcement *entities.Announcement) error
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Announcement, error)
		ListAll(ctx context.Context) ([]entities.Announcement, error)
		ListActive(ctx context.Context, now time.Time) ([]entities.Announcement, error)
		UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	announcementRepository struct {
		db *gorm.DB
	}
)

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *entities.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Announcement, error) {
	var announcement entities.Announcement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&announcement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepository) ListAll(ctx context.Context) ([]entities.Announcement, error) {
	var announcements []entities.Announcement
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

// ListActive returns announcements visible at the given moment: active, and
// inside the [start_date, end_date] window with null bounds open-ended.
// Higher display_order wins, ties broken by recency.
func (r *announcementRepository) ListActive(ctx context.Context, now time.Time) ([]entities.Announcement, error) {
	var announcements []entities.Announcement
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Order("display_order desc, created_at desc").
		Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *announcementRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&entities.Announcement{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes the row. Announcements are editorial messages, not catalog
// data, so no soft delete here.
func (r *announcementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Announcement{}).Error
}
