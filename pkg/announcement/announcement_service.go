package announcement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
)

type (
	AnnouncementService interface {
		GetActive(ctx context.Context) ([]entities.Announcement, error)
		GetAll(ctx context.Context) ([]entities.Announcement, error)
		Create(ctx context.Context, req domain.CreateAnnouncementRequest, createdBy string) (domain.CreateAnnouncementResponse, error)
		Update(ctx context.Context, id string, req domain.UpdateAnnouncementRequest) error
		Delete(ctx context.Context, id string) error
	}

	announcementService struct {
		announcementRepository AnnouncementRepository
	}
)

func NewAnnouncementService(announcementRepository AnnouncementRepository) AnnouncementService {
	return &announcementService{announcementRepository: announcementRepository}
}

func (s *announcementService) GetActive(ctx context.Context) ([]entities.Announcement, error) {
	return s.announcementRepository.ListActive(ctx, time.Now())
}

func (s *announcementService) GetAll(ctx context.Context) ([]entities.Announcement, error) {
	return s.announcementRepository.ListAll(ctx)
}

func (s *announcementService) Create(ctx context.Context, req domain.CreateAnnouncementRequest, createdBy string) (domain.CreateAnnouncementResponse, error) {
	creator, err := uuid.Parse(createdBy)
	if err != nil {
		return domain.CreateAnnouncementResponse{}, domain.ErrParseUUID
	}

	announcement := &entities.Announcement{
		ID:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Type:      entities.AnnouncementTypeInfo,
		IsActive:  true,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedBy: &creator,
	}
	if req.Type != "" {
		announcement.Type = req.Type
	}
	if req.IsActive != nil {
		announcement.IsActive = *req.IsActive
	}
	if req.DisplayOrder != nil {
		announcement.DisplayOrder = *req.DisplayOrder
	}

	if err := s.announcementRepository.Create(ctx, announcement); err != nil {
		return domain.CreateAnnouncementResponse{}, err
	}
	return domain.CreateAnnouncementResponse{ID: announcement.ID.String()}, nil
}

func (s *announcementService) Update(ctx context.Context, id string, req domain.UpdateAnnouncementRequest) error {
	announcementID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}
	if _, err := s.announcementRepository.GetByID(ctx, announcementID); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}

	if len(fields) == 0 {
		return nil
	}
	return s.announcementRepository.UpdateFields(ctx, announcementID, fields)
}

func (s *announcementService) Delete(ctx context.Context, id string) error {
	announcementID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}
	if _, err := s.announcementRepository.GetByID(ctx, announcementID); err != nil {
		return err
	}
	return s.announcementRepository.Delete(ctx, announcementID)
}
