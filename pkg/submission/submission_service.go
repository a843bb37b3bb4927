package submission

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/database"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/utils/llm"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/utils/storage"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/brand"
)

// NotifyFunc delivers a notification to the site owner. Failures are logged
// and never propagated.
type NotifyFunc func(title string, content string) error

type (
	SubmissionService interface {
		Create(ctx context.Context, req domain.CreateSubmissionRequest, userID string) (domain.CreateSubmissionResponse, error)
		GetByStatus(ctx context.Context, status string) ([]entities.Submission, error)
		GetByID(ctx context.Context, id string) (*entities.Submission, error)
		Approve(ctx context.Context, id string, req domain.ApproveSubmissionRequest, reviewerID string) error
		Reject(ctx context.Context, id string, req domain.RejectSubmissionRequest, reviewerID string) error
		Revalidate(ctx context.Context, id string) (entities.LLMValidation, error)
	}

	submissionService struct {
		submissionRepository SubmissionRepository
		brandRepository      brand.BrandRepository
		validator            llm.Validator
		s3                   storage.AwsS3
		notify               NotifyFunc
		tx                   database.TxFunc
	}
)

func NewSubmissionService(
	submissionRepository SubmissionRepository,
	brandRepository brand.BrandRepository,
	validator llm.Validator,
	s3 storage.AwsS3,
	notify NotifyFunc,
	tx database.TxFunc,
) SubmissionService {
	return &submissionService{
		submissionRepository: submissionRepository,
		brandRepository:      brandRepository,
		validator:            validator,
		s3:                   s3,
		notify:               notify,
		tx:                   tx,
	}
}

func submissionTypeLabel(submissionType string) string {
	switch submissionType {
	case entities.SubmissionTypeBrand:
		return "品牌"
	case entities.SubmissionTypeUpdate:
		return "更新"
	default:
		return "圖片"
	}
}

func (s *submissionService) Create(ctx context.Context, req domain.CreateSubmissionRequest, userID string) (domain.CreateSubmissionResponse, error) {
	submission := &entities.Submission{
		ID:             uuid.New(),
		SubmitterName:  req.SubmitterName,
		SubmitterEmail: req.SubmitterEmail,
		SubmissionType: req.SubmissionType,
		Content:        req.Content,
		ImageURL:       req.ImageURL,
		ImageKey:       req.ImageKey,
		Status:         entities.SubmissionStatusPending,
	}

	if userID != "" {
		uid, err := uuid.Parse(userID)
		if err != nil {
			return domain.CreateSubmissionResponse{}, domain.ErrParseUUID
		}
		submission.UserID = &uid
	}
	if req.RelatedBrandID != "" {
		bid, err := uuid.Parse(req.RelatedBrandID)
		if err != nil {
			return domain.CreateSubmissionResponse{}, domain.ErrParseUUID
		}
		submission.RelatedBrandID = &bid
	}

	if err := s.submissionRepository.Create(ctx, submission); err != nil {
		return domain.CreateSubmissionResponse{}, err
	}

	// Automated validation is best-effort: a failure is stored as a
	// needs-manual-review result, never as a creation failure.
	result := s.runValidation(ctx, submission.Content, submission.SubmissionType)
	if err := s.submissionRepository.UpdateLLMValidation(ctx, submission.ID, result); err != nil {
		log.Printf("failed to store validation result for submission %s: %v", submission.ID, err)
	}

	name := submission.Content.BrandName
	if name == "" {
		name = submission.Content.ProductName
	}
	if name == "" {
		name = "未命名"
	}
	if err := s.notify(
		"新投稿通知",
		fmt.Sprintf("收到新的%s投稿：%s", submissionTypeLabel(submission.SubmissionType), name),
	); err != nil {
		log.Printf("failed to notify owner about submission %s: %v", submission.ID, err)
	}

	return domain.CreateSubmissionResponse{ID: submission.ID.String()}, nil
}

// runValidation calls the external validator and falls back to a synthetic
// needs-manual-review result when the call cannot complete.
func (s *submissionService) runValidation(ctx context.Context, content entities.SubmissionContent, submissionType string) entities.LLMValidation {
	if s.validator != nil {
		result, err := s.validator.ValidateSubmission(ctx, content, submissionType)
		if err == nil {
			return result
		}
		log.Printf("LLM validation failed: %v", err)
	}
	return entities.LLMValidation{
		IsValid:     false,
		Confidence:  0,
		Issues:      []string{domain.LLMFallbackIssue},
		Suggestions: []string{domain.LLMFallbackSuggestion},
	}
}

func (s *submissionService) GetByStatus(ctx context.Context, status string) ([]entities.Submission, error) {
	switch status {
	case entities.SubmissionStatusPending, entities.SubmissionStatusApproved, entities.SubmissionStatusRejected:
	default:
		return nil, domain.ErrInvalidSubmissionStatus
	}
	return s.submissionRepository.ListByStatus(ctx, status)
}

func (s *submissionService) GetByID(ctx context.Context, id string) (*entities.Submission, error) {
	submissionID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.submissionRepository.GetByID(ctx, submissionID)
}

func (s *submissionService) Approve(ctx context.Context, id string, req domain.ApproveSubmissionRequest, reviewerID string) error {
	submissionID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}
	reviewer, err := uuid.Parse(reviewerID)
	if err != nil {
		return domain.ErrParseUUID
	}

	submission, err := s.submissionRepository.GetByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if submission.Status != entities.SubmissionStatusPending {
		return domain.ErrSubmissionAlreadyReviewed
	}

	if !req.ApplyToBrand {
		return s.submissionRepository.UpdateStatus(
			ctx, submissionID, entities.SubmissionStatusApproved, reviewer, req.ReviewNotes,
		)
	}

	// The catalog write and the status update commit or roll back together.
	var replacedKey string
	err = s.tx(ctx, func(ctx context.Context) error {
		key, err := s.applyToBrand(ctx, submission)
		if err != nil {
			return err
		}
		replacedKey = key
		return s.submissionRepository.UpdateStatus(
			ctx, submissionID, entities.SubmissionStatusApproved, reviewer, req.ReviewNotes,
		)
	})
	if err != nil {
		return err
	}

	// Object storage cannot join the transaction, so the replaced image is
	// removed only after commit, best-effort.
	if replacedKey != "" && s.s3 != nil {
		if err := s.s3.DeleteFile(ctx, replacedKey); err != nil {
			log.Printf("failed to delete replaced image %s: %v", replacedKey, err)
		}
	}
	return nil
}

// applyToBrand writes the approved content back to the catalog. For update
// and image submissions without a related brand the catalog is left alone;
// the submission still resolves as approved. The returned key is the object
// an image submission displaced, to be deleted after commit.
func (s *submissionService) applyToBrand(ctx context.Context, submission *entities.Submission) (string, error) {
	content := submission.Content

	switch submission.SubmissionType {
	case entities.SubmissionTypeBrand:
		if content.BrandName == "" || content.ProductName == "" {
			return "", domain.ErrInvalidSubmissionType
		}
		if !entities.IsValidPasteurizationType(content.PasteurizationType) {
			return "", domain.ErrInvalidPasteurizationType
		}
		if content.Volume == nil || *content.Volume <= 0 {
			return "", domain.ErrInvalidVolume
		}

		newBrand := &entities.MilkBrand{
			ID:                 uuid.New(),
			BrandName:          content.BrandName,
			ProductName:        content.ProductName,
			PasteurizationType: content.PasteurizationType,
			Volume:             *content.Volume,
			ShelfLife:          content.ShelfLife,
			Price:              content.Price,
			Origin:             content.Origin,
			Ingredients:        content.Ingredients,
			OfficialWebsite:    content.OfficialWebsite,
			ImageURL:           submission.ImageURL,
			ImageKey:           submission.ImageKey,
			PhysicalChannels:   content.PhysicalChannels,
			OnlineChannels:     content.OnlineChannels,
			Notes:              content.Notes,
			IsActive:           true,
		}
		if content.IsOrganic != nil {
			newBrand.IsOrganic = *content.IsOrganic
		}
		if content.IsImported != nil {
			newBrand.IsImported = *content.IsImported
		}
		return "", s.brandRepository.Create(ctx, newBrand)

	case entities.SubmissionTypeUpdate:
		if submission.RelatedBrandID == nil {
			log.Printf("approve: update submission %s has no related brand, skipping catalog write", submission.ID)
			return "", nil
		}
		fields := contentToBrandFields(content)
		if len(fields) == 0 {
			return "", nil
		}
		return "", s.brandRepository.UpdateFields(ctx, *submission.RelatedBrandID, fields)

	case entities.SubmissionTypeImage:
		if submission.RelatedBrandID == nil {
			log.Printf("approve: image submission %s has no related brand, skipping catalog write", submission.ID)
			return "", nil
		}

		var oldKey string
		if existing, err := s.brandRepository.GetByID(ctx, *submission.RelatedBrandID); err == nil {
			oldKey = existing.ImageKey
			if oldKey == "" && existing.ImageURL != "" && s.s3 != nil {
				oldKey = s.s3.GetObjectKeyFromLink(existing.ImageURL)
			}
		}

		if err := s.brandRepository.UpdateFields(ctx, *submission.RelatedBrandID, map[string]interface{}{
			"image_url": submission.ImageURL,
			"image_key": submission.ImageKey,
		}); err != nil {
			return "", err
		}
		if oldKey == submission.ImageKey {
			oldKey = ""
		}
		return oldKey, nil
	}
	return "", domain.ErrInvalidSubmissionType
}

// contentToBrandFields maps the fields present in an update bag onto brand
// columns. Absent fields are left untouched.
func contentToBrandFields(content entities.SubmissionContent) map[string]interface{} {
	fields := map[string]interface{}{}
	if content.BrandName != "" {
		fields["brand_name"] = content.BrandName
	}
	if content.ProductName != "" {
		fields["product_name"] = content.ProductName
	}
	if entities.IsValidPasteurizationType(content.PasteurizationType) {
		fields["pasteurization_type"] = content.PasteurizationType
	}
	if content.Volume != nil && *content.Volume > 0 {
		fields["volume"] = *content.Volume
	}
	if content.ShelfLife != nil {
		fields["shelf_life"] = *content.ShelfLife
	}
	if content.Price != nil {
		fields["price"] = *content.Price
	}
	if content.Origin != "" {
		fields["origin"] = content.Origin
	}
	if content.Ingredients != "" {
		fields["ingredients"] = content.Ingredients
	}
	if content.OfficialWebsite != "" {
		fields["official_website"] = content.OfficialWebsite
	}
	if content.PhysicalChannels != nil {
		fields["physical_channels"] = entities.StringList(content.PhysicalChannels)
	}
	if content.OnlineChannels != nil {
		fields["online_channels"] = entities.StringList(content.OnlineChannels)
	}
	if content.Notes != "" {
		fields["notes"] = content.Notes
	}
	if content.IsOrganic != nil {
		fields["is_organic"] = *content.IsOrganic
	}
	if content.IsImported != nil {
		fields["is_imported"] = *content.IsImported
	}
	return fields
}

func (s *submissionService) Reject(ctx context.Context, id string, req domain.RejectSubmissionRequest, reviewerID string) error {
	if strings.TrimSpace(req.ReviewNotes) == "" {
		return domain.ErrReviewNotesRequired
	}

	submissionID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}
	reviewer, err := uuid.Parse(reviewerID)
	if err != nil {
		return domain.ErrParseUUID
	}

	submission, err := s.submissionRepository.GetByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if submission.Status != entities.SubmissionStatusPending {
		return domain.ErrSubmissionAlreadyReviewed
	}

	return s.submissionRepository.UpdateStatus(
		ctx, submissionID, entities.SubmissionStatusRejected, reviewer, req.ReviewNotes,
	)
}

func (s *submissionService) Revalidate(ctx context.Context, id string) (entities.LLMValidation, error) {
	submissionID, err := uuid.Parse(id)
	if err != nil {
		return entities.LLMValidation{}, domain.ErrParseUUID
	}

	submission, err := s.submissionRepository.GetByID(ctx, submissionID)
	if err != nil {
		return entities.LLMValidation{}, err
	}

	result := s.runValidation(ctx, submission.Content, submission.SubmissionType)
	if err := s.submissionRepository.UpdateLLMValidation(ctx, submissionID, result); err != nil {
		return entities.LLMValidation{}, err
	}
	return result, nil
}
