package domain

import (
	"errors"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
)

var (
	MessageSuccessCreateSubmission  = "submission created successfully"
	MessageSuccessGetSubmissions    = "submissions retrieved successfully"
	MessageSuccessApproveSubmission = "submission approved successfully"
	MessageSuccessRejectSubmission  = "submission rejected successfully"
	MessageSuccessRevalidate        = "submission revalidated successfully"

	MessageFailedCreateSubmission  = "failed to create submission"
	MessageFailedGetSubmissions    = "failed to retrieve submissions"
	MessageFailedApproveSubmission = "failed to approve submission"
	MessageFailedRejectSubmission  = "failed to reject submission"
	MessageFailedRevalidate        = "failed to revalidate submission"

	// 沿用前端文案
	MessageSubmissionNotFound = "找不到該投稿"

	ErrSubmissionNotFound        = errors.New("submission not found")
	ErrSubmissionAlreadyReviewed = errors.New("submission already reviewed")
	ErrReviewNotesRequired       = errors.New("review notes are required when rejecting")
	ErrInvalidSubmissionType     = errors.New("invalid submission type")
	ErrInvalidSubmissionStatus   = errors.New("invalid submission status")
)

// Fallback validation stored when the external check cannot complete.
// The reviewer must see that validation failed, not an empty field.
var (
	LLMFallbackIssue      = "無法完成 LLM 驗證"
	LLMFallbackSuggestion = "請手動審核此投稿"
)

type (
	CreateSubmissionRequest struct {
		SubmissionType string                     `json:"submission_type" validate:"required,oneof=brand update image"`
		RelatedBrandID string                     `json:"related_brand_id" validate:"omitempty,uuid"`
		Content        entities.SubmissionContent `json:"content" validate:"required"`
		SubmitterName  string                     `json:"submitter_name" validate:"omitempty,max=100"`
		SubmitterEmail string                     `json:"submitter_email" validate:"omitempty,email"`
		ImageURL       string                     `json:"image_url"`
		ImageKey       string                     `json:"image_key"`
	}

	CreateSubmissionResponse struct {
		ID string `json:"id"`
	}

	ApproveSubmissionRequest struct {
		ReviewNotes  string `json:"review_notes"`
		ApplyToBrand bool   `json:"apply_to_brand"`
	}

	RejectSubmissionRequest struct {
		ReviewNotes string `json:"review_notes" validate:"required,min=1"`
	}
)
