package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	SubmissionTypeBrand  = "brand"  // 新增品牌
	SubmissionTypeUpdate = "update" // 更新資訊
	SubmissionTypeImage  = "image"  // 上傳圖片

	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// SubmissionContent is the attribute bag a contributor fills in. Every field
// is optional; which ones matter depends on the submission type.
type SubmissionContent struct {
	BrandName          string   `json:"brandName,omitempty"`
	ProductName        string   `json:"productName,omitempty"`
	PasteurizationType string   `json:"pasteurizationType,omitempty"`
	Volume             *int     `json:"volume,omitempty"`
	ShelfLife          *int     `json:"shelfLife,omitempty"`
	Price              *int     `json:"price,omitempty"`
	Origin             string   `json:"origin,omitempty"`
	Ingredients        string   `json:"ingredients,omitempty"`
	OfficialWebsite    string   `json:"officialWebsite,omitempty"`
	PhysicalChannels   []string `json:"physicalChannels,omitempty"`
	OnlineChannels     []string `json:"onlineChannels,omitempty"`
	Notes              string   `json:"notes,omitempty"`
	IsOrganic          *bool    `json:"isOrganic,omitempty"`
	IsImported         *bool    `json:"isImported,omitempty"`
	UpdateDescription  string   `json:"updateDescription,omitempty"`
}

func (c SubmissionContent) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *SubmissionContent) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = SubmissionContent{}
		return nil
	default:
		return errors.New("unsupported type for SubmissionContent")
	}
}

func (SubmissionContent) GormDataType() string {
	return "jsonb"
}

// LLMValidation is the stored result of the automated content check.
type LLMValidation struct {
	IsValid     bool     `json:"isValid"`
	Confidence  int      `json:"confidence"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

func (v LLMValidation) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *LLMValidation) Scan(src interface{}) error {
	switch s := src.(type) {
	case []byte:
		return json.Unmarshal(s, v)
	case string:
		return json.Unmarshal([]byte(s), v)
	case nil:
		*v = LLMValidation{}
		return nil
	default:
		return errors.New("unsupported type for LLMValidation")
	}
}

func (LLMValidation) GormDataType() string {
	return "jsonb"
}

type Submission struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         *uuid.UUID        `gorm:"type:uuid" json:"user_id,omitempty"`
	SubmitterName  string            `gorm:"size:100" json:"submitter_name,omitempty"`
	SubmitterEmail string            `gorm:"size:320" json:"submitter_email,omitempty"`
	SubmissionType string            `gorm:"size:16;not null" json:"submission_type"`
	RelatedBrandID *uuid.UUID        `gorm:"type:uuid" json:"related_brand_id,omitempty"`
	Content        SubmissionContent `gorm:"not null" json:"content"`
	ImageURL       string            `gorm:"size:500" json:"image_url,omitempty"`
	ImageKey       string            `gorm:"size:200" json:"image_key,omitempty"`
	Status         string            `gorm:"size:16;default:'pending';not null" json:"status"`
	ReviewNotes    string            `json:"review_notes,omitempty"`
	ReviewedBy     *uuid.UUID        `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time        `json:"reviewed_at,omitempty"`
	LLMValidation  *LLMValidation    `json:"llm_validation,omitempty"`
	Timestamp
}
