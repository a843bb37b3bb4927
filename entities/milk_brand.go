package entities

import (
	"github.com/google/uuid"
)

const (
	PasteurizationLTLT = "LTLT" // 低溫長時間殺菌
	PasteurizationHTST = "HTST" // 高溫短時間殺菌
	PasteurizationUHT  = "UHT"  // 超高溫殺菌
	PasteurizationESL  = "ESL"  // 延長保存期限
)

// PasteurizationTypes lists the stored codes in display order.
var PasteurizationTypes = []string{
	PasteurizationLTLT,
	PasteurizationHTST,
	PasteurizationUHT,
	PasteurizationESL,
}

type MilkBrand struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BrandName          string     `gorm:"size:100;not null" json:"brand_name"`
	ProductName        string     `gorm:"size:200;not null" json:"product_name"`
	PasteurizationType string     `gorm:"size:8;not null" json:"pasteurization_type"`
	Volume             int        `gorm:"not null" json:"volume"`
	ShelfLife          *int       `json:"shelf_life,omitempty"`
	Price              *int       `json:"price,omitempty"`
	Origin             string     `gorm:"size:100" json:"origin,omitempty"`
	Ingredients        string     `json:"ingredients,omitempty"`
	OfficialWebsite    string     `gorm:"size:500" json:"official_website,omitempty"`
	ImageURL           string     `gorm:"size:500" json:"image_url,omitempty"`
	ImageKey           string     `gorm:"size:200" json:"image_key,omitempty"`
	PhysicalChannels   StringList `json:"physical_channels"`
	OnlineChannels     StringList `json:"online_channels"`
	Notes              string     `json:"notes,omitempty"`
	IsOrganic          bool       `gorm:"default:false" json:"is_organic"`
	IsImported         bool       `gorm:"default:false" json:"is_imported"`
	IsActive           bool       `gorm:"default:true" json:"is_active"`
	Timestamp
}

// IsValidPasteurizationType reports whether code is one of the four stored codes.
func IsValidPasteurizationType(code string) bool {
	for _, t := range PasteurizationTypes {
		if t == code {
			return true
		}
	}
	return false
}
