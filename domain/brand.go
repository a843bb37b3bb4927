package domain

import (
	"errors"
)

var (
	MessageSuccessGetBrands        = "brands retrieved successfully"
	MessageSuccessGetBrandDetail   = "brand retrieved successfully"
	MessageSuccessCreateBrand      = "brand created successfully"
	MessageSuccessUpdateBrand      = "brand updated successfully"
	MessageSuccessDeleteBrand      = "brand deleted successfully"
	MessageSuccessGetFilterOptions = "filter options retrieved successfully"

	MessageFailedGetBrands        = "failed to retrieve brands"
	MessageFailedCreateBrand      = "failed to create brand"
	MessageFailedUpdateBrand      = "failed to update brand"
	MessageFailedDeleteBrand      = "failed to delete brand"
	MessageFailedGetFilterOptions = "failed to retrieve filter options"

	// 沿用前端文案
	MessageBrandNotFound = "找不到該品牌"

	ErrBrandNotFound             = errors.New("brand not found")
	ErrInvalidPasteurizationType = errors.New("invalid pasteurization type")
	ErrInvalidVolume             = errors.New("volume must be positive")
)

type (
	// BrandFilters is the filter specification for the public brand listing.
	// Absent fields impose no constraint.
	BrandFilters struct {
		Search             string   `query:"search"`
		PasteurizationType []string `query:"pasteurization_type"`
		PhysicalChannels   []string `query:"physical_channels"`
		OnlineChannels     []string `query:"online_channels"`
		MinPrice           *int     `query:"min_price"`
		MaxPrice           *int     `query:"max_price"`
		IsOrganic          *bool    `query:"is_organic"`
		IsImported         *bool    `query:"is_imported"`
	}

	CreateBrandRequest struct {
		BrandName          string   `json:"brand_name" validate:"required,min=1"`
		ProductName        string   `json:"product_name" validate:"required,min=1"`
		PasteurizationType string   `json:"pasteurization_type" validate:"required,oneof=LTLT HTST UHT ESL"`
		Volume             int      `json:"volume" validate:"required,gt=0"`
		ShelfLife          *int     `json:"shelf_life" validate:"omitempty,gt=0"`
		Price              *int     `json:"price" validate:"omitempty,gt=0"`
		Origin             string   `json:"origin"`
		Ingredients        string   `json:"ingredients"`
		OfficialWebsite    string   `json:"official_website" validate:"omitempty,url"`
		ImageURL           string   `json:"image_url"`
		ImageKey           string   `json:"image_key"`
		PhysicalChannels   []string `json:"physical_channels"`
		OnlineChannels     []string `json:"online_channels"`
		Notes              string   `json:"notes"`
		IsOrganic          bool     `json:"is_organic"`
		IsImported         bool     `json:"is_imported"`
	}

	// UpdateBrandRequest patches only the fields present in the payload.
	UpdateBrandRequest struct {
		BrandName          *string   `json:"brand_name" validate:"omitempty,min=1"`
		ProductName        *string   `json:"product_name" validate:"omitempty,min=1"`
		PasteurizationType *string   `json:"pasteurization_type" validate:"omitempty,oneof=LTLT HTST UHT ESL"`
		Volume             *int      `json:"volume" validate:"omitempty,gt=0"`
		ShelfLife          *int      `json:"shelf_life" validate:"omitempty,gt=0"`
		Price              *int      `json:"price" validate:"omitempty,gt=0"`
		Origin             *string   `json:"origin"`
		Ingredients        *string   `json:"ingredients"`
		OfficialWebsite    *string   `json:"official_website"`
		ImageURL           *string   `json:"image_url"`
		ImageKey           *string   `json:"image_key"`
		PhysicalChannels   *[]string `json:"physical_channels"`
		OnlineChannels     *[]string `json:"online_channels"`
		Notes              *string   `json:"notes"`
		IsOrganic          *bool     `json:"is_organic"`
		IsImported         *bool     `json:"is_imported"`
	}

	CreateBrandResponse struct {
		ID string `json:"id"`
	}

	FilterOptionsResponse struct {
		PasteurizationTypes []string `json:"pasteurization_types"`
		PhysicalChannels    []string `json:"physical_channels"`
		OnlineChannels      []string `json:"online_channels"`
	}
)
