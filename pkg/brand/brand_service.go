package brand

import (
	"context"

	"github.com/google/uuid"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
)

type (
	BrandService interface {
		List(ctx context.Context, filters domain.BrandFilters) ([]entities.MilkBrand, error)
		GetByID(ctx context.Context, id string) (*entities.MilkBrand, error)
		Create(ctx context.Context, req domain.CreateBrandRequest) (domain.CreateBrandResponse, error)
		Update(ctx context.Context, id string, req domain.UpdateBrandRequest) error
		Delete(ctx context.Context, id string) error
		FilterOptions(ctx context.Context) (domain.FilterOptionsResponse, error)
	}

	brandService struct {
		brandRepository BrandRepository
	}
)

func NewBrandService(brandRepository BrandRepository) BrandService {
	return &brandService{brandRepository: brandRepository}
}

func (s *brandService) List(ctx context.Context, filters domain.BrandFilters) ([]entities.MilkBrand, error) {
	return s.brandRepository.List(ctx, filters)
}

func (s *brandService) GetByID(ctx context.Context, id string) (*entities.MilkBrand, error) {
	brandID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.brandRepository.GetByID(ctx, brandID)
}

func (s *brandService) Create(ctx context.Context, req domain.CreateBrandRequest) (domain.CreateBrandResponse, error) {
	if !entities.IsValidPasteurizationType(req.PasteurizationType) {
		return domain.CreateBrandResponse{}, domain.ErrInvalidPasteurizationType
	}
	if req.Volume <= 0 {
		return domain.CreateBrandResponse{}, domain.ErrInvalidVolume
	}

	brand := &entities.MilkBrand{
		ID:                 uuid.New(),
		BrandName:          req.BrandName,
		ProductName:        req.ProductName,
		PasteurizationType: req.PasteurizationType,
		Volume:             req.Volume,
		ShelfLife:          req.ShelfLife,
		Price:              req.Price,
		Origin:             req.Origin,
		Ingredients:        req.Ingredients,
		OfficialWebsite:    req.OfficialWebsite,
		ImageURL:           req.ImageURL,
		ImageKey:           req.ImageKey,
		PhysicalChannels:   req.PhysicalChannels,
		OnlineChannels:     req.OnlineChannels,
		Notes:              req.Notes,
		IsOrganic:          req.IsOrganic,
		IsImported:         req.IsImported,
		IsActive:           true,
	}

	if err := s.brandRepository.Create(ctx, brand); err != nil {
		return domain.CreateBrandResponse{}, err
	}
	return domain.CreateBrandResponse{ID: brand.ID.String()}, nil
}

func (s *brandService) Update(ctx context.Context, id string, req domain.UpdateBrandRequest) error {
	brandID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}
	if _, err := s.brandRepository.GetByID(ctx, brandID); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if req.BrandName != nil {
		fields["brand_name"] = *req.BrandName
	}
	if req.ProductName != nil {
		fields["product_name"] = *req.ProductName
	}
	if req.PasteurizationType != nil {
		if !entities.IsValidPasteurizationType(*req.PasteurizationType) {
			return domain.ErrInvalidPasteurizationType
		}
		fields["pasteurization_type"] = *req.PasteurizationType
	}
	if req.Volume != nil {
		if *req.Volume <= 0 {
			return domain.ErrInvalidVolume
		}
		fields["volume"] = *req.Volume
	}
	if req.ShelfLife != nil {
		fields["shelf_life"] = *req.ShelfLife
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Origin != nil {
		fields["origin"] = *req.Origin
	}
	if req.Ingredients != nil {
		fields["ingredients"] = *req.Ingredients
	}
	if req.OfficialWebsite != nil {
		fields["official_website"] = *req.OfficialWebsite
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.ImageKey != nil {
		fields["image_key"] = *req.ImageKey
	}
	if req.PhysicalChannels != nil {
		fields["physical_channels"] = entities.StringList(*req.PhysicalChannels)
	}
	if req.OnlineChannels != nil {
		fields["online_channels"] = entities.StringList(*req.OnlineChannels)
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.IsOrganic != nil {
		fields["is_organic"] = *req.IsOrganic
	}
	if req.IsImported != nil {
		fields["is_imported"] = *req.IsImported
	}

	if len(fields) == 0 {
		return nil
	}
	return s.brandRepository.UpdateFields(ctx, brandID, fields)
}

func (s *brandService) Delete(ctx context.Context, id string) error {
	brandID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}
	if _, err := s.brandRepository.GetByID(ctx, brandID); err != nil {
		return err
	}
	return s.brandRepository.SoftDelete(ctx, brandID)
}

// FilterOptions reflects live data: the channel lists are recomputed from the
// active catalog on every call.
func (s *brandService) FilterOptions(ctx context.Context) (domain.FilterOptionsResponse, error) {
	brands, err := s.brandRepository.List(ctx, domain.BrandFilters{})
	if err != nil {
		return domain.FilterOptionsResponse{}, err
	}

	physical, online := CollectChannelOptions(brands)
	return domain.FilterOptionsResponse{
		PasteurizationTypes: entities.PasteurizationTypes,
		PhysicalChannels:    physical,
		OnlineChannels:      online,
	}, nil
}
