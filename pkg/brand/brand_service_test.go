package brand

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
)

// fakeBrandRepository keeps brands in memory and mirrors the repository's
// filter contract closely enough for service tests.
type fakeBrandRepository struct {
	brands map[uuid.UUID]*entities.MilkBrand
}

func newFakeBrandRepository() *fakeBrandRepository {
	return &fakeBrandRepository{brands: make(map[uuid.UUID]*entities.MilkBrand)}
}

func (f *fakeBrandRepository) List(_ context.Context, filters domain.BrandFilters) ([]entities.MilkBrand, error) {
	var result []entities.MilkBrand
	for _, b := range f.brands {
		if !b.IsActive {
			continue
		}
		if filters.Search != "" &&
			!strings.Contains(b.BrandName, filters.Search) &&
			!strings.Contains(b.ProductName, filters.Search) {
			continue
		}
		if len(filters.PasteurizationType) > 0 {
			found := false
			for _, t := range filters.PasteurizationType {
				if b.PasteurizationType == t {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if filters.MinPrice != nil && (b.Price == nil || *b.Price < *filters.MinPrice) {
			continue
		}
		if filters.MaxPrice != nil && (b.Price == nil || *b.Price > *filters.MaxPrice) {
			continue
		}
		if filters.IsOrganic != nil && b.IsOrganic != *filters.IsOrganic {
			continue
		}
		if filters.IsImported != nil && b.IsImported != *filters.IsImported {
			continue
		}
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].BrandName != result[j].BrandName {
			return result[i].BrandName < result[j].BrandName
		}
		return result[i].ProductName < result[j].ProductName
	})
	return FilterByChannels(result, filters.PhysicalChannels, filters.OnlineChannels), nil
}

func (f *fakeBrandRepository) GetByID(_ context.Context, id uuid.UUID) (*entities.MilkBrand, error) {
	b, ok := f.brands[id]
	if !ok {
		return nil, domain.ErrBrandNotFound
	}
	return b, nil
}

func (f *fakeBrandRepository) Create(_ context.Context, brand *entities.MilkBrand) error {
	f.brands[brand.ID] = brand
	return nil
}

func (f *fakeBrandRepository) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	b, ok := f.brands[id]
	if !ok {
		return domain.ErrBrandNotFound
	}
	if v, ok := fields["brand_name"]; ok {
		b.BrandName = v.(string)
	}
	if v, ok := fields["product_name"]; ok {
		b.ProductName = v.(string)
	}
	if v, ok := fields["price"]; ok {
		p := v.(int)
		b.Price = &p
	}
	if v, ok := fields["image_url"]; ok {
		b.ImageURL = v.(string)
	}
	if v, ok := fields["image_key"]; ok {
		b.ImageKey = v.(string)
	}
	if v, ok := fields["is_active"]; ok {
		b.IsActive = v.(bool)
	}
	return nil
}

func (f *fakeBrandRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return f.UpdateFields(ctx, id, map[string]interface{}{"is_active": false})
}

func (f *fakeBrandRepository) CountActive(_ context.Context) (int64, error) {
	var count int64
	for _, b := range f.brands {
		if b.IsActive {
			count++
		}
	}
	return count, nil
}

func intPtr(v int) *int { return &v }

func TestBrandServiceListScenario(t *testing.T) {
	repo := newFakeBrandRepository()
	service := NewBrandService(repo)
	ctx := context.Background()

	res, err := service.Create(ctx, domain.CreateBrandRequest{
		BrandName:          "鮮乳坊",
		ProductName:        "鮮乳坊鮮乳",
		PasteurizationType: "HTST",
		Volume:             936,
		Price:              intPtr(89),
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)

	// matching filter must include it
	brands, err := service.List(ctx, domain.BrandFilters{
		PasteurizationType: []string{"HTST"},
		MaxPrice:           intPtr(90),
	})
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, "鮮乳坊", brands[0].BrandName)

	// a different pasteurization type must exclude it
	brands, err = service.List(ctx, domain.BrandFilters{
		PasteurizationType: []string{"UHT"},
	})
	require.NoError(t, err)
	assert.Empty(t, brands)
}

func TestBrandServiceListExcludesNullPriceUnderBounds(t *testing.T) {
	repo := newFakeBrandRepository()
	service := NewBrandService(repo)
	ctx := context.Background()

	_, err := service.Create(ctx, domain.CreateBrandRequest{
		BrandName:          "無價",
		ProductName:        "無價鮮乳",
		PasteurizationType: "UHT",
		Volume:             1000,
	})
	require.NoError(t, err)

	brands, err := service.List(ctx, domain.BrandFilters{MinPrice: intPtr(1)})
	require.NoError(t, err)
	assert.Empty(t, brands)

	brands, err = service.List(ctx, domain.BrandFilters{MaxPrice: intPtr(1000)})
	require.NoError(t, err)
	assert.Empty(t, brands)

	// without bounds the entry is listed
	brands, err = service.List(ctx, domain.BrandFilters{})
	require.NoError(t, err)
	assert.Len(t, brands, 1)
}

func TestBrandServiceCreateRejectsInvalidInput(t *testing.T) {
	service := NewBrandService(newFakeBrandRepository())
	ctx := context.Background()

	_, err := service.Create(ctx, domain.CreateBrandRequest{
		BrandName:          "x",
		ProductName:        "y",
		PasteurizationType: "RAW",
		Volume:             500,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPasteurizationType)

	_, err = service.Create(ctx, domain.CreateBrandRequest{
		BrandName:          "x",
		ProductName:        "y",
		PasteurizationType: "UHT",
		Volume:             0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidVolume)
}

func TestBrandServiceDeleteIsSoft(t *testing.T) {
	repo := newFakeBrandRepository()
	service := NewBrandService(repo)
	ctx := context.Background()

	res, err := service.Create(ctx, domain.CreateBrandRequest{
		BrandName:          "鮮乳坊",
		ProductName:        "鮮乳坊鮮乳",
		PasteurizationType: "HTST",
		Volume:             936,
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, res.ID))

	// gone from listings, still present in storage
	brands, err := service.List(ctx, domain.BrandFilters{})
	require.NoError(t, err)
	assert.Empty(t, brands)

	stored, err := service.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestBrandServiceGetByIDErrors(t *testing.T) {
	service := NewBrandService(newFakeBrandRepository())
	ctx := context.Background()

	_, err := service.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = service.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrBrandNotFound)
}

func TestBrandServiceFilterOptions(t *testing.T) {
	repo := newFakeBrandRepository()
	service := NewBrandService(repo)
	ctx := context.Background()

	_, err := service.Create(ctx, domain.CreateBrandRequest{
		BrandName:          "a",
		ProductName:        "a 鮮乳",
		PasteurizationType: "LTLT",
		Volume:             500,
		PhysicalChannels:   []string{"家樂福", "全聯"},
		OnlineChannels:     []string{"momo購物網"},
	})
	require.NoError(t, err)
	resB, err := service.Create(ctx, domain.CreateBrandRequest{
		BrandName:          "b",
		ProductName:        "b 鮮乳",
		PasteurizationType: "UHT",
		Volume:             1000,
		PhysicalChannels:   []string{"全聯"},
		OnlineChannels:     []string{"PChome"},
	})
	require.NoError(t, err)

	options, err := service.FilterOptions(ctx)
	require.NoError(t, err)

	assert.Equal(t, entities.PasteurizationTypes, options.PasteurizationTypes)
	assert.Equal(t, []string{"全聯", "家樂福"}, options.PhysicalChannels)
	assert.Equal(t, []string{"PChome", "momo購物網"}, options.OnlineChannels)

	// options track live data: soft-deleting b removes its channels
	require.NoError(t, service.Delete(ctx, resB.ID))
	options, err = service.FilterOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"全聯", "家樂福"}, options.PhysicalChannels)
	assert.Equal(t, []string{"momo購物網"}, options.OnlineChannels)
}
