package brand

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/database"
)

type (
	BrandRepository interface {
		List(ctx context.Context, filters domain.BrandFilters) ([]entities.MilkBrand, error)
		GetByID(ctx context.Context, id uuid.UUID) (*entities.MilkBrand, error)
		Create(ctx context.Context, brand *entities.MilkBrand) error
		UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
		SoftDelete(ctx context.Context, id uuid.UUID) error
		CountActive(ctx context.Context) (int64, error)
	}

	brandRepository struct {
		db *gorm.DB
	}
)

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

// conn joins the transaction carried by ctx when there is one.
func (r *brandRepository) conn(ctx context.Context) *gorm.DB {
	return database.Resolve(ctx, r.db).WithContext(ctx)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so a search term matches
// literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// List runs the storage-level predicates and applies the channel ANY-match
// in process, since channels live in jsonb columns.
func (r *brandRepository) List(ctx context.Context, filters domain.BrandFilters) ([]entities.MilkBrand, error) {
	var brands []entities.MilkBrand

	query := r.conn(ctx).Where("is_active = ?", true)

	if filters.Search != "" {
		pattern := "%" + escapeLike(filters.Search) + "%"
		query = query.Where("brand_name ILIKE ? OR product_name ILIKE ?", pattern, pattern)
	}
	if len(filters.PasteurizationType) > 0 {
		query = query.Where("pasteurization_type IN ?", filters.PasteurizationType)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.IsOrganic != nil {
		query = query.Where("is_organic = ?", *filters.IsOrganic)
	}
	if filters.IsImported != nil {
		query = query.Where("is_imported = ?", *filters.IsImported)
	}

	if err := query.Order("brand_name asc, product_name asc").Find(&brands).Error; err != nil {
		return nil, err
	}

	return FilterByChannels(brands, filters.PhysicalChannels, filters.OnlineChannels), nil
}

func (r *brandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MilkBrand, error) {
	var brand entities.MilkBrand
	if err := r.conn(ctx).Where("id = ?", id).First(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) Create(ctx context.Context, brand *entities.MilkBrand) error {
	return r.conn(ctx).Create(brand).Error
}

func (r *brandRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.conn(ctx).Model(&entities.MilkBrand{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// SoftDelete flips is_active; brand rows are never removed.
func (r *brandRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.conn(ctx).Model(&entities.MilkBrand{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false}).Error
}

func (r *brandRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&entities.MilkBrand{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}
