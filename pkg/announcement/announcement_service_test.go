package announcement

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
)

type fakeAnnouncementRepository struct {
	announcements map[uuid.UUID]*entities.Announcement
}

func newFakeAnnouncementRepository() *fakeAnnouncementRepository {
	return &fakeAnnouncementRepository{announcements: make(map[uuid.UUID]*entities.Announcement)}
}

func (f *fakeAnnouncementRepository) Create(_ context.Context, a *entities.Announcement) error {
	a.CreatedAt = time.Now()
	f.announcements[a.ID] = a
	return nil
}

func (f *fakeAnnouncementRepository) GetByID(_ context.Context, id uuid.UUID) (*entities.Announcement, error) {
	a, ok := f.announcements[id]
	if !ok {
		return nil, domain.ErrAnnouncementNotFound
	}
	return a, nil
}

func (f *fakeAnnouncementRepository) ListAll(_ context.Context) ([]entities.Announcement, error) {
	var result []entities.Announcement
	for _, a := range f.announcements {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeAnnouncementRepository) ListActive(_ context.Context, now time.Time) ([]entities.Announcement, error) {
	var result []entities.Announcement
	for _, a := range f.announcements {
		if a.VisibleAt(now) {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DisplayOrder != result[j].DisplayOrder {
			return result[i].DisplayOrder > result[j].DisplayOrder
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeAnnouncementRepository) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	a, ok := f.announcements[id]
	if !ok {
		return domain.ErrAnnouncementNotFound
	}
	if v, ok := fields["title"]; ok {
		a.Title = v.(string)
	}
	if v, ok := fields["content"]; ok {
		a.Content = v.(string)
	}
	if v, ok := fields["type"]; ok {
		a.Type = v.(string)
	}
	if v, ok := fields["is_active"]; ok {
		a.IsActive = v.(bool)
	}
	if v, ok := fields["display_order"]; ok {
		a.DisplayOrder = v.(int)
	}
	if v, ok := fields["start_date"]; ok {
		d := v.(time.Time)
		a.StartDate = &d
	}
	if v, ok := fields["end_date"]; ok {
		d := v.(time.Time)
		a.EndDate = &d
	}
	return nil
}

func (f *fakeAnnouncementRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.announcements, id)
	return nil
}

func timePtr(t time.Time) *time.Time { return &t }

func TestVisibleAtWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		announcement entities.Announcement
		visible      bool
	}{
		{
			name:         "no window always visible",
			announcement: entities.Announcement{IsActive: true},
			visible:      true,
		},
		{
			name: "inactive never visible",
			announcement: entities.Announcement{
				IsActive:  false,
				StartDate: timePtr(now.Add(-time.Hour)),
				EndDate:   timePtr(now.Add(time.Hour)),
			},
			visible: false,
		},
		{
			name: "future start hidden",
			announcement: entities.Announcement{
				IsActive:  true,
				StartDate: timePtr(now.Add(time.Hour)),
			},
			visible: false,
		},
		{
			name: "past end hidden",
			announcement: entities.Announcement{
				IsActive: true,
				EndDate:  timePtr(now.Add(-time.Hour)),
			},
			visible: false,
		},
		{
			name: "inside window visible",
			announcement: entities.Announcement{
				IsActive:  true,
				StartDate: timePtr(now.Add(-time.Hour)),
				EndDate:   timePtr(now.Add(time.Hour)),
			},
			visible: true,
		},
		{
			name: "open ended start",
			announcement: entities.Announcement{
				IsActive: true,
				EndDate:  timePtr(now.Add(time.Hour)),
			},
			visible: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.visible, tc.announcement.VisibleAt(now))
		})
	}
}

func TestCreateAnnouncementDefaults(t *testing.T) {
	repo := newFakeAnnouncementRepository()
	service := NewAnnouncementService(repo)
	admin := uuid.New()

	res, err := service.Create(context.Background(), domain.CreateAnnouncementRequest{
		Title:   "網站改版公告",
		Content: "新版篩選功能上線",
	}, admin.String())
	require.NoError(t, err)

	id, err := uuid.Parse(res.ID)
	require.NoError(t, err)

	stored := repo.announcements[id]
	require.NotNil(t, stored)
	assert.Equal(t, entities.AnnouncementTypeInfo, stored.Type)
	assert.True(t, stored.IsActive)
	assert.Equal(t, 0, stored.DisplayOrder)
	require.NotNil(t, stored.CreatedBy)
	assert.Equal(t, admin, *stored.CreatedBy)
}

func TestCreateAnnouncementInvalidCreator(t *testing.T) {
	service := NewAnnouncementService(newFakeAnnouncementRepository())

	_, err := service.Create(context.Background(), domain.CreateAnnouncementRequest{
		Title:   "公告",
		Content: "內容",
	}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetActiveFiltersByWindowAndOrders(t *testing.T) {
	repo := newFakeAnnouncementRepository()
	service := NewAnnouncementService(repo)
	ctx := context.Background()
	now := time.Now()

	expired := uuid.New()
	repo.announcements[expired] = &entities.Announcement{
		ID:       expired,
		Title:    "過期公告",
		IsActive: true,
		EndDate:  timePtr(now.Add(-time.Hour)),
	}
	low := uuid.New()
	repo.announcements[low] = &entities.Announcement{
		ID:           low,
		Title:        "一般公告",
		IsActive:     true,
		DisplayOrder: 1,
	}
	high := uuid.New()
	repo.announcements[high] = &entities.Announcement{
		ID:           high,
		Title:        "置頂公告",
		IsActive:     true,
		DisplayOrder: 10,
	}

	active, err := service.GetActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "置頂公告", active[0].Title)
	assert.Equal(t, "一般公告", active[1].Title)
}

func TestUpdateAnnouncement(t *testing.T) {
	repo := newFakeAnnouncementRepository()
	service := NewAnnouncementService(repo)
	ctx := context.Background()

	res, err := service.Create(ctx, domain.CreateAnnouncementRequest{
		Title:   "公告",
		Content: "內容",
	}, uuid.NewString())
	require.NoError(t, err)

	newTitle := "重要公告"
	newType := entities.AnnouncementTypeImportant
	inactive := false
	err = service.Update(ctx, res.ID, domain.UpdateAnnouncementRequest{
		Title:    &newTitle,
		Type:     &newType,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	id, _ := uuid.Parse(res.ID)
	stored := repo.announcements[id]
	assert.Equal(t, "重要公告", stored.Title)
	assert.Equal(t, entities.AnnouncementTypeImportant, stored.Type)
	assert.False(t, stored.IsActive)
	assert.Equal(t, "內容", stored.Content)
}

func TestUpdateUnknownAnnouncement(t *testing.T) {
	service := NewAnnouncementService(newFakeAnnouncementRepository())

	title := "公告"
	err := service.Update(context.Background(), uuid.NewString(), domain.UpdateAnnouncementRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrAnnouncementNotFound)
}

func TestDeleteAnnouncementRemovesRow(t *testing.T) {
	repo := newFakeAnnouncementRepository()
	service := NewAnnouncementService(repo)
	ctx := context.Background()

	res, err := service.Create(ctx, domain.CreateAnnouncementRequest{
		Title:   "公告",
		Content: "內容",
	}, uuid.NewString())
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, res.ID))

	all, err := service.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = service.Delete(ctx, res.ID)
	assert.ErrorIs(t, err, domain.ErrAnnouncementNotFound)
}
