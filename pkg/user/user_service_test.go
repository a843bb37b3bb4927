package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
)

type fakeUserRepository struct {
	byOpenID map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byOpenID: make(map[string]*entities.User)}
}

func (f *fakeUserRepository) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	for _, u := range f.byOpenID {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepository) GetByOpenID(_ context.Context, openID string) (*entities.User, error) {
	u, ok := f.byOpenID[openID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) Upsert(_ context.Context, user *entities.User) error {
	if user.LastSignedIn.IsZero() {
		user.LastSignedIn = time.Now()
	}
	existing, ok := f.byOpenID[user.OpenID]
	if !ok {
		f.byOpenID[user.OpenID] = user
		return nil
	}
	existing.Name = user.Name
	existing.Email = user.Email
	existing.LoginMethod = user.LoginMethod
	existing.LastSignedIn = user.LastSignedIn
	return nil
}

func (f *fakeUserRepository) Count(_ context.Context) (int64, error) {
	return int64(len(f.byOpenID)), nil
}

func TestUpsertCreatesThenUpdatesByOpenID(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo)
	ctx := context.Background()

	created, err := service.Upsert(ctx, domain.UpsertUserRequest{
		OpenID:      "line-abc123",
		Name:        "小明",
		Email:       "ming@example.com",
		LoginMethod: "line",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.RoleUser, created.Role)
	assert.False(t, created.LastSignedIn.IsZero())

	// second sign-in keeps the row, refreshes the profile
	updated, err := service.Upsert(ctx, domain.UpsertUserRequest{
		OpenID:      "line-abc123",
		Name:        "王小明",
		Email:       "ming@example.com",
		LoginMethod: "line",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "王小明", updated.Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMeReturnsProfile(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo)
	ctx := context.Background()

	created, err := service.Upsert(ctx, domain.UpsertUserRequest{
		OpenID:      "google-xyz",
		Name:        "小華",
		LoginMethod: "google",
	})
	require.NoError(t, err)

	me, err := service.Me(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), me.ID)
	assert.Equal(t, "google-xyz", me.OpenID)
	assert.Equal(t, "小華", me.Name)
	assert.Equal(t, entities.RoleUser, me.Role)
}

func TestMeInvalidAndUnknownID(t *testing.T) {
	service := NewUserService(newFakeUserRepository())
	ctx := context.Background()

	_, err := service.Me(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = service.Me(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
