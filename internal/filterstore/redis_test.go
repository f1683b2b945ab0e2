package filterstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dashboardmodels "io.winapps.foodshare/internal/models/dashboard"
	"io.winapps.foodshare/internal/postfilter"
)

func setupRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_LoadMissingReturnsDefaults(t *testing.T) {
	store, _ := setupRedisStore(t, 0)

	spec, found, err := store.Load(context.Background(), dashboardmodels.RoleDonor)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, postfilter.DefaultSpec(), spec)
}

func TestRedisStore_SaveLoadDropsPage(t *testing.T) {
	store, mr := setupRedisStore(t, 0)
	ctx := context.Background()

	saved := postfilter.FilterSpec{
		Search:    "bread",
		Category:  "bakery",
		Urgency:   "high",
		Status:    "active",
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
		View:      postfilter.ViewList,
		Sort:      postfilter.SortNewest,
		Page:      3,
	}
	require.NoError(t, store.Save(ctx, dashboardmodels.RoleRecipient, saved))

	raw, err := mr.Get("dashboard_filters:recipient")
	require.NoError(t, err)
	assert.NotContains(t, raw, "page")

	spec, found, err := store.Load(ctx, dashboardmodels.RoleRecipient)
	require.NoError(t, err)
	assert.True(t, found)

	want := saved
	want.Page = 0
	want.DateRange = postfilter.DateRangeAll
	assert.Equal(t, want, spec)

	_, found, err = store.Load(ctx, dashboardmodels.RoleDonor)
	require.NoError(t, err)
	assert.False(t, found, "roles must not share filters")
}

func TestRedisStore_PartialSnapshotHydratesOverDefaults(t *testing.T) {
	store, mr := setupRedisStore(t, 0)
	require.NoError(t, mr.Set("dashboard_filters:recipient", `{"search":"rice","category":"nonsense"}`))

	spec, found, err := store.Load(context.Background(), dashboardmodels.RoleRecipient)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "rice", spec.Search)
	assert.Equal(t, postfilter.All, spec.Category)
	assert.Equal(t, postfilter.All, spec.Urgency)
	assert.Equal(t, postfilter.ViewGrid, spec.View)
}

func TestRedisStore_CorruptSnapshot(t *testing.T) {
	store, mr := setupRedisStore(t, 0)
	require.NoError(t, mr.Set("dashboard_filters:donor", `{not json`))

	spec, found, err := store.Load(context.Background(), dashboardmodels.RoleDonor)

	assert.Error(t, err)
	assert.False(t, found)
	assert.Equal(t, postfilter.DefaultSpec(), spec)
}

func TestRedisStore_TTLAndClear(t *testing.T) {
	store, mr := setupRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, dashboardmodels.RoleDonor, postfilter.DefaultSpec()))
	assert.Equal(t, time.Hour, mr.TTL("dashboard_filters:donor"))

	require.NoError(t, store.Clear(ctx, dashboardmodels.RoleDonor))
	assert.False(t, mr.Exists("dashboard_filters:donor"))
}

func TestRedisStore_UnavailableServer(t *testing.T) {
	store, mr := setupRedisStore(t, 0)
	mr.Close()

	_, _, err := store.Load(context.Background(), dashboardmodels.RoleDonor)
	assert.Error(t, err)
	assert.Error(t, store.Save(context.Background(), dashboardmodels.RoleDonor, postfilter.DefaultSpec()))
}
