package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/barcommun/internal/membership/domain"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/pkg/cachex"
	"github.com/aussiebroadwan/barcommun/pkg/idx"
)

var season = MembershipInput{
	Name:        "Saison 2026-2027",
	Description: "Adhésion annuelle",
	Price:       1500,
	StartAt:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	EndAt:       time.Date(2027, 8, 31, 23, 59, 59, 0, time.UTC),
}

func TestMembershipServiceValidation(t *testing.T) {
	ctx := testContext()
	svc := &MembershipService{Store: newTestStore(t)}

	in := season
	in.Price = -1
	_, err := svc.CreateMembership(ctx, in)
	require.ErrorIs(t, err, ErrInvalidPrice)

	in = season
	in.EndAt = in.StartAt
	_, err = svc.CreateMembership(ctx, in)
	require.ErrorIs(t, err, ErrInvalidMembershipWindow)

	m, err := svc.CreateMembership(ctx, season)
	require.NoError(t, err)

	// Moving only the start past the existing end is caught after merging.
	late := season.EndAt.Add(time.Hour)
	_, err = svc.PatchMembership(ctx, m.ID, MembershipPatch{StartAt: &late})
	require.ErrorIs(t, err, ErrInvalidMembershipWindow)

	free := int64(0)
	got, err := svc.PatchMembership(ctx, m.ID, MembershipPatch{Price: &free})
	require.NoError(t, err)
	require.Equal(t, int64(0), got.Price)
	require.Equal(t, season.Name, got.Name)
}

func TestMembershipServiceReplaceAndDelete(t *testing.T) {
	ctx := testContext()
	svc := &MembershipService{Store: newTestStore(t)}

	id := idx.New()
	m, created, err := svc.ReplaceMembership(ctx, id, season)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, id, m.ID)

	in := season
	in.Description = ""
	m, created, err = svc.ReplaceMembership(ctx, id, in)
	require.NoError(t, err)
	require.False(t, created)
	require.Empty(t, m.Description)

	list, err := svc.ListMemberships(ctx, store.Page{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeleteMembership(ctx, id))
	require.ErrorIs(t, svc.DeleteMembership(ctx, id), ErrMembershipNotFound)

	_, err = svc.GetMembership(ctx, id)
	require.ErrorIs(t, err, ErrMembershipNotFound)

	_, _, err = svc.ReplaceMembership(ctx, id, season)
	require.ErrorIs(t, err, ErrMembershipIDTaken)
}

func TestMembershipServiceCache(t *testing.T) {
	ctx := testContext()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	svc := &MembershipService{
		Store: newTestStore(t),
		Cache: cachex.NewStore[domain.Membership](rdb, "membership", time.Minute),
	}

	m, err := svc.CreateMembership(ctx, season)
	require.NoError(t, err)
	key := "membership:" + m.ID.String()
	require.False(t, mr.Exists(key), "creation does not warm the cache")

	got, err := svc.GetMembership(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, m.Name, got.Name)
	require.True(t, mr.Exists(key))

	cached, err := svc.GetMembership(ctx, m.ID)
	require.NoError(t, err)
	require.True(t, m.StartAt.Equal(cached.StartAt))
	require.Equal(t, m.Price, cached.Price)

	name := "Saison renommée"
	_, err = svc.PatchMembership(ctx, m.ID, MembershipPatch{Name: &name})
	require.NoError(t, err)
	require.False(t, mr.Exists(key), "writes evict the plan")

	got, err = svc.GetMembership(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, name, got.Name)

	require.NoError(t, svc.DeleteMembership(ctx, m.ID))
	require.False(t, mr.Exists(key))
	_, err = svc.GetMembership(ctx, m.ID)
	require.ErrorIs(t, err, ErrMembershipNotFound)

	// A broken cache degrades to the store.
	mr.Close()
	other, err := svc.CreateMembership(ctx, season)
	require.NoError(t, err)
	got, err = svc.GetMembership(ctx, other.ID)
	require.NoError(t, err)
	require.Equal(t, other.ID, got.ID)
}

// writeAfterRead runs a write once, right after the first plan read returns.
type writeAfterRead struct {
	store.Store
	once  *sync.Once
	write func()
}

func (s writeAfterRead) Memberships() store.Memberships {
	return writeAfterReadMemberships{Memberships: s.Store.Memberships(), once: s.once, write: s.write}
}

type writeAfterReadMemberships struct {
	store.Memberships
	once  *sync.Once
	write func()
}

func (r writeAfterReadMemberships) GetMembershipByID(ctx context.Context, id idx.ID) (domain.Membership, error) {
	m, err := r.Memberships.GetMembershipByID(ctx, id)
	r.once.Do(r.write)
	return m, err
}

func TestMembershipCacheDropsPlanChangedDuringFill(t *testing.T) {
	ctx := testContext()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cache := cachex.NewStore[domain.Membership](rdb, "membership", time.Minute)
	base := newTestStore(t)
	writer := &MembershipService{Store: base, Cache: cache}

	m, err := writer.CreateMembership(ctx, season)
	require.NoError(t, err)

	name := "Saison modifiée"
	reader := &MembershipService{
		Store: writeAfterRead{Store: base, once: &sync.Once{}, write: func() {
			_, err := writer.PatchMembership(ctx, m.ID, MembershipPatch{Name: &name})
			require.NoError(t, err)
		}},
		Cache: cache,
	}

	got, err := reader.GetMembership(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, season.Name, got.Name, "the read started before the write")
	require.False(t, mr.Exists("membership:"+m.ID.String()), "the stale fill is dropped")

	got, err = reader.GetMembership(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, name, got.Name)
}
