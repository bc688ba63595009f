package app

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/etnz/networth"
	"github.com/etnz/networth/logger"
	"github.com/etnz/networth/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 10, 19, 9, 0, 0, 0, time.UTC)

func newController(t *testing.T, s store.Store, opts ...Option) *Controller {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	c := New(store.NewEnvelope(s, logger.Nop()), opts...)
	c.Load()
	return c
}

func ptr[T any](v T) *T { return &v }

func TestController_LoadDefaults(t *testing.T) {
	c := New(store.NewEnvelope(store.NewMemoryStore(), logger.Nop()))
	assert.False(t, c.Loaded())

	res := c.Load()

	assert.Equal(t, store.Missing, res)
	assert.True(t, c.Loaded())
	assert.Equal(t, networth.NewFinancialData(), c.Data())
}

func TestController_NothingSavedBeforeLoad(t *testing.T) {
	s := store.NewMemoryStore()
	c := New(store.NewEnvelope(s, logger.Nop()))

	_, err := c.AddAsset(AssetInput{Name: "Savings", Value: 10, Category: networth.Cash})
	require.NoError(t, err)

	_, ok, _ := s.Get(store.DataKey)
	assert.False(t, ok)
}

func TestController_AddAsset(t *testing.T) {
	s := store.NewMemoryStore()
	c := newController(t, s)

	a, err := c.AddAsset(AssetInput{Name: "  Savings  ", Value: 5000, Category: networth.Cash})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "Savings", a.Name)

	b, err := c.AddAsset(AssetInput{Name: "House", Value: 2e9, Category: networth.Property})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, float64(networth.MaxAmount), b.Value)

	// saved as a whole
	again := newController(t, s)
	assert.Equal(t, c.Data(), again.Data())
}

func TestController_InvalidItems(t *testing.T) {
	c := newController(t, store.NewMemoryStore())

	tests := map[string]AssetInput{
		"empty name":       {Name: "  ", Value: 10, Category: networth.Cash},
		"zero value":       {Name: "Savings", Value: 0, Category: networth.Cash},
		"negative value":   {Name: "Savings", Value: -5, Category: networth.Cash},
		"unknown category": {Name: "Gold", Value: 5, Category: "metals"},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := c.AddAsset(in)
			assert.ErrorIs(t, err, ErrInvalidItem)
		})
	}
	_, err := c.AddLiability(LiabilityInput{Name: "Loan", Value: 10, Category: "payday"})
	assert.ErrorIs(t, err, ErrInvalidItem)
	assert.Empty(t, c.Data().Assets)
	assert.Empty(t, c.Data().Liabilities)
}

func TestController_UpdateAndRemove(t *testing.T) {
	c := newController(t, store.NewMemoryStore())
	a, err := c.AddAsset(AssetInput{Name: "Brokerage", Value: 100, Category: networth.Investments})
	require.NoError(t, err)
	l, err := c.AddLiability(LiabilityInput{Name: "Visa", Value: 50, Category: networth.CreditCards})
	require.NoError(t, err)

	got, err := c.UpdateAsset(a.ID, AssetUpdate{Value: ptr(250.0)})
	require.NoError(t, err)
	assert.Equal(t, networth.Asset{ID: a.ID, Name: "Brokerage", Value: 250, Category: networth.Investments}, got)

	gotL, err := c.UpdateLiability(l.ID, LiabilityUpdate{Name: ptr("Amex"), Category: ptr(networth.OtherLiability)})
	require.NoError(t, err)
	assert.Equal(t, "Amex", gotL.Name)
	assert.Equal(t, 50.0, gotL.Value)

	_, err = c.UpdateAsset(a.ID, AssetUpdate{Name: ptr("")})
	assert.ErrorIs(t, err, ErrInvalidItem)
	assert.Equal(t, "Brokerage", c.Data().Assets[0].Name, "a rejected update changes nothing")

	_, err = c.UpdateAsset("nope", AssetUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.UpdateLiability("nope", LiabilityUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, c.RemoveAsset(a.ID))
	assert.ErrorIs(t, c.RemoveAsset(a.ID), ErrNotFound)
	require.NoError(t, c.RemoveLiability(l.ID))
	assert.ErrorIs(t, c.RemoveLiability(l.ID), ErrNotFound)
	assert.True(t, c.Data().IsEmpty())
}

func TestController_DataIsACopy(t *testing.T) {
	c := newController(t, store.NewMemoryStore())
	_, err := c.AddAsset(AssetInput{Name: "Savings", Value: 10, Category: networth.Cash})
	require.NoError(t, err)

	d := c.Data()
	d.Assets[0].Value = 999

	assert.Equal(t, 10.0, c.Data().Assets[0].Value)
}

func TestController_SaveSnapshot(t *testing.T) {
	now := fixedNow
	c := newController(t, store.NewMemoryStore(), WithClock(func() time.Time { return now }))
	_, err := c.AddAsset(AssetInput{Name: "Savings", Value: 5000, Category: networth.Cash})
	require.NoError(t, err)

	c.SaveSnapshot()
	_, err = c.AddLiability(LiabilityInput{Name: "Visa", Value: 6000, Category: networth.CreditCards})
	require.NoError(t, err)
	s := c.SaveSnapshot()

	assert.Equal(t, networth.NetWorthSnapshot{Date: networth.NewDate(2025, 10, 19), Assets: 5000, Liabilities: 6000, NetWorth: -1000}, s)
	require.Len(t, c.Data().History, 1, "same day replaces")

	now = now.AddDate(0, 0, 1)
	c.SaveSnapshot()
	assert.Len(t, c.Data().History, 2)
}

func TestController_Goal(t *testing.T) {
	c := newController(t, store.NewMemoryStore())
	_, err := c.AddAsset(AssetInput{Name: "Brokerage", Value: 40000, Category: networth.Investments})
	require.NoError(t, err)

	_, err = c.SetGoal(0, networth.NewDate(2026, 10, 19))
	assert.ErrorIs(t, err, ErrInvalidGoal)
	_, err = c.SetGoal(1000, networth.Date{})
	assert.ErrorIs(t, err, ErrInvalidGoal)

	g, err := c.SetGoal(100000, networth.NewDate(2026, 10, 19))
	require.NoError(t, err)
	assert.Equal(t, fixedNow, g.CreatedAt)

	sum := c.Summary()
	require.NotNil(t, sum.Goal)
	assert.Equal(t, "40.0%", sum.Goal.Progress.String())
	assert.Equal(t, 5000.0, sum.Goal.MonthlyTarget)

	c.ClearGoal()
	assert.Nil(t, c.Data().Goal)
	assert.Nil(t, c.Summary().Goal)
}

func TestController_SetPassphraseResaves(t *testing.T) {
	s := store.NewMemoryStore()
	c := newController(t, s)
	_, err := c.AddAsset(AssetInput{Name: "Savings", Value: 10, Category: networth.Cash})
	require.NoError(t, err)

	require.NoError(t, c.SetPassphrase("secret"))
	assert.True(t, c.EncryptionEnabled())
	raw, _, _ := s.Get(store.DataKey)
	assert.NotContains(t, raw, "Savings")

	again := newController(t, s)
	assert.Equal(t, c.Data(), again.Data())

	require.NoError(t, c.SetPassphrase(""))
	raw, _, _ = s.Get(store.DataKey)
	assert.Contains(t, raw, "Savings")
}

func TestController_Reset(t *testing.T) {
	s := store.NewMemoryStore()
	c := newController(t, s)
	_, err := c.AddAsset(AssetInput{Name: "Savings", Value: 10, Category: networth.Cash})
	require.NoError(t, err)

	require.NoError(t, c.Reset())

	assert.Equal(t, networth.NewFinancialData(), c.Data())
	_, ok, _ := s.Get(store.DataKey)
	assert.False(t, ok)
}

// stickyStore never lets data be removed.
type stickyStore struct{ *store.MemoryStore }

func (stickyStore) Remove(string) error { return errors.New("permission denied") }

func TestController_ResetFailureKeepsSession(t *testing.T) {
	mem := store.NewMemoryStore()
	_, err := newController(t, mem).AddAsset(AssetInput{Name: "Savings", Value: 10, Category: networth.Cash})
	require.NoError(t, err)
	s := stickyStore{mem}
	c := newController(t, s)
	want := c.Data()
	require.Len(t, want.Assets, 1)

	assert.ErrorContains(t, c.Reset(), "permission denied")

	assert.Equal(t, want, c.Data())
	assert.Equal(t, store.Plain, c.LoadResult())
	_, ok, _ := s.Get(store.DataKey)
	assert.True(t, ok)
}

// readOnlyStore reads from a MemoryStore and fails every write.
type readOnlyStore struct{ *store.MemoryStore }

func (readOnlyStore) Set(string, string) error { return errors.New("quota exceeded") }

func TestController_WriteFailuresAreDiscarded(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newController(t, readOnlyStore{store.NewMemoryStore()}, WithLogger(logger.NewWithWriter(buf)))

	a, err := c.AddAsset(AssetInput{Name: "Savings", Value: 10, Category: networth.Cash})

	require.NoError(t, err)
	assert.Equal(t, []networth.Asset{a}, c.Data().Assets)
	assert.Contains(t, buf.String(), "write discarded")
	assert.Contains(t, buf.String(), "quota exceeded")
}

func TestController_SetPassphraseUnlocks(t *testing.T) {
	s := store.NewMemoryStore()
	c := newController(t, s)
	require.NoError(t, c.SetPassphrase("secret"))
	_, err := c.AddAsset(AssetInput{Name: "Savings", Value: 10, Category: networth.Cash})
	require.NoError(t, err)
	want := c.Data()

	// a session that lost the passphrase sees nothing
	require.NoError(t, store.NewEnvelope(s, logger.Nop()).SetPassphrase(""))
	locked := newController(t, s)
	assert.Equal(t, store.Locked, locked.LoadResult())
	assert.True(t, locked.Data().IsEmpty())

	require.NoError(t, locked.SetPassphrase("wrong"))
	assert.Equal(t, store.Undecryptable, locked.LoadResult())

	require.NoError(t, locked.SetPassphrase("secret"))
	assert.Equal(t, store.Decrypted, locked.LoadResult())
	assert.Equal(t, want, locked.Data())
}
