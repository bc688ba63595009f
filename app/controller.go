// Package app owns the financial data of a session: it loads it once, applies
// every change, and saves the whole aggregate after each one.
package app

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/etnz/networth"
	"github.com/etnz/networth/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	// ErrInvalidItem is returned for an asset or liability without a name, with a non positive value or an unknown category.
	ErrInvalidItem = errors.New("invalid item")
	// ErrInvalidGoal is returned for a goal with a non positive target or no deadline.
	ErrInvalidGoal = errors.New("invalid goal")
	// ErrNotFound is returned when no item has the given id.
	ErrNotFound = errors.New("not found")
)

// AssetInput describes a new asset.
type AssetInput struct {
	Name     string
	Value    float64
	Category networth.AssetCategory
}

// LiabilityInput describes a new liability.
type LiabilityInput struct {
	Name     string
	Value    float64
	Category networth.LiabilityCategory
}

// AssetUpdate holds the fields to change on an asset. Nil fields are kept.
type AssetUpdate struct {
	Name     *string
	Value    *float64
	Category *networth.AssetCategory
}

// LiabilityUpdate holds the fields to change on a liability. Nil fields are kept.
type LiabilityUpdate struct {
	Name     *string
	Value    *float64
	Category *networth.LiabilityCategory
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the function returning the current time.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the logger receiving recovered failures.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// Controller holds the in-memory aggregate and keeps the envelope in sync.
//
// Saving is best effort: a failed write is logged and the in-memory state
// stays authoritative for the session. Nothing is written before Load.
type Controller struct {
	env    *store.Envelope
	log    zerolog.Logger
	now    func() time.Time
	data   networth.FinancialData
	loaded bool
	res    store.LoadResult
}

// New returns a Controller over env, holding the empty aggregate until Load.
func New(env *store.Envelope, opts ...Option) *Controller {
	c := &Controller{
		env:  env,
		log:  zerolog.Nop(),
		now:  time.Now,
		data: networth.NewFinancialData(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load seeds the aggregate from the envelope, or with the empty aggregate
// when nothing can be recovered, and enables saving.
func (c *Controller) Load() store.LoadResult {
	data, res := c.env.Inspect()
	if res.Present() {
		c.data = data
	} else {
		c.data = networth.NewFinancialData()
	}
	c.loaded = true
	c.res = res
	c.log.Debug().Stringer("result", res).Int("assets", len(c.data.Assets)).Int("liabilities", len(c.data.Liabilities)).Msg("data loaded")
	return res
}

// Loaded reports whether Load has been called.
func (c *Controller) Loaded() bool { return c.loaded }

// LoadResult returns how the last Load went.
func (c *Controller) LoadResult() store.LoadResult { return c.res }

// Data returns a copy of the aggregate.
func (c *Controller) Data() networth.FinancialData { return c.data.Clone() }

// Today returns the current day according to the controller clock.
func (c *Controller) Today() networth.Date { return networth.DateOf(c.now()) }

// Summary derives every figure from the current aggregate.
func (c *Controller) Summary() networth.Summary {
	return networth.NewSummary(c.data, c.Today())
}

// EncryptionEnabled reports whether the aggregate is saved encrypted.
func (c *Controller) EncryptionEnabled() bool { return c.env.EncryptionEnabled() }

// save writes the whole aggregate. Failures are logged and discarded.
func (c *Controller) save() {
	if !c.loaded {
		return
	}
	if err := c.env.Save(c.data); err != nil {
		c.log.Warn().Err(err).Msg("write discarded, changes are kept in memory only")
	}
}

// cleanItem validates and normalizes the name and value of an item.
func cleanItem(name string, value float64) (string, float64, error) {
	name = networth.CleanName(name)
	if name == "" {
		return "", 0, fmt.Errorf("%w: empty name", ErrInvalidItem)
	}
	value = networth.ClampAmount(value)
	if value <= 0 {
		return "", 0, fmt.Errorf("%w: value must be positive", ErrInvalidItem)
	}
	return name, value, nil
}

// AddAsset appends a new asset with a fresh id.
func (c *Controller) AddAsset(in AssetInput) (networth.Asset, error) {
	name, value, err := cleanItem(in.Name, in.Value)
	if err != nil {
		return networth.Asset{}, err
	}
	if !in.Category.Valid() {
		return networth.Asset{}, fmt.Errorf("%w: unknown asset category %q", ErrInvalidItem, in.Category)
	}
	a := networth.Asset{ID: uuid.NewString(), Name: name, Value: value, Category: in.Category}
	c.data.Assets = append(c.data.Assets, a)
	c.save()
	return a, nil
}

// UpdateAsset merges u into the asset with the given id.
func (c *Controller) UpdateAsset(id string, u AssetUpdate) (networth.Asset, error) {
	i := slices.IndexFunc(c.data.Assets, func(a networth.Asset) bool { return a.ID == id })
	if i < 0 {
		return networth.Asset{}, fmt.Errorf("asset %q: %w", id, ErrNotFound)
	}
	a := c.data.Assets[i]
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Value != nil {
		a.Value = *u.Value
	}
	if u.Category != nil {
		if !u.Category.Valid() {
			return networth.Asset{}, fmt.Errorf("%w: unknown asset category %q", ErrInvalidItem, *u.Category)
		}
		a.Category = *u.Category
	}
	var err error
	if a.Name, a.Value, err = cleanItem(a.Name, a.Value); err != nil {
		return networth.Asset{}, err
	}
	c.data.Assets = slices.Clone(c.data.Assets)
	c.data.Assets[i] = a
	c.save()
	return a, nil
}

// RemoveAsset removes the asset with the given id.
func (c *Controller) RemoveAsset(id string) error {
	n := len(c.data.Assets)
	c.data.Assets = slices.DeleteFunc(slices.Clone(c.data.Assets), func(a networth.Asset) bool { return a.ID == id })
	if len(c.data.Assets) == n {
		return fmt.Errorf("asset %q: %w", id, ErrNotFound)
	}
	c.save()
	return nil
}

// AddLiability appends a new liability with a fresh id.
func (c *Controller) AddLiability(in LiabilityInput) (networth.Liability, error) {
	name, value, err := cleanItem(in.Name, in.Value)
	if err != nil {
		return networth.Liability{}, err
	}
	if !in.Category.Valid() {
		return networth.Liability{}, fmt.Errorf("%w: unknown liability category %q", ErrInvalidItem, in.Category)
	}
	l := networth.Liability{ID: uuid.NewString(), Name: name, Value: value, Category: in.Category}
	c.data.Liabilities = append(c.data.Liabilities, l)
	c.save()
	return l, nil
}

// UpdateLiability merges u into the liability with the given id.
func (c *Controller) UpdateLiability(id string, u LiabilityUpdate) (networth.Liability, error) {
	i := slices.IndexFunc(c.data.Liabilities, func(l networth.Liability) bool { return l.ID == id })
	if i < 0 {
		return networth.Liability{}, fmt.Errorf("liability %q: %w", id, ErrNotFound)
	}
	l := c.data.Liabilities[i]
	if u.Name != nil {
		l.Name = *u.Name
	}
	if u.Value != nil {
		l.Value = *u.Value
	}
	if u.Category != nil {
		if !u.Category.Valid() {
			return networth.Liability{}, fmt.Errorf("%w: unknown liability category %q", ErrInvalidItem, *u.Category)
		}
		l.Category = *u.Category
	}
	var err error
	if l.Name, l.Value, err = cleanItem(l.Name, l.Value); err != nil {
		return networth.Liability{}, err
	}
	c.data.Liabilities = slices.Clone(c.data.Liabilities)
	c.data.Liabilities[i] = l
	c.save()
	return l, nil
}

// RemoveLiability removes the liability with the given id.
func (c *Controller) RemoveLiability(id string) error {
	n := len(c.data.Liabilities)
	c.data.Liabilities = slices.DeleteFunc(slices.Clone(c.data.Liabilities), func(l networth.Liability) bool { return l.ID == id })
	if len(c.data.Liabilities) == n {
		return fmt.Errorf("liability %q: %w", id, ErrNotFound)
	}
	c.save()
	return nil
}

// SaveSnapshot records today's totals in the history and returns the snapshot.
func (c *Controller) SaveSnapshot() networth.NetWorthSnapshot {
	s := networth.NewSnapshot(c.Today(), c.data.Totals())
	c.data.History = networth.SaveSnapshot(c.data.History, s)
	c.save()
	return s
}

// SetGoal replaces the goal. The creation time is set from the controller clock.
func (c *Controller) SetGoal(target float64, deadline networth.Date) (networth.Goal, error) {
	target = networth.ClampAmount(target)
	if target <= 0 {
		return networth.Goal{}, fmt.Errorf("%w: target must be positive", ErrInvalidGoal)
	}
	if deadline.IsZero() {
		return networth.Goal{}, fmt.Errorf("%w: missing deadline", ErrInvalidGoal)
	}
	g := networth.Goal{TargetNetWorth: target, Deadline: deadline, CreatedAt: c.now().UTC()}
	c.data.Goal = &g
	c.save()
	return g, nil
}

// ClearGoal removes the goal.
func (c *Controller) ClearGoal() {
	c.data.Goal = nil
	c.save()
}

// SetPassphrase changes the passphrase, or disables encryption when empty,
// then saves the aggregate again under the new regime.
//
// If the last Load found encrypted data it could not open, the data is loaded
// again with the new passphrase instead of being overwritten.
func (c *Controller) SetPassphrase(passphrase string) error {
	if err := c.env.SetPassphrase(passphrase); err != nil {
		return err
	}
	c.log.Info().Bool("encrypted", passphrase != "").Msg("encryption changed")
	if c.loaded && (c.res == store.Locked || c.res == store.Undecryptable) {
		c.Load()
		return nil
	}
	c.save()
	return nil
}

// Reset clears the stored aggregate, then drops every asset, liability,
// snapshot and the goal. The session is unchanged when the store cannot be
// cleared.
func (c *Controller) Reset() error {
	if err := c.env.Clear(); err != nil {
		return err
	}
	c.data = networth.NewFinancialData()
	c.res = store.Missing
	return nil
}
