package mapsync

import "time"

type Layout int

const (
	// LayoutWide: map and list side by side, passive scroll tracking on.
	LayoutWide Layout = iota
	// LayoutNarrow: stacked layout, selection only by explicit tap and a
	// re-tap toggles the card closed.
	LayoutNarrow
)

// Registry resolves markers by id or display name; the id is tried first,
// the name match is case-insensitive. First returns the first marker of a
// category in registry order.
type Registry interface {
	Find(idOrName string) (Marker, bool)
	First(category string) (Marker, bool)
}

// ListPanel receives the scroll side effects of deliberate selections.
type ListPanel interface {
	ScrollToCard(id string)
	ScrollToHeader()
}

// MapView receives highlight, camera and filter side effects. *Surface
// satisfies it.
type MapView interface {
	SetActive(id string)
	ClearActive()
	SetFilter(categories ...string)
}

// CoordinatorConfig tunes the lock and throttle windows. The lock outlasts
// the smooth-scroll and pan animations a deliberate selection triggers, so
// the observer's intermediate intersection events cannot steal the
// selection mid-animation. Durations carry the original site's tuning.
type CoordinatorConfig struct {
	ClickLock       time.Duration // default 1s
	TabLock         time.Duration // default 1.5s
	Throttle        time.Duration // default 100ms, min gap between promotions
	MinRatio        float64       // default 0.4
	Layout          Layout
	InitialCategory string

	// Now and After are injectable for tests. After schedules a cancellable
	// callback and returns its cancel func.
	Now   func() time.Time
	After func(d time.Duration, fn func()) (cancel func())
}

// Coordinator owns the selection state shared by the list and the map:
// at most one active id, set either by a deliberate click or by the
// visibility heuristic, never both inside one lock window.
type Coordinator struct {
	cfg  CoordinatorConfig
	reg  Registry
	list ListPanel
	view MapView

	activeID      string
	category      string
	lockedUntil   time.Time
	lastPromotion time.Time
	cancelUnlock  func()
	closed        bool
}

func NewCoordinator(cfg CoordinatorConfig, reg Registry, list ListPanel, view MapView) *Coordinator {
	if cfg.ClickLock <= 0 {
		cfg.ClickLock = time.Second
	}
	if cfg.TabLock <= 0 {
		cfg.TabLock = 1500 * time.Millisecond
	}
	if cfg.Throttle <= 0 {
		cfg.Throttle = 100 * time.Millisecond
	}
	if cfg.MinRatio <= 0 {
		cfg.MinRatio = 0.4
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.After == nil {
		cfg.After = func(d time.Duration, fn func()) func() {
			t := time.AfterFunc(d, fn)
			return func() { t.Stop() }
		}
	}
	c := &Coordinator{cfg: cfg, reg: reg, list: list, view: view}
	if cfg.InitialCategory != "" {
		c.category = cfg.InitialCategory
		c.view.SetFilter(cfg.InitialCategory)
		if cfg.Layout == LayoutWide {
			if first, ok := reg.First(cfg.InitialCategory); ok {
				c.activeID = first.ID
				c.view.SetActive(first.ID)
			}
		}
	}
	return c
}

// Active returns the highlighted id and whether one is set.
func (c *Coordinator) Active() (string, bool) {
	return c.activeID, c.activeID != ""
}

// Category returns the selected filter tab.
func (c *Coordinator) Category() string {
	return c.category
}

// Locked reports whether visibility-driven promotion is suppressed.
func (c *Coordinator) Locked() bool {
	return c.cfg.Now().Before(c.lockedUntil)
}

// lock suppresses visibility proposals for d and schedules the matching
// unlock. Re-locking replaces any pending unlock so teardown stays
// deterministic.
func (c *Coordinator) lock(d time.Duration) {
	c.lockedUntil = c.cfg.Now().Add(d)
	if c.cancelUnlock != nil {
		c.cancelUnlock()
	}
	c.cancelUnlock = c.cfg.After(d, func() {
		c.lockedUntil = time.Time{}
		c.cancelUnlock = nil
	})
}

// UserClick handles a deliberate card tap or click. On narrow layouts
// tapping the already-active card clears the selection.
func (c *Coordinator) UserClick(id string) {
	if c.closed {
		return
	}
	c.lock(c.cfg.ClickLock)
	if c.cfg.Layout == LayoutNarrow && c.activeID == id {
		c.Clear()
		return
	}
	c.activeID = id
	c.list.ScrollToCard(id)
	c.view.SetActive(id)
}

// MarkerClick handles a map marker click. If the marker belongs to another
// category than the selected tab, the tab switches first and then the click
// proceeds as a card selection.
func (c *Coordinator) MarkerClick(idOrName string) {
	if c.closed {
		return
	}
	m, ok := c.reg.Find(idOrName)
	if !ok {
		return
	}
	if c.category != "" && m.Category != c.category {
		c.category = m.Category
		c.view.SetFilter(m.Category)
	}
	c.UserClick(m.ID)
}

// TabChange switches the category filter. Wide layouts auto-select the
// first entry of the new category so map and list stay aligned; narrow
// layouts clear the selection and return to the section header instead.
func (c *Coordinator) TabChange(category string) {
	if c.closed {
		return
	}
	c.lock(c.cfg.TabLock)
	c.category = category
	c.view.SetFilter(category)
	if c.cfg.Layout == LayoutWide {
		if first, ok := c.reg.First(category); ok {
			c.activeID = first.ID
			c.view.SetActive(first.ID)
			return
		}
	}
	c.activeID = ""
	c.view.ClearActive()
	c.list.ScrollToHeader()
}

// Propose handles a visibility proposal from the observer. It is accepted
// only when the ratio clears the threshold, the id actually changes, the
// coordinator is unlocked and the throttle interval has elapsed. An
// accepted proposal moves the map but never scrolls the list: the user is
// already scrolling and a programmatic scroll would fight them.
func (c *Coordinator) Propose(id string, ratio float64) {
	if c.closed || c.cfg.Layout == LayoutNarrow {
		return
	}
	if ratio < c.cfg.MinRatio {
		return
	}
	if id == c.activeID {
		return
	}
	now := c.cfg.Now()
	if now.Before(c.lockedUntil) {
		return
	}
	if !c.lastPromotion.IsZero() && now.Sub(c.lastPromotion) < c.cfg.Throttle {
		return
	}
	c.activeID = id
	c.lastPromotion = now
	c.view.SetActive(id)
}

// Clear transitions to Idle.
func (c *Coordinator) Clear() {
	if c.closed {
		return
	}
	c.activeID = ""
	c.view.ClearActive()
}

// SetLayout switches between wide and narrow behavior on viewport resize.
func (c *Coordinator) SetLayout(layout Layout) {
	c.cfg.Layout = layout
}

// Close cancels any pending unlock timer so a late callback cannot touch
// state after the view is gone.
func (c *Coordinator) Close() {
	if c.cancelUnlock != nil {
		c.cancelUnlock()
		c.cancelUnlock = nil
	}
	c.closed = true
}
