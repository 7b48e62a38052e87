package mapsync

import (
	"testing"
	"time"
)

// fakeClock drives the coordinator deterministically: time only moves when
// a test advances it, and scheduled unlocks fire during the advance.
type fakeClock struct {
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	at        time.Time
	fn        func()
	cancelled bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 9, 12, 17, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) After(d time.Duration, fn func()) func() {
	t := &fakeTimer{at: c.now.Add(d), fn: fn}
	c.timers = append(c.timers, t)
	return func() { t.cancelled = true }
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
	for _, t := range c.timers {
		if !t.cancelled && !t.at.After(c.now) {
			t.cancelled = true
			t.fn()
		}
	}
}

type fakeList struct {
	scrolledTo    []string
	headerScrolls int
}

func (l *fakeList) ScrollToCard(id string) { l.scrolledTo = append(l.scrolledTo, id) }
func (l *fakeList) ScrollToHeader()        { l.headerScrolls++ }

type fakeView struct {
	activated []string
	cleared   int
	filters   [][]string
}

func (v *fakeView) SetActive(id string) { v.activated = append(v.activated, id) }
func (v *fakeView) ClearActive()        { v.cleared++ }
func (v *fakeView) SetFilter(categories ...string) {
	v.filters = append(v.filters, categories)
}

type fakeRegistry struct {
	markers []Marker
}

func (r *fakeRegistry) Find(idOrName string) (Marker, bool) {
	for _, m := range r.markers {
		if m.ID == idOrName || m.Name == idOrName {
			return m, true
		}
	}
	return Marker{}, false
}

func (r *fakeRegistry) First(category string) (Marker, bool) {
	for _, m := range r.markers {
		if m.Category == category {
			return m, true
		}
	}
	return Marker{}, false
}

func testRegistry() *fakeRegistry {
	return &fakeRegistry{markers: []Marker{
		{ID: "h1", Name: "Grand Fiesta Americana", Category: "hotel"},
		{ID: "h2", Name: "Hotel Abu", Category: "hotel"},
		{ID: "h3", Name: "Majagua", Category: "hotel"},
		{ID: "g1", Name: "Boulenc", Category: "gastronomy"},
		{ID: "g2", Name: "Los Danzantes", Category: "gastronomy"},
	}}
}

func newTestCoordinator(t *testing.T, layout Layout) (*Coordinator, *fakeClock, *fakeList, *fakeView) {
	t.Helper()
	clock := newFakeClock()
	list := &fakeList{}
	view := &fakeView{}
	c := NewCoordinator(CoordinatorConfig{
		Layout: layout,
		Now:    clock.Now,
		After:  clock.After,
	}, testRegistry(), list, view)
	return c, clock, list, view
}

func activeID(t *testing.T, c *Coordinator) string {
	t.Helper()
	id, _ := c.Active()
	return id
}

func TestProposalThrottle(t *testing.T) {
	c, clock, _, _ := newTestCoordinator(t, LayoutWide)

	c.Propose("h1", 0.6)
	if got := activeID(t, c); got != "h1" {
		t.Fatalf("active = %q, want h1", got)
	}

	// B arrives inside the throttle interval and must be dropped.
	clock.Advance(50 * time.Millisecond)
	c.Propose("h2", 0.9)
	if got := activeID(t, c); got != "h1" {
		t.Errorf("active = %q after throttled proposal, want h1", got)
	}

	// After the interval a qualifying proposal lands.
	clock.Advance(100 * time.Millisecond)
	c.Propose("h2", 0.9)
	if got := activeID(t, c); got != "h2" {
		t.Errorf("active = %q, want h2", got)
	}
}

func TestProposalRatioThreshold(t *testing.T) {
	c, _, _, _ := newTestCoordinator(t, LayoutWide)

	c.Propose("h1", 0.3)
	if got := activeID(t, c); got != "" {
		t.Errorf("active = %q for sub-threshold ratio, want none", got)
	}
}

func TestProposalSameIDIgnored(t *testing.T) {
	c, clock, _, view := newTestCoordinator(t, LayoutWide)

	c.Propose("h1", 0.6)
	clock.Advance(time.Second)
	c.Propose("h1", 0.8)
	if len(view.activated) != 1 {
		t.Errorf("view activated %d times, want 1", len(view.activated))
	}
}

func TestUserClickLocksOutProposals(t *testing.T) {
	c, clock, list, _ := newTestCoordinator(t, LayoutWide)

	c.UserClick("h1")
	if got := activeID(t, c); got != "h1" {
		t.Fatalf("active = %q, want h1", got)
	}
	if len(list.scrolledTo) != 1 || list.scrolledTo[0] != "h1" {
		t.Errorf("list scrolls = %v, want [h1]", list.scrolledTo)
	}

	// A proposal inside the lock window must not steal the selection.
	clock.Advance(300 * time.Millisecond)
	c.Propose("h2", 0.9)
	if got := activeID(t, c); got != "h1" {
		t.Errorf("active = %q during lock, want h1", got)
	}

	// Once the lock elapses a fresh proposal is accepted.
	clock.Advance(time.Second)
	if c.Locked() {
		t.Fatal("coordinator still locked after lock window elapsed")
	}
	c.Propose("h2", 0.9)
	if got := activeID(t, c); got != "h2" {
		t.Errorf("active = %q after unlock, want h2", got)
	}
}

func TestAcceptedProposalDoesNotScrollList(t *testing.T) {
	c, _, list, _ := newTestCoordinator(t, LayoutWide)

	c.Propose("h1", 0.6)
	if len(list.scrolledTo) != 0 {
		t.Errorf("list scrolls = %v, want none for passive promotion", list.scrolledTo)
	}
}

func TestTabChangeWideSelectsFirst(t *testing.T) {
	c, _, _, view := newTestCoordinator(t, LayoutWide)

	c.TabChange("gastronomy")
	if got := activeID(t, c); got != "g1" {
		t.Errorf("active = %q, want g1", got)
	}
	if c.Category() != "gastronomy" {
		t.Errorf("category = %q, want gastronomy", c.Category())
	}
	if !c.Locked() {
		t.Error("tab change should lock the coordinator")
	}
	if len(view.filters) == 0 {
		t.Error("tab change did not update the map filter")
	}
}

func TestTabChangeNarrowClearsSelection(t *testing.T) {
	c, _, list, _ := newTestCoordinator(t, LayoutNarrow)

	c.UserClick("h1")
	c.TabChange("gastronomy")
	if got := activeID(t, c); got != "" {
		t.Errorf("active = %q on narrow tab change, want none", got)
	}
	if list.headerScrolls != 1 {
		t.Errorf("header scrolls = %d, want 1", list.headerScrolls)
	}
}

func TestNarrowProposalsIgnored(t *testing.T) {
	c, _, _, _ := newTestCoordinator(t, LayoutNarrow)

	c.Propose("h1", 0.9)
	if got := activeID(t, c); got != "" {
		t.Errorf("active = %q, narrow layouts must not auto-select", got)
	}
}

func TestNarrowRetapClears(t *testing.T) {
	c, _, _, view := newTestCoordinator(t, LayoutNarrow)

	c.UserClick("h1")
	if got := activeID(t, c); got != "h1" {
		t.Fatalf("active = %q, want h1", got)
	}
	c.UserClick("h1")
	if got := activeID(t, c); got != "" {
		t.Errorf("active = %q after re-tap, want none", got)
	}
	if view.cleared != 1 {
		t.Errorf("view cleared %d times, want 1", view.cleared)
	}
}

func TestWideReclickKeepsActive(t *testing.T) {
	c, _, _, _ := newTestCoordinator(t, LayoutWide)

	c.UserClick("h1")
	c.UserClick("h1")
	if got := activeID(t, c); got != "h1" {
		t.Errorf("active = %q, wide re-click must not toggle off", got)
	}
}

func TestMarkerClickSwitchesTab(t *testing.T) {
	c, _, list, view := newTestCoordinator(t, LayoutWide)

	c.TabChange("hotel")
	c.MarkerClick("Los Danzantes") // name lookup, different category
	if got := activeID(t, c); got != "g2" {
		t.Errorf("active = %q, want g2", got)
	}
	if c.Category() != "gastronomy" {
		t.Errorf("category = %q, want gastronomy", c.Category())
	}
	last := view.filters[len(view.filters)-1]
	if len(last) != 1 || last[0] != "gastronomy" {
		t.Errorf("last filter = %v, want [gastronomy]", last)
	}
	if list.scrolledTo[len(list.scrolledTo)-1] != "g2" {
		t.Errorf("list did not scroll to the clicked marker's card")
	}
}

func TestMarkerClickUnknownIgnored(t *testing.T) {
	c, _, _, _ := newTestCoordinator(t, LayoutWide)

	c.MarkerClick("nope")
	if got := activeID(t, c); got != "" {
		t.Errorf("active = %q, want none", got)
	}
}

func TestRelockReplacesPendingUnlock(t *testing.T) {
	c, clock, _, _ := newTestCoordinator(t, LayoutWide)

	c.UserClick("h1")                    // 1s lock
	clock.Advance(800 * time.Millisecond)
	c.TabChange("gastronomy")            // fresh 1.5s lock replaces it
	clock.Advance(time.Second)
	if !c.Locked() {
		t.Error("coordinator unlocked by the stale click timer")
	}
	clock.Advance(time.Second)
	if c.Locked() {
		t.Error("coordinator still locked after tab lock elapsed")
	}
}

func TestCloseCancelsPendingUnlock(t *testing.T) {
	c, clock, _, view := newTestCoordinator(t, LayoutWide)

	c.UserClick("h1")
	c.Close()
	clock.Advance(5 * time.Second)

	before := len(view.activated)
	c.Propose("h2", 0.9)
	c.UserClick("h3")
	if len(view.activated) != before {
		t.Error("closed coordinator still mutates state")
	}
}

func TestInitialCategoryWideAutoSelects(t *testing.T) {
	clock := newFakeClock()
	view := &fakeView{}
	c := NewCoordinator(CoordinatorConfig{
		Layout:          LayoutWide,
		InitialCategory: "hotel",
		Now:             clock.Now,
		After:           clock.After,
	}, testRegistry(), &fakeList{}, view)

	if got := activeID(t, c); got != "h1" {
		t.Errorf("active = %q, want h1", got)
	}
}

func TestInitialCategoryNarrowStaysIdle(t *testing.T) {
	clock := newFakeClock()
	c := NewCoordinator(CoordinatorConfig{
		Layout:          LayoutNarrow,
		InitialCategory: "hotel",
		Now:             clock.Now,
		After:           clock.After,
	}, testRegistry(), &fakeList{}, &fakeView{})

	if got := activeID(t, c); got != "" {
		t.Errorf("active = %q on narrow mount, want none", got)
	}
}
