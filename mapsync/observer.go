package mapsync

// Entry is one intersection report for a card: how much of it currently
// overlaps the observation band of the viewport.
type Entry struct {
	ID           string
	Ratio        float64
	Intersecting bool
}

// ObserverConfig mirrors the browser observer options. Thresholds are the
// ratios at which entries are reported; BandMargin is the fraction of the
// viewport excluded at top and bottom, so only cards near the middle count.
type ObserverConfig struct {
	Thresholds []float64
	BandMargin float64
	MinRatio   float64
}

// DefaultObserverConfig reports at every 20% step inside the middle 40% of
// the viewport and proposes candidates above 40% visibility.
func DefaultObserverConfig() ObserverConfig {
	return ObserverConfig{
		Thresholds: []float64{0.2, 0.4, 0.6, 0.8},
		BandMargin: 0.30,
		MinRatio:   0.4,
	}
}

// Observer turns batches of intersection entries into at most one proposal:
// a debounced leader election by intersection ratio, not first-visible-wins.
// Rate limiting and lock gating live in the Coordinator.
type Observer struct {
	cfg     ObserverConfig
	propose func(id string, ratio float64)
	enabled bool
}

func NewObserver(cfg ObserverConfig, propose func(id string, ratio float64)) *Observer {
	if len(cfg.Thresholds) == 0 {
		cfg = DefaultObserverConfig()
	}
	return &Observer{cfg: cfg, propose: propose, enabled: true}
}

// SetEnabled turns passive tracking off, used on narrow layouts where the
// map and list are stacked and auto-highlighting reads as noise.
func (o *Observer) SetEnabled(enabled bool) {
	o.enabled = enabled
}

// Observe processes one callback batch. The intersecting entry with the
// highest ratio wins; ties keep the earlier entry. Nothing is proposed when
// the best candidate sits below MinRatio.
func (o *Observer) Observe(entries []Entry) {
	if !o.enabled || o.propose == nil {
		return
	}
	var best *Entry
	for i := range entries {
		e := &entries[i]
		if !e.Intersecting {
			continue
		}
		if best == nil || e.Ratio > best.Ratio {
			best = e
		}
	}
	if best == nil || best.Ratio < o.cfg.MinRatio {
		return
	}
	o.propose(best.ID, best.Ratio)
}
