package mapsync

// Marker is one point of interest rendered on the map.
type Marker struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Pos      LatLng `json:"pos"`
}

// Engine is the subset of the map provider the surface drives. A provider
// adapter implements it; tests use a recording fake.
type Engine interface {
	PanTo(center LatLng)
	SetZoom(zoom float64)
	SetActive(id string)
	ClearActive()
}

// SurfaceConfig is passed explicitly at construction; there is no package
// level provider state, so several surfaces can coexist on one page.
type SurfaceConfig struct {
	Center     LatLng
	Zoom       float64
	ActiveZoom float64 // zoom in to this level on activation, never out
	OffsetX    float64 // desired marker position relative to viewport center
	OffsetY    float64
	EpsilonPx  float64 // pans moving the camera less than this are skipped
}

// Surface renders registry markers and follows an externally chosen active
// id. When the engine failed to initialize (nil), every call is a no-op and
// the page degrades to an empty shell.
type Surface struct {
	cfg     SurfaceConfig
	engine  Engine
	markers []Marker
	filter  map[string]bool // nil means every category is visible
	active  string
	center  LatLng
	zoom    float64
	onClick func(Marker)
}

func NewSurface(cfg SurfaceConfig, engine Engine, markers []Marker) *Surface {
	if cfg.EpsilonPx <= 0 {
		cfg.EpsilonPx = 2
	}
	return &Surface{
		cfg:     cfg,
		engine:  engine,
		markers: markers,
		center:  cfg.Center,
		zoom:    cfg.Zoom,
	}
}

// OnMarkerClick registers the click callback. Clicking a marker never
// mutates the active id directly; the coordinator decides.
func (s *Surface) OnMarkerClick(fn func(Marker)) {
	s.onClick = fn
}

// SetFilter restricts visible markers to the given categories. An empty call
// shows everything.
func (s *Surface) SetFilter(categories ...string) {
	if len(categories) == 0 {
		s.filter = nil
		return
	}
	s.filter = make(map[string]bool, len(categories))
	for _, c := range categories {
		s.filter[c] = true
	}
}

func (s *Surface) visible(m Marker) bool {
	return s.filter == nil || s.filter[m.Category]
}

// VisibleMarkers returns the markers that pass the current category filter.
func (s *Surface) VisibleMarkers() []Marker {
	out := make([]Marker, 0, len(s.markers))
	for _, m := range s.markers {
		if s.visible(m) {
			out = append(out, m)
		}
	}
	return out
}

func (s *Surface) findMarker(id string) (Marker, bool) {
	for _, m := range s.markers {
		if m.ID == id {
			return m, true
		}
	}
	return Marker{}, false
}

// SetActive highlights the marker and re-centers the viewport so it lands at
// the configured pixel offset. Zoom only ever increases here: if the current
// level is already at or above ActiveZoom, panning keeps it.
func (s *Surface) SetActive(id string) {
	m, ok := s.findMarker(id)
	if !ok || !s.visible(m) {
		return
	}
	s.active = id
	if s.engine == nil {
		return
	}
	if s.cfg.ActiveZoom > 0 && s.zoom < s.cfg.ActiveZoom {
		s.zoom = s.cfg.ActiveZoom
		s.engine.SetZoom(s.zoom)
	}
	target := TargetCenter(m.Pos, s.cfg.OffsetX, s.cfg.OffsetY, s.zoom)
	if ScreenDistance(s.center, target, s.zoom) > s.cfg.EpsilonPx {
		s.center = target
		s.engine.PanTo(target)
	}
	s.engine.SetActive(id)
}

// ClearActive removes the highlight without moving the camera.
func (s *Surface) ClearActive() {
	s.active = ""
	if s.engine == nil {
		return
	}
	s.engine.ClearActive()
}

// Active returns the currently highlighted marker id, if any.
func (s *Surface) Active() string {
	return s.active
}

// ZoomChanged is the engine's notification that the user changed zoom. The
// offset-to-world conversion depends on zoom, so the pan target for the
// active marker is recomputed.
func (s *Surface) ZoomChanged(zoom float64) {
	s.zoom = zoom
	if s.active == "" {
		return
	}
	s.SetActive(s.active)
}

// ClickMarker is the engine's marker-click entry point.
func (s *Surface) ClickMarker(id string) {
	m, ok := s.findMarker(id)
	if !ok || s.onClick == nil {
		return
	}
	s.onClick(m)
}
