// Package mouse maps terminal mouse events onto rendered click targets.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DoubleClickThreshold is the maximum gap between two clicks on the same
// region that still counts as a double click.
const DoubleClickThreshold = 400 * time.Millisecond

// scrollDelta is the number of lines one wheel notch scrolls.
const scrollDelta = 3

// Rect is a screen rectangle in cells. W and H are exclusive extents.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named click target.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the click targets of the last render. Later regions sit on
// top of earlier ones.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers a region.
func (h *HitMap) Add(id string, r Rect, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: r, Data: data})
}

// AddRect registers a region from coordinates.
func (h *HitMap) AddRect(id string, x, y, w, hgt int, data any) {
	h.Add(id, Rect{X: x, Y: y, W: w, H: hgt}, data)
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			r := h.regions[i]
			return &r
		}
	}
	return nil
}

// Clear removes all regions.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Regions returns a copy of the registered regions in insertion order.
func (h *HitMap) Regions() []Region {
	out := make([]Region, len(h.regions))
	copy(out, h.regions)
	return out
}

// ActionType classifies a handled mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionHover
)

// MouseAction is the result of HandleMouse.
type MouseAction struct {
	Type   ActionType
	Region *Region
	X, Y   int
	Delta  int // scroll lines, negative for up/left
}

// ClickResult is the result of HandleClick.
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

// Handler tracks a hit map plus the click history needed for double clicks.
type Handler struct {
	HitMap *HitMap

	lastClickID   string
	lastClickTime time.Time
	now           func() time.Time
}

// NewHandler creates a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap(), now: time.Now}
}

// Clear drops all regions and click history.
func (h *Handler) Clear() {
	h.HitMap.Clear()
	h.lastClickID = ""
	h.lastClickTime = time.Time{}
}

// HandleClick hit-tests a left click and detects double clicks.
func (h *Handler) HandleClick(x, y int) ClickResult {
	region := h.HitMap.Test(x, y)
	if region == nil {
		h.lastClickID = ""
		return ClickResult{}
	}

	now := h.now()
	double := region.ID == h.lastClickID && now.Sub(h.lastClickTime) <= DoubleClickThreshold
	if double {
		// A third click starts a new sequence.
		h.lastClickID = ""
		h.lastClickTime = time.Time{}
	} else {
		h.lastClickID = region.ID
		h.lastClickTime = now
	}
	return ClickResult{Region: region, IsDoubleClick: double}
}

// HandleMouse converts a Bubble Tea mouse message into an action.
func (h *Handler) HandleMouse(msg tea.MouseMsg) MouseAction {
	action := MouseAction{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			res := h.HandleClick(msg.X, msg.Y)
			if res.Region == nil {
				return action
			}
			action.Region = res.Region
			action.Type = ActionClick
			if res.IsDoubleClick {
				action.Type = ActionDoubleClick
			}
		case tea.MouseButtonWheelUp:
			action.Region = h.HitMap.Test(msg.X, msg.Y)
			action.Type, action.Delta = ActionScrollUp, -scrollDelta
			if msg.Shift {
				action.Type = ActionScrollLeft
			}
		case tea.MouseButtonWheelDown:
			action.Region = h.HitMap.Test(msg.X, msg.Y)
			action.Type, action.Delta = ActionScrollDown, scrollDelta
			if msg.Shift {
				action.Type = ActionScrollRight
			}
		case tea.MouseButtonWheelLeft:
			action.Region = h.HitMap.Test(msg.X, msg.Y)
			action.Type, action.Delta = ActionScrollRight, scrollDelta
		case tea.MouseButtonWheelRight:
			action.Region = h.HitMap.Test(msg.X, msg.Y)
			action.Type, action.Delta = ActionScrollLeft, -scrollDelta
		}

	case tea.MouseActionMotion:
		action.Type = ActionHover
		action.Region = h.HitMap.Test(msg.X, msg.Y)
	}

	return action
}
