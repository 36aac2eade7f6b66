package pipeline

// CenterRequest asks the render layer to center the map on a position.
// Token changes on every request, even for an identical position, so the
// render layer can tell a fresh request from stale state.
type CenterRequest struct {
	Lat   float64
	Lng   float64
	Token uint64
}

// Draft is the seed for a new entity created by clicking the map in add mode.
type Draft struct {
	Lat float64
	Lng float64
}

// ViewState is the transient, non-persisted state of the map view: the
// selected entity (at most one), a pending center-on request (consumed
// exactly once), and the add-mode toggle.
//
// Like the event-driven client it models, ViewState is single-threaded:
// it must only be touched from the UI event loop and has no locking.
type ViewState struct {
	selected  string
	center    *CenterRequest
	lastToken uint64
	addMode   bool
}

// Select opens the detail overlay for the given entity, replacing any prior
// selection — selections never stack.
func (v *ViewState) Select(id string) {
	v.selected = id
}

// Selected returns the currently selected entity id, if any.
func (v *ViewState) Selected() (string, bool) {
	return v.selected, v.selected != ""
}

// ClearSelection closes the detail overlay.
func (v *ViewState) ClearSelection() {
	v.selected = ""
}

// SetAddMode toggles add mode. Activating it closes any open selection:
// the two are mutually exclusive at the UI level (this is a view rule, not
// a data invariant).
func (v *ViewState) SetAddMode(on bool) {
	if on {
		v.selected = ""
	}
	v.addMode = on
}

// AddMode reports whether a map click will create a new entity draft.
func (v *ViewState) AddMode() bool {
	return v.addMode
}

// MapClick handles a click on the map background. It returns a Draft only
// while add mode is active; otherwise the click is a no-op.
func (v *ViewState) MapClick(lat, lng float64) (Draft, bool) {
	if !v.addMode {
		return Draft{}, false
	}
	return Draft{Lat: lat, Lng: lng}, true
}

// RequestCenter records a request to center the map on a position. The
// embedded token is bumped on every call so two requests for the same
// position are still observably distinct to the render layer.
func (v *ViewState) RequestCenter(lat, lng float64) {
	v.lastToken++
	v.center = &CenterRequest{Lat: lat, Lng: lng, Token: v.lastToken}
}

// ConsumeCenter hands the pending center request to the render layer and
// clears it, so each request triggers exactly one re-center.
func (v *ViewState) ConsumeCenter() (CenterRequest, bool) {
	if v.center == nil {
		return CenterRequest{}, false
	}
	req := *v.center
	v.center = nil
	return req, true
}
