package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boatlaunch/slipway-map/internal/domain"
	"github.com/boatlaunch/slipway-map/internal/pipeline"
)

// markersResponse is the body of GET /slipways. Degraded is true when the
// store could not be loaded and Data holds the demonstration set — the UI
// shows a non-blocking banner in that case.
type markersResponse struct {
	Data     []domain.Slipway `json:"data"`
	Degraded bool             `json:"degraded"`
}

// slipwayRequest is the body of POST /slipways and PUT /slipways/{id}.
// Lat/Lng are pointers so a create can reject their absence; they are
// ignored on update, where only the detail record is overwritten.
type slipwayRequest struct {
	Lat                 *float64 `json:"lat"`
	Lng                 *float64 `json:"lng"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	RampDescription     string   `json:"ramp_description"`
	Facilities          []string `json:"facilities"`
	Charges             string   `json:"charges"`
	NearestPlace        string   `json:"nearest_place"`
	RampType            string   `json:"ramp_type"`
	Suitability         string   `json:"suitability"`
	RampLength          string   `json:"ramp_length"`
	UpperArea           string   `json:"upper_area"`
	LowerArea           string   `json:"lower_area"`
	Directions          string   `json:"directions"`
	Email               string   `json:"email"`
	MobilePhoneNumber   string   `json:"mobile_phone_number"`
	NavigationalHazards string   `json:"navigational_hazards"`
	Website             string   `json:"website"`
}

// commentRequest is the body of POST /slipways/{id}/comments.
type commentRequest struct {
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
}

// attachImageRequest is the body of POST /slipways/{id}/images.
// ImageID must come from a fully confirmed upload handshake.
type attachImageRequest struct {
	ImageID string `json:"image_id"`
}

// ListMarkers handles GET /slipways.
// The optional ?ramp_length= and ?suitability= query parameters are the two
// map filters; they combine by AND.
func (s *Server) ListMarkers(w http.ResponseWriter, r *http.Request) {
	filters := pipeline.Filters{
		RampLength:  r.URL.Query().Get("ramp_length"),
		Suitability: r.URL.Query().Get("suitability"),
	}

	set, err := s.slipways.Markers(r.Context(), filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load slipways")
		return
	}

	writeJSON(w, http.StatusOK, markersResponse{Data: set.Slipways, Degraded: set.Degraded})
}

// CreateSlipway handles POST /slipways.
func (s *Server) CreateSlipway(w http.ResponseWriter, r *http.Request) {
	var req slipwayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "request body is required")
		return
	}
	if req.Lat == nil || req.Lng == nil {
		writeError(w, http.StatusUnprocessableEntity, "lat and lng are required")
		return
	}

	id, err := s.slipways.Create(r.Context(), *req.Lat, *req.Lng, requestToDetail(req))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusUnprocessableEntity, unwrapMessage(err))
			return
		}
		writeError(w, http.StatusInternalServerError, "could not create slipway")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetSlipway handles GET /slipways/{id}.
func (s *Server) GetSlipway(w http.ResponseWriter, r *http.Request) {
	slipway, err := s.slipways.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "slipway not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not load slipway")
		return
	}

	writeJSON(w, http.StatusOK, slipway)
}

// UpdateSlipway handles PUT /slipways/{id}. The detail record is fully
// overwritten; the coordinate pair and the image/comment lists are
// untouched by this path.
func (s *Server) UpdateSlipway(w http.ResponseWriter, r *http.Request) {
	var req slipwayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "request body is required")
		return
	}

	err := s.slipways.Save(r.Context(), chi.URLParam(r, "id"), requestToDetail(req))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "slipway not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusUnprocessableEntity, unwrapMessage(err))
			return
		}
		writeError(w, http.StatusInternalServerError, "could not save slipway")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddComment handles POST /slipways/{id}/comments.
func (s *Server) AddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "request body is required")
		return
	}

	comment, err := s.slipways.AddComment(r.Context(), chi.URLParam(r, "id"), domain.Comment{
		AuthorID:   req.AuthorID,
		AuthorName: req.AuthorName,
		Text:       req.Text,
		Rating:     req.Rating,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "slipway not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusUnprocessableEntity, unwrapMessage(err))
			return
		}
		writeError(w, http.StatusInternalServerError, "could not add comment")
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// AttachImage handles POST /slipways/{id}/images.
// It is called by the upload flow only after the transfer phase has
// confirmed success, appending the new image id to the stored list.
func (s *Server) AttachImage(w http.ResponseWriter, r *http.Request) {
	var req attachImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "request body is required")
		return
	}

	err := s.slipways.AttachImage(r.Context(), chi.URLParam(r, "id"), req.ImageID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "slipway not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusUnprocessableEntity, unwrapMessage(err))
			return
		}
		writeError(w, http.StatusInternalServerError, "could not attach image")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requestToDetail converts a request body into the stored detail record.
// The facility list is flattened back to the comma-joined wire form.
func requestToDetail(req slipwayRequest) domain.Detail {
	return domain.Detail{
		Name:                req.Name,
		Description:         req.Description,
		RampDescription:     req.RampDescription,
		Facilities:          domain.JoinFacilities(req.Facilities),
		Charges:             req.Charges,
		NearestPlace:        req.NearestPlace,
		RampType:            req.RampType,
		Suitability:         req.Suitability,
		RampLength:          req.RampLength,
		UpperArea:           req.UpperArea,
		LowerArea:           req.LowerArea,
		Directions:          req.Directions,
		Email:               req.Email,
		MobilePhoneNumber:   req.MobilePhoneNumber,
		NavigationalHazards: req.NavigationalHazards,
		Website:             req.Website,
	}
}
