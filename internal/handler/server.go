// Package handler implements the HTTP handlers for the Slipway Map API.
// All handlers are methods on Server. Methods are split into files by
// concern (slipway.go, sign.go, health.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boatlaunch/slipway-map/internal/domain"
	"github.com/boatlaunch/slipway-map/internal/pipeline"
	"github.com/boatlaunch/slipway-map/internal/service"
)

// SlipwayServicer defines the business operations the slipway handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type SlipwayServicer interface {
	Create(ctx context.Context, lat, lng float64, d domain.Detail) (string, error)
	Get(ctx context.Context, id string) (domain.Slipway, error)
	Save(ctx context.Context, id string, d domain.Detail) error
	AttachImage(ctx context.Context, id, imageID string) error
	AddComment(ctx context.Context, id string, c domain.Comment) (domain.Comment, error)
	Markers(ctx context.Context, filters pipeline.Filters) (service.MarkerSet, error)
}

// URLSigner defines the pre-signing operation the /sign_s3 handler depends
// on. signer.Presigner satisfies it.
type URLSigner interface {
	Sign(ctx context.Context, key, contentType string) (signedURL, publicURL string, err error)
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	slipways SlipwayServicer
	signer   URLSigner
}

// NewServer constructs the Server with all its dependencies.
func NewServer(slipways SlipwayServicer, signer URLSigner) *Server {
	return &Server{slipways: slipways, signer: signer}
}

// Routes returns the chi router for the full API surface.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/sign_s3", s.SignUpload)

	r.Route("/slipways", func(r chi.Router) {
		r.Get("/", s.ListMarkers)
		r.Post("/", s.CreateSlipway)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetSlipway)
			r.Put("/", s.UpdateSlipway)
			r.Post("/comments", s.AddComment)
			r.Post("/images", s.AttachImage)
		})
	})

	return r
}
