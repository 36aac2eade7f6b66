package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/boatlaunch/slipway-map/internal/signer"
)

// signS3Response is the success body of GET /sign_s3. The field names are
// the wire contract the upload client depends on.
type signS3Response struct {
	SignedRequest string `json:"signed_request"`
	URL           string `json:"url"`
}

// SignUpload handles GET /sign_s3?file_name=<key>&file_type=<mime>.
// It returns a 60-second pre-signed PUT URL plus the eventual public read
// URL. Missing parameters are a 400; missing storage configuration is a
// 500 with a generic message — the detail is logged server-side only.
func (s *Server) SignUpload(w http.ResponseWriter, r *http.Request) {
	fileName := r.URL.Query().Get("file_name")
	fileType := r.URL.Query().Get("file_type")
	if fileName == "" || fileType == "" {
		writeError(w, http.StatusBadRequest, "file_name and file_type are required")
		return
	}

	signedURL, publicURL, err := s.signer.Sign(r.Context(), fileName, fileType)
	if err != nil {
		if errors.Is(err, signer.ErrNotConfigured) {
			slog.ErrorContext(r.Context(), "upload signing unavailable", "error", err)
			writeError(w, http.StatusInternalServerError, "could not sign upload request")
			return
		}
		slog.ErrorContext(r.Context(), "presign failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not sign upload request")
		return
	}

	writeJSON(w, http.StatusOK, signS3Response{SignedRequest: signedURL, URL: publicURL})
}
