package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boatlaunch/slipway-map/internal/domain"
	"github.com/boatlaunch/slipway-map/internal/service"
	"github.com/boatlaunch/slipway-map/internal/upload"
)

// These tests cover the hand-off between the upload handshake and the
// entity editor: the stored image list gains an id only when the whole
// handshake succeeded, so a failed transfer can never leave a dangling
// reference.

func newUploadFixture(t *testing.T, storageStatus int) (*upload.Client, *memDetailRepo, *service.SlipwayService) {
	t.Helper()

	storage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(storageStatus)
	}))
	t.Cleanup(storage.Close)

	sign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("file_name")
		json.NewEncoder(w).Encode(map[string]string{
			"signed_request": storage.URL + "/" + key + "?sig=abc",
			"url":            "https://cdn.example.com/" + key,
		})
	}))
	t.Cleanup(sign.Close)

	details := newMemDetailRepo()
	details.records["sl-1"] = validDetail()

	return &upload.Client{BaseURL: sign.URL}, details, service.NewSlipwayService(&mockCoordRepo{}, details)
}

func TestUploadFlow_SuccessAppendsExactlyOneID(t *testing.T) {
	client, details, svc := newUploadFixture(t, http.StatusOK)

	candidate := upload.Candidate{Name: "photo.jpg", ContentType: "image/jpeg", Size: 3}
	result, err := client.Upload(context.Background(), "sl-1", candidate, strings.NewReader("jpg"), nil)
	require.NoError(t, err)

	// Only after confirmed success does the image list change.
	require.NoError(t, svc.AttachImage(context.Background(), "sl-1", result.ImageID))

	assert.Equal(t, []string{result.ImageID}, details.records["sl-1"].Imgs)

	// The display URL for the stored id follows the fixed prefix/suffix
	// convention; the URL itself is never persisted.
	url := domain.ImageURL("s3-eu-west-1.amazonaws.com", "slipway-photos", result.ImageID)
	assert.True(t, strings.HasSuffix(url, result.ImageID+"___Source.jpg"))
}

// TestUploadFlow_TransferFailureLeavesImageListUnchanged: sign phase
// succeeds, transfer phase returns HTTP 500 — the entity's stored image
// list must be exactly as it was before the attempt.
func TestUploadFlow_TransferFailureLeavesImageListUnchanged(t *testing.T) {
	client, details, _ := newUploadFixture(t, http.StatusInternalServerError)

	candidate := upload.Candidate{Name: "photo.jpg", ContentType: "image/jpeg", Size: 3}
	_, err := client.Upload(context.Background(), "sl-1", candidate, strings.NewReader("jpg"), nil)

	require.Error(t, err)
	assert.Empty(t, details.records["sl-1"].Imgs, "no dangling reference after a failed attempt")
}

func TestUploadFlow_ValidationFailureLeavesImageListUnchanged(t *testing.T) {
	client, details, _ := newUploadFixture(t, http.StatusOK)

	candidate := upload.Candidate{Name: "notes.pdf", ContentType: "application/pdf", Size: 3}
	_, err := client.Upload(context.Background(), "sl-1", candidate, strings.NewReader("pdf"), nil)

	var verr *upload.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, details.records["sl-1"].Imgs)
}
