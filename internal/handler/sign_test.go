package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boatlaunch/slipway-map/internal/handler"
	"github.com/boatlaunch/slipway-map/internal/signer"
)

// mockSigner is a test double for handler.URLSigner.
type mockSigner struct {
	sign func(ctx context.Context, key, contentType string) (string, string, error)
}

func (m *mockSigner) Sign(ctx context.Context, key, contentType string) (string, string, error) {
	return m.sign(ctx, key, contentType)
}

var _ handler.URLSigner = (*mockSigner)(nil)

func newSignHTTPHandler(s handler.URLSigner) http.Handler {
	return handler.NewServer(nil, s).Routes()
}

func TestSignUpload_200(t *testing.T) {
	s := &mockSigner{
		sign: func(_ context.Context, key, contentType string) (string, string, error) {
			assert.Equal(t, "WebSitePhotos/img-1___Source.jpg", key)
			assert.Equal(t, "image/jpeg", contentType)
			return "https://bucket.s3.amazonaws.com/signed", "https://host/bucket/WebSitePhotos/img-1___Source.jpg", nil
		},
	}

	req := httptest.NewRequest(http.MethodGet,
		"/sign_s3?file_name=WebSitePhotos%2Fimg-1___Source.jpg&file_type=image%2Fjpeg", nil)
	rec := httptest.NewRecorder()
	newSignHTTPHandler(s).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		SignedRequest string `json:"signed_request"`
		URL           string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://bucket.s3.amazonaws.com/signed", body.SignedRequest)
	assert.Equal(t, "https://host/bucket/WebSitePhotos/img-1___Source.jpg", body.URL)
}

func TestSignUpload_400_MissingParams(t *testing.T) {
	s := &mockSigner{
		sign: func(context.Context, string, string) (string, string, error) {
			t.Fatal("signer must not be called for bad input")
			return "", "", nil
		},
	}

	for _, target := range []string{
		"/sign_s3",
		"/sign_s3?file_name=key",
		"/sign_s3?file_type=image%2Fjpeg",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		newSignHTTPHandler(s).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)

		var body struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Error)
	}
}

// TestSignUpload_500_NotConfigured: a missing bucket or credential pair is
// an operator problem; the client sees a generic message while the detail
// stays in the server log.
func TestSignUpload_500_NotConfigured(t *testing.T) {
	s := &mockSigner{
		sign: func(context.Context, string, string) (string, string, error) {
			return "", "", signer.ErrNotConfigured
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/sign_s3?file_name=key&file_type=image%2Fjpeg", nil)
	rec := httptest.NewRecorder()
	newSignHTTPHandler(s).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "could not sign upload request", body.Error)
	assert.NotContains(t, rec.Body.String(), "bucket", "configuration detail is never sent to the client")
}

func TestSignUpload_500_SignerError(t *testing.T) {
	s := &mockSigner{
		sign: func(context.Context, string, string) (string, string, error) {
			return "", "", errors.New("aws unreachable")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/sign_s3?file_name=key&file_type=image%2Fjpeg", nil)
	rec := httptest.NewRecorder()
	newSignHTTPHandler(s).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "aws unreachable")
}
