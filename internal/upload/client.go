package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/boatlaunch/slipway-map/internal/domain"
)

// Client performs the two-phase upload handshake against a signing endpoint.
// The phases are strictly sequential per upload; independent uploads may run
// concurrently, each with its own progress callback and no shared state.
// Neither phase is retried automatically — a failed attempt is reported and
// the caller may re-invoke the whole handshake.
type Client struct {
	// BaseURL is the signing endpoint base (no trailing slash). It differs
	// between local development and deployed environments.
	BaseURL string

	// HTTPClient is used for both phases. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// Result is the outcome of a successful upload.
type Result struct {
	// ImageID is the generated identifier to append to the entity's image
	// list. It must only be persisted after the upload has confirmed success.
	ImageID string

	// PublicURL is the public read URL reported by the signing endpoint.
	PublicURL string
}

// signResponse is the wire shape of the signing endpoint's success body.
type signResponse struct {
	SignedRequest string `json:"signed_request"`
	URL           string `json:"url"`
}

// signError is the wire shape of the signing endpoint's error body.
type signError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Upload validates the candidate, then runs the handshake: sign, then
// transfer. progress, if non-nil, receives whole percentages derived from
// bytes-sent over bytes-total as the body streams out.
//
// On any failure the returned error is terminal for this attempt and
// nothing has been persisted: the caller must not touch the entity's image
// list unless Upload returns nil error.
func (c *Client) Upload(ctx context.Context, entityID string, candidate Candidate, body io.Reader, progress func(pct int)) (Result, error) {
	if err := Validate(candidate); err != nil {
		return Result{}, err
	}

	imageID := GenerateImageID(entityID)
	key := domain.ImageKey(imageID)

	signed, err := c.sign(ctx, key, candidate.ContentType)
	if err != nil {
		return Result{}, err
	}

	if err := c.transfer(ctx, signed.SignedRequest, candidate, body, progress); err != nil {
		return Result{}, err
	}

	return Result{ImageID: imageID, PublicURL: signed.URL}, nil
}

// sign is phase 1: ask the signing endpoint for a pre-signed write URL and
// the eventual public read URL for the given object key.
func (c *Client) sign(ctx context.Context, key, contentType string) (signResponse, error) {
	q := url.Values{}
	q.Set("file_name", key)
	q.Set("file_type", contentType)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/sign_s3?"+q.Encode(), nil)
	if err != nil {
		return signResponse{}, fmt.Errorf("upload: sign: %w", err)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return signResponse{}, fmt.Errorf("upload: sign: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e signError
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			return signResponse{}, fmt.Errorf("upload: sign: %s (status %d)", e.Error, resp.StatusCode)
		}
		return signResponse{}, fmt.Errorf("upload: sign: unexpected status %d", resp.StatusCode)
	}

	var s signResponse
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return signResponse{}, fmt.Errorf("upload: sign: decode response: %w", err)
	}
	if s.SignedRequest == "" {
		return signResponse{}, fmt.Errorf("upload: sign: response missing signed_request")
	}
	return s, nil
}

// transfer is phase 2: PUT the raw bytes directly to the pre-signed URL
// with the declared content type and a public-read access marker.
func (c *Client) transfer(ctx context.Context, signedURL string, candidate Candidate, body io.Reader, progress func(pct int)) error {
	reader := body
	if progress != nil && candidate.Size > 0 {
		reader = &progressReader{r: body, total: candidate.Size, report: progress}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signedURL, reader)
	if err != nil {
		return fmt.Errorf("upload: transfer: %w", err)
	}
	req.ContentLength = candidate.Size
	req.Header.Set("Content-Type", candidate.ContentType)
	req.Header.Set("x-amz-acl", "public-read")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("upload: transfer: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload: transfer: storage returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// progressReader reports upload progress as whole percentages while the
// request body is consumed. A tick fires only when the percentage changes,
// and 100 fires exactly once when the final byte is read.
type progressReader struct {
	r      io.Reader
	total  int64
	sent   int64
	last   int
	report func(pct int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		pct := int(p.sent * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		if pct != p.last {
			p.last = pct
			p.report(pct)
		}
	}
	return n, err
}
