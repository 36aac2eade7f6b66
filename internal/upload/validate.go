// Package upload implements the two-phase photo upload handshake: ask the
// signing endpoint for a short-lived pre-signed write URL, then PUT the raw
// file bytes straight to object storage. Raw bytes never pass through the
// application backend.
package upload

import "fmt"

// MaxFileSize is the upload size ceiling. Candidates above it are rejected
// before any network call.
const MaxFileSize = 10 << 20 // 10 MiB

// allowedTypes is the allow-list of image content types accepted for upload.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Candidate describes a local file proposed for upload, before any bytes
// are read.
type Candidate struct {
	Name        string
	ContentType string
	Size        int64
}

// ValidationError reports a candidate that failed pre-flight validation.
// Reason is user-facing and names the constraint that failed. Validation
// errors are terminal for the attempt but fixable by the user.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "upload rejected: " + e.Reason
}

// Validate checks a candidate against the content-type allow-list and the
// size ceiling. It returns a *ValidationError naming the failed constraint,
// and is always called before phase 1 so a rejected file costs zero
// network calls.
func Validate(c Candidate) error {
	if !allowedTypes[c.ContentType] {
		return &ValidationError{Reason: fmt.Sprintf("file type %q is not an accepted image type", c.ContentType)}
	}
	if c.Size > MaxFileSize {
		return &ValidationError{Reason: fmt.Sprintf("file is larger than the %d MB limit", MaxFileSize>>20)}
	}
	return nil
}
