// Package signer issues short-lived pre-signed S3 PUT URLs for the photo
// upload handshake. The browser (or any upload.Client) writes the file
// bytes straight to the bucket with the signed URL, so raw image data never
// passes through this server — the proxy-through-backend approach corrupted
// binaries and tripped CORS.
package signer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// urlTTL is how long a pre-signed write URL stays valid. Long enough for
// the browser to start the PUT, short enough that a leaked URL is useless.
const urlTTL = 60 * time.Second

// ErrNotConfigured is returned by Sign when the storage bucket or
// credentials are missing from the environment. It is an operator problem,
// not a retryable one; handlers surface it as a generic failure and log the
// detail server-side only.
var ErrNotConfigured = errors.New("object storage is not configured")

// Options carries the storage configuration the presigner needs.
type Options struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string

	// PublicHost is the host public read URLs are built on,
	// e.g. "s3-eu-west-1.amazonaws.com".
	PublicHost string
}

// Presigner signs PUT requests against a fixed bucket.
type Presigner struct {
	opts    Options
	presign *s3.PresignClient
}

// New builds a Presigner from the given options. Missing bucket or
// credentials do not fail construction — the server should boot without
// storage configured — but every Sign call will return ErrNotConfigured.
func New(ctx context.Context, opts Options) (*Presigner, error) {
	p := &Presigner{opts: opts}
	if !p.configured() {
		return p, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("signer.New: load aws config: %w", err)
	}

	p.presign = s3.NewPresignClient(s3.NewFromConfig(cfg))
	return p, nil
}

// Sign returns a pre-signed PUT URL for the given object key plus the
// public read URL the object will have once uploaded. The signed URL
// expires after 60 seconds and carries the declared content type and a
// public-read ACL, both of which the uploader must echo on the PUT.
func (p *Presigner) Sign(ctx context.Context, key, contentType string) (signedURL, publicURL string, err error) {
	if !p.configured() {
		return "", "", fmt.Errorf("signer.Presigner.Sign: %w", ErrNotConfigured)
	}

	req, err := p.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.opts.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	}, s3.WithPresignExpires(urlTTL))
	if err != nil {
		return "", "", fmt.Errorf("signer.Presigner.Sign: %w", err)
	}

	return req.URL, p.publicURL(key), nil
}

// publicURL builds the eventual public read URL for an object key.
func (p *Presigner) publicURL(key string) string {
	return "https://" + p.opts.PublicHost + "/" + p.opts.Bucket + "/" + key
}

// configured reports whether the bucket and credential pair are all present.
func (p *Presigner) configured() bool {
	return p.opts.Bucket != "" && p.opts.AccessKeyID != "" && p.opts.SecretAccessKey != ""
}
