// Package cssasset loads critical CSS from S3 for inlining into the
// document head via markup.WithInlineCriticalCSS, so the first paint
// doesn't block on an external stylesheet round-trip.
package cssasset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3GetObjectAPI is the slice of *s3.Client's surface this package
// needs, narrowed so a fake can stand in for it in tests without
// hitting the network.
type s3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Loader fetches a critical-CSS object from S3 and caches it in
// memory until Invalidate is called, since the same bundle is reused
// across many renders.
type Loader struct {
	client s3GetObjectAPI
	bucket string
	key    string

	mu     sync.RWMutex
	cached string
	loaded bool
}

// NewLoader builds a Loader that reads bucket/key via client.
func NewLoader(client *s3.Client, bucket, key string) *Loader {
	return &Loader{client: client, bucket: bucket, key: key}
}

// Load returns the cached CSS if present, otherwise fetches it from
// S3 and caches the result.
func (l *Loader) Load(ctx context.Context) (string, error) {
	l.mu.RLock()
	if l.loaded {
		css := l.cached
		l.mu.RUnlock()
		return css, nil
	}
	l.mu.RUnlock()

	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(l.key),
	})
	if err != nil {
		return "", fmt.Errorf("cssasset: fetch %s/%s: %w", l.bucket, l.key, err)
	}
	defer out.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, out.Body); err != nil {
		return "", fmt.Errorf("cssasset: read %s/%s: %w", l.bucket, l.key, err)
	}

	css := buf.String()
	l.mu.Lock()
	l.cached, l.loaded = css, true
	l.mu.Unlock()
	return css, nil
}

// Invalidate forces the next Load to re-fetch from S3, for use after a
// deploy rotates the critical-CSS bundle.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.loaded = false
	l.cached = ""
	l.mu.Unlock()
}
