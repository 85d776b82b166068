package cssasset

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	calls int32
	body  string
	err   error
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestLoadFetchesAndCachesOnFirstCall(t *testing.T) {
	fake := &fakeS3{body: ".critical { color: red }"}
	l := &Loader{client: fake, bucket: "assets", key: "critical.css"}

	got, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ".critical { color: red }" {
		t.Fatalf("got %q", got)
	}

	if _, err := l.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error on cached load: %v", err)
	}
	if fake.calls != 1 {
		t.Fatalf("calls = %d, want 1 (second Load must hit the cache)", fake.calls)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	fake := &fakeS3{body: "a { color: blue }"}
	l := &Loader{client: fake, bucket: "assets", key: "critical.css"}

	if _, err := l.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Invalidate()
	if _, err := l.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.calls != 2 {
		t.Fatalf("calls = %d, want 2 after Invalidate", fake.calls)
	}
}

func TestLoadPropagatesS3Error(t *testing.T) {
	fake := &fakeS3{err: errors.New("access denied")}
	l := &Loader{client: fake, bucket: "assets", key: "critical.css"}

	if _, err := l.Load(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
}
