package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"
)

// fakeStore records puts and can be told to fail.
type fakeStore struct {
	putKey  string
	putType string
	putBody string
	putErr  error

	removed   []string
	removeErr error
}

func (f *fakeStore) Put(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
	if f.putErr != nil {
		return 0, f.putErr
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	f.putKey = key
	f.putType = contentType
	f.putBody = string(body)
	return int64(len(body)), nil
}

func (f *fakeStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(f.putBody)), nil
}

func (f *fakeStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func (f *fakeStore) Remove(ctx context.Context, key string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, key)
	return nil
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestUploadRejectsNonVideoType(t *testing.T) {
	store := &fakeStore{}
	svc := &Service{Store: store, now: fixedClock}

	res := svc.Upload(context.Background(), File{
		Name:        "notes.txt",
		ContentType: "text/plain",
		SizeBytes:   120,
		Reader:      strings.NewReader("hello"),
	}, "analysis-1")

	if res.Success {
		t.Fatalf("expected failure result")
	}
	if !res.Rejected() {
		t.Fatalf("expected a validation rejection")
	}
	if !strings.Contains(res.Error, "video") {
		t.Fatalf("Error = %q, want mention of video types", res.Error)
	}
	if store.putKey != "" {
		t.Fatalf("store was written for a rejected upload: %q", store.putKey)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := &Service{Store: &fakeStore{}, now: fixedClock}

	res := svc.Upload(context.Background(), File{
		Name:        "big.mp4",
		ContentType: "video/mp4",
		SizeBytes:   101 << 20,
		Reader:      strings.NewReader(""),
	}, "analysis-1")

	if res.Success || !res.Rejected() {
		t.Fatalf("expected a validation rejection, got %#v", res)
	}
	if !strings.Contains(res.Error, "100MB") {
		t.Fatalf("Error = %q, want mention of the 100MB limit", res.Error)
	}
	if !strings.Contains(res.Error, "101.0MB") {
		t.Fatalf("Error = %q, want the actual size", res.Error)
	}
}

func TestUploadStoresUnderAnalysisPath(t *testing.T) {
	store := &fakeStore{}
	svc := &Service{Store: store, now: fixedClock}

	res := svc.Upload(context.Background(), File{
		Name:        "walkthrough.mp4",
		ContentType: "video/mp4",
		SizeBytes:   5,
		Reader:      strings.NewReader("hello"),
	}, "analysis-1")

	if !res.Success {
		t.Fatalf("Upload failed: %q", res.Error)
	}
	wantPath := fmt.Sprintf("videos/analysis-1/%d.mp4", fixedClock().UnixMilli())
	if res.Path != wantPath {
		t.Fatalf("Path = %q, want %q", res.Path, wantPath)
	}
	if res.URL != "https://cdn.example.com/"+wantPath {
		t.Fatalf("URL = %q", res.URL)
	}
	if store.putKey != wantPath || store.putType != "video/mp4" || store.putBody != "hello" {
		t.Fatalf("store got key=%q type=%q body=%q", store.putKey, store.putType, store.putBody)
	}
}

func TestUploadFilenameExtensionWins(t *testing.T) {
	store := &fakeStore{}
	svc := &Service{Store: store, now: fixedClock}

	res := svc.Upload(context.Background(), File{
		Name:        "clip.webm",
		ContentType: "video/mp4",
		SizeBytes:   3,
		Reader:      strings.NewReader("abc"),
	}, "analysis-1")

	if !res.Success {
		t.Fatalf("Upload failed: %q", res.Error)
	}
	if !strings.HasSuffix(res.Path, ".webm") {
		t.Fatalf("Path = %q, want .webm suffix", res.Path)
	}
}

func TestUploadStoreFailureIsAResultNotAFault(t *testing.T) {
	store := &fakeStore{putErr: errors.New("bucket unavailable")}
	svc := &Service{Store: store, now: fixedClock}

	res := svc.Upload(context.Background(), File{
		Name:        "walkthrough.mp4",
		ContentType: "video/mp4",
		SizeBytes:   5,
		Reader:      strings.NewReader("hello"),
	}, "analysis-1")

	if res.Success {
		t.Fatalf("expected failure result")
	}
	if res.Rejected() {
		t.Fatalf("a write failure is not a validation rejection")
	}
	if !strings.Contains(res.Error, "bucket unavailable") {
		t.Fatalf("Error = %q, want the provider error", res.Error)
	}
}

func TestGenerateURL(t *testing.T) {
	svc := &Service{Store: &fakeStore{}}
	got := svc.GenerateURL("videos/analysis-1/123.mp4")
	if got != "https://cdn.example.com/videos/analysis-1/123.mp4" {
		t.Fatalf("GenerateURL = %q", got)
	}
}

func TestRemove(t *testing.T) {
	store := &fakeStore{}
	svc := &Service{Store: store}

	res := svc.Remove(context.Background(), "videos/analysis-1/123.mp4")
	if !res.Success || res.Error != "" {
		t.Fatalf("Remove = %#v", res)
	}
	if len(store.removed) != 1 || store.removed[0] != "videos/analysis-1/123.mp4" {
		t.Fatalf("removed = %#v", store.removed)
	}

	store.removeErr = errors.New("not found")
	res = svc.Remove(context.Background(), "videos/analysis-1/123.mp4")
	if res.Success || !strings.Contains(res.Error, "not found") {
		t.Fatalf("Remove failure = %#v", res)
	}
}
