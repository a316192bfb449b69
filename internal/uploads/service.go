package uploads

import (
	"context"
	"fmt"
	"io"
	"time"

	"vastu-backend/internal/shared/storage/object"
	"vastu-backend/internal/shared/telemetry"
	"vastu-backend/internal/shared/util"
)

// maxUploadBytes is the fixed video size ceiling.
const maxUploadBytes = 100 << 20 // 100MB

// allowedVideoTypes maps accepted media types to a canonical extension.
var allowedVideoTypes = map[string]string{
	"video/mp4":       "mp4",
	"video/quicktime": "mov",
	"video/x-msvideo": "avi",
	"video/webm":      "webm",
}

// File is an incoming upload with its declared metadata. Validation
// runs against the declared values before any bytes are read.
type File struct {
	Name        string
	ContentType string
	SizeBytes   int64
	Reader      io.Reader
}

// UploadResult is the discriminated outcome of an upload. Provider
// errors surface as Success=false results, never as faults.
type UploadResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Path    string `json:"path,omitempty"`
	Error   string `json:"error,omitempty"`

	rejected bool // true when validation failed and no write was attempted
}

// Rejected reports whether the upload was turned away by validation,
// as opposed to failing during the write.
func (r UploadResult) Rejected() bool { return r.rejected }

// RemoveResult is the outcome of a best-effort delete.
type RemoveResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Service uploads property videos to the configured object store.
type Service struct {
	Store object.Store

	// now is overridable in tests; zero value means time.Now.
	now func() time.Time
}

// Upload validates the file, persists it under the owning analysis and
// returns a result carrying the public URL and storage path.
func (s *Service) Upload(ctx context.Context, file File, analysisID string) UploadResult {
	ext, ok := allowedVideoTypes[file.ContentType]
	if !ok {
		return UploadResult{
			Error:    "Invalid file type. Please upload a video file (MP4, MOV, AVI, or WebM)",
			rejected: true,
		}
	}
	if file.SizeBytes > maxUploadBytes {
		return UploadResult{
			Error: fmt.Sprintf("File too large. Maximum size is 100MB (file is %.1fMB)",
				float64(file.SizeBytes)/1024/1024),
			rejected: true,
		}
	}

	if nameExt := util.FileExt(file.Name, ""); nameExt != "" {
		ext = nameExt
	}
	path := fmt.Sprintf("videos/%s/%d.%s", analysisID, s.clock().UnixMilli(), ext)

	if _, err := s.Store.Put(ctx, path, file.ContentType, file.Reader); err != nil {
		telemetry.Error("upload.failed", map[string]any{
			"analysis_id": analysisID,
			"path":        path,
			"err":         err.Error(),
		})
		return UploadResult{Error: "Upload failed: " + err.Error()}
	}

	return UploadResult{
		Success: true,
		URL:     s.Store.PublicURL(path),
		Path:    path,
	}
}

// GenerateURL derives the public URL for a stored path. Pure, no I/O.
func (s *Service) GenerateURL(path string) string {
	return s.Store.PublicURL(path)
}

// Remove deletes a stored video, best-effort.
func (s *Service) Remove(ctx context.Context, path string) RemoveResult {
	if err := s.Store.Remove(ctx, path); err != nil {
		return RemoveResult{Error: err.Error()}
	}
	return RemoveResult{Success: true}
}

func (s *Service) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC()
}
