package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"vastu-backend/internal/analyses"
	"vastu-backend/internal/bookings"
	"vastu-backend/internal/shared/config"
	"vastu-backend/internal/uploads"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := Build(config.Config{
		Env:             "dev",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		PublicBaseURL:   "http://localhost:8080",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func doJSON(t *testing.T, app *App, method, target string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	w := doJSON(t, app, http.MethodGet, "/api/v1/health", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decode[map[string]any](t, w)
	if body["status"] != "ok" || body["database"] != "unconfigured" {
		t.Fatalf("health = %#v", body)
	}
}

func TestAnalysisLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	guest := map[string]string{"X-Guest-Id": "g-123"}

	w := doJSON(t, app, http.MethodPost, "/api/v1/analyses", map[string]any{
		"propertyType":   "home",
		"selectedGoals":  []string{"wealth", "health"},
		"videoUrl":       "https://x/video.mp4",
		"compassHeading": 45.5,
	}, guest)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	created := decode[analyses.Analysis](t, w)
	if created.ID == "" || created.Status != analyses.StatusUploading {
		t.Fatalf("created = %#v", created)
	}
	if created.UserID != "guest:g-123" {
		t.Fatalf("UserID = %q, want guest identity from header", created.UserID)
	}

	w = doJSON(t, app, http.MethodGet, "/api/v1/analyses/"+created.ID, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, app, http.MethodPatch, "/api/v1/analyses/"+created.ID, map[string]any{
		"status": "processing",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}
	updated := decode[analyses.Analysis](t, w)
	if updated.Status != analyses.StatusProcessing {
		t.Fatalf("updated = %#v", updated)
	}

	// List resolves the caller from the identity header.
	w = doJSON(t, app, http.MethodGet, "/api/v1/analyses", nil, guest)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, body = %s", w.Code, w.Body.String())
	}
	list := decode[map[string][]analyses.Analysis](t, w)
	if got := list["analyses"]; len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("list = %#v", list)
	}

	w = doJSON(t, app, http.MethodDelete, "/api/v1/analyses/"+created.ID, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body = %s", w.Code, w.Body.String())
	}
	deleted := decode[map[string]bool](t, w)
	if !deleted["deleted"] {
		t.Fatalf("delete = %#v", deleted)
	}

	w = doJSON(t, app, http.MethodGet, "/api/v1/analyses/"+created.ID, nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestAnalysisCreateValidation(t *testing.T) {
	app := newTestApp(t)

	w := doJSON(t, app, http.MethodPost, "/api/v1/analyses", map[string]any{
		"propertyType": "home",
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)

	w := doJSON(t, app, http.MethodPost, "/api/v1/bookings", map[string]any{
		"analysisId":    "analysis-1",
		"name":          "Priya Sharma",
		"email":         "priya@example.com",
		"phone":         "+91-9876543210",
		"scheduledTime": "2025-06-05T10:30:00Z",
		"timezone":      "Asia/Kolkata",
		"amount":        299900,
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	created := decode[bookings.Booking](t, w)
	if created.PaymentStatus != bookings.PaymentPending || created.ConsultationStatus != bookings.ConsultationScheduled {
		t.Fatalf("created = %#v", created)
	}

	w = doJSON(t, app, http.MethodPatch, "/api/v1/bookings/"+created.ID, map[string]any{
		"paymentStatus": "completed",
		"paymentId":     "pay_123",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}
	updated := decode[bookings.Booking](t, w)
	if updated.PaymentStatus != bookings.PaymentCompleted || updated.PaymentID != "pay_123" {
		t.Fatalf("updated = %#v", updated)
	}

	w = doJSON(t, app, http.MethodGet, "/api/v1/bookings?email="+url.QueryEscape("priya@example.com"), nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, body = %s", w.Code, w.Body.String())
	}
	list := decode[map[string][]bookings.Booking](t, w)
	if got := list["bookings"]; len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("list = %#v", list)
	}

	// Listing without a filter is rejected.
	w = doJSON(t, app, http.MethodGet, "/api/v1/bookings", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unfiltered list = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestVideoUploadServeAndRemove(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="video"; filename="walkthrough.mp4"`)
	hdr.Set("Content-Type", "video/mp4")
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write([]byte("fake video bytes")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/analysis-1/video", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("upload status = %d, body = %s", w.Code, w.Body.String())
	}
	result := decode[uploads.UploadResult](t, w)
	if !result.Success || !strings.HasPrefix(result.Path, "videos/analysis-1/") {
		t.Fatalf("result = %#v", result)
	}

	w = doJSON(t, app, http.MethodGet, "/api/v1/files/"+result.Path, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("serve status = %d, body = %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "fake video bytes" {
		t.Fatalf("served body = %q", w.Body.String())
	}

	target := fmt.Sprintf("/api/v1/analyses/analysis-1/video?path=%s", url.QueryEscape(result.Path))
	w = doJSON(t, app, http.MethodDelete, target, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove status = %d, body = %s", w.Code, w.Body.String())
	}
	remove := decode[uploads.RemoveResult](t, w)
	if !remove.Success {
		t.Fatalf("remove = %#v", remove)
	}

	w = doJSON(t, app, http.MethodGet, "/api/v1/files/"+result.Path, nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("serve after remove = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestUploadRejectsWrongTypeOverHTTP(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="video"; filename="notes.txt"`)
	hdr.Set("Content-Type", "text/plain")
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write([]byte("not a video")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/analysis-1/video", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("upload status = %d, body = %s", w.Code, w.Body.String())
	}
	result := decode[uploads.UploadResult](t, w)
	if result.Success || !strings.Contains(result.Error, "video") {
		t.Fatalf("result = %#v", result)
	}
}
