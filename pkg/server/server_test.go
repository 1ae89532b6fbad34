package server

import (
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/whisker/pkg/cache"
	"github.com/matzehuels/whisker/pkg/errors"
	"github.com/matzehuels/whisker/pkg/httputil"
	"github.com/matzehuels/whisker/pkg/observability"
)

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	quiet := log.New(io.Discard)
	store, err := cache.NewStore(cache.WithLogger(quiet))
	if err != nil {
		t.Fatal(err)
	}
	opts = append([]Option{WithLogger(quiet)}, opts...)
	srv := httptest.NewServer(New(cache.NewSynchronized(store), opts...).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string, header ...string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/healthz")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestListFaces(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/faces")

	var faces []FaceInfo
	if err := json.NewDecoder(resp.Body).Decode(&faces); err != nil {
		t.Fatal(err)
	}
	want := []string{"neutral", "happy", "angry"}
	if len(faces) != len(want) {
		t.Fatalf("got %d faces, want %d", len(faces), len(want))
	}
	for i, name := range want {
		if faces[i].Name != name {
			t.Errorf("faces[%d].Name = %q, want %q", i, faces[i].Name, name)
		}
		if faces[i].PNG != "/faces/"+name+".png" {
			t.Errorf("faces[%d].PNG = %q", i, faces[i].PNG)
		}
	}
}

func TestFacePNG(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name  string
		query string
		w, h  int
	}{
		{"default viewport", "", DefaultCols, 2 * DefaultRows},
		{"custom viewport", "?cols=30&rows=10", 30, 20},
		{"scaled", "?cols=10&rows=5&scale=3", 30, 30},
		{"backdrop", "?cols=10&rows=5&bg=navy", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, srv.URL+"/faces/angry.png"+tt.query)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
				t.Errorf("Content-Type = %q", ct)
			}
			img, err := png.Decode(resp.Body)
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
		})
	}
}

func TestFaceCacheHeader(t *testing.T) {
	srv := newTestServer(t)

	first := get(t, srv.URL+"/faces/neutral.png?cols=12&rows=6")
	second := get(t, srv.URL+"/faces/neutral.txt?cols=12&rows=6")

	if got := first.Header.Get("X-Cache"); got != "MISS" {
		t.Errorf("first X-Cache = %q, want MISS", got)
	}
	if got := second.Header.Get("X-Cache"); got != "HIT" {
		t.Errorf("second X-Cache = %q, want HIT", got)
	}
}

func TestFaceETag(t *testing.T) {
	srv := newTestServer(t)

	first := get(t, srv.URL+"/faces/happy.png")
	etag := first.Header.Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	again := get(t, srv.URL+"/faces/happy.png", "If-None-Match", etag)
	if again.StatusCode != http.StatusNotModified {
		t.Errorf("status = %d, want 304", again.StatusCode)
	}

	scaled := get(t, srv.URL+"/faces/happy.png?scale=2", "If-None-Match", etag)
	if scaled.StatusCode != http.StatusOK {
		t.Errorf("scaled status = %d, want 200", scaled.StatusCode)
	}

	// Happy and angry share a document, so their pixels and tags match.
	angry := get(t, srv.URL+"/faces/angry.png")
	if angry.Header.Get("ETag") != etag {
		t.Errorf("angry ETag = %q, want %q", angry.Header.Get("ETag"), etag)
	}
}

func TestFaceText(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/faces/neutral.txt?cols=40&rows=20&color=never")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	body := string(data)
	if n := strings.Count(body, "\n"); n != 20 {
		t.Errorf("got %d lines, want 20", n)
	}
	if !strings.ContainsRune(body, '▀') {
		t.Error("text should contain half-block glyphs")
	}
	if strings.Contains(body, "\x1b[") {
		t.Error("color=never should not emit escape sequences")
	}

	colored := get(t, srv.URL+"/faces/neutral.txt?cols=40&rows=20")
	data, _ = io.ReadAll(colored.Body)
	if !strings.Contains(string(data), "\x1b[") {
		t.Error("default text should be colored")
	}
}

func TestFaceErrors(t *testing.T) {
	srv := newTestServer(t, WithMaxCells(100))

	tests := []struct {
		name   string
		path   string
		status int
		code   errors.Code
	}{
		{"unknown expression", "/faces/sad.png", http.StatusBadRequest, errors.ErrCodeInvalidExpression},
		{"zero cols", "/faces/neutral.png?cols=0", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"non-numeric rows", "/faces/neutral.txt?rows=tall", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"over max cells", "/faces/neutral.png?cols=101", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad scale", "/faces/neutral.png?scale=0", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad color", "/faces/neutral.png?bg=blurple", http.StatusBadRequest, errors.ErrCodeInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, srv.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body httputil.ErrorBody
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Code, tt.code)
			}
		})
	}
}

func TestFaceUnknownExtension(t *testing.T) {
	srv := newTestServer(t)
	resp := get(t, srv.URL+"/faces/neutral.gif")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestStats(t *testing.T) {
	srv := newTestServer(t)
	get(t, srv.URL+"/faces/neutral.png?cols=8&rows=4")
	get(t, srv.URL+"/faces/neutral.png?cols=8&rows=4")

	var st StatsBody
	if err := json.NewDecoder(get(t, srv.URL+"/stats").Body).Decode(&st); err != nil {
		t.Fatal(err)
	}
	if st.Hits != 1 || st.Misses != 1 || st.Resident != 1 || st.Capacity != cache.DefaultSize {
		t.Errorf("stats = %+v", st)
	}
}

func TestRequestID(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/healthz")
	if _, err := uuid.Parse(resp.Header.Get(RequestIDHeader)); err != nil {
		t.Errorf("generated id %q is not a uuid", resp.Header.Get(RequestIDHeader))
	}

	id := uuid.NewString()
	resp = get(t, srv.URL+"/healthz", RequestIDHeader, id)
	if got := resp.Header.Get(RequestIDHeader); got != id {
		t.Errorf("id = %q, want %q", got, id)
	}

	resp = get(t, srv.URL+"/healthz", RequestIDHeader, "not-a-uuid")
	if got := resp.Header.Get(RequestIDHeader); got == "not-a-uuid" {
		t.Error("malformed client id should be replaced")
	}
}

type recordingHTTPHooks struct {
	mu        sync.Mutex
	requests  []string
	responses []int
}

func (h *recordingHTTPHooks) OnRequest(_ context.Context, method, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, method+" "+path)
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responses = append(h.responses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	srv := newTestServer(t)
	get(t, srv.URL+"/healthz")
	get(t, srv.URL+"/faces/sad.png")

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.requests) != 2 || hooks.requests[0] != "GET /healthz" {
		t.Errorf("requests = %v", hooks.requests)
	}
	if len(hooks.responses) != 2 || hooks.responses[0] != http.StatusOK || hooks.responses[1] != http.StatusBadRequest {
		t.Errorf("responses = %v", hooks.responses)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	store, err := cache.NewStore(cache.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatal(err)
	}
	s := New(cache.NewSynchronized(store), WithLogger(log.New(io.Discard)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("ListenAndServe() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
