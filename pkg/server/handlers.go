package server

import (
	"bytes"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/muesli/termenv"

	"github.com/matzehuels/whisker/pkg/buildinfo"
	"github.com/matzehuels/whisker/pkg/cache"
	"github.com/matzehuels/whisker/pkg/config"
	"github.com/matzehuels/whisker/pkg/errors"
	"github.com/matzehuels/whisker/pkg/face"
	"github.com/matzehuels/whisker/pkg/grid"
	"github.com/matzehuels/whisker/pkg/httputil"
	"github.com/matzehuels/whisker/pkg/raster"
	"github.com/matzehuels/whisker/pkg/render/halfblock"
)

// FaceInfo describes one expression in the /faces listing.
type FaceInfo struct {
	Name   string `json:"name"`
	Config string `json:"config"`
	PNG    string `json:"png"`
	Text   string `json:"text"`
}

// StatsBody is the /stats response.
type StatsBody struct {
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Failures  uint64 `json:"failures"`
	Evictions uint64 `json:"evictions"`
	Resident  int    `json:"resident"`
	Capacity  int    `json:"capacity"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st := s.store.Stats()
	httputil.WriteJSON(w, http.StatusOK, StatsBody{
		Hits:      st.Hits,
		Misses:    st.Misses,
		Failures:  st.Failures,
		Evictions: st.Evictions,
		Resident:  st.Resident,
		Capacity:  st.Capacity,
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	exprs := face.Expressions()
	out := make([]FaceInfo, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, FaceInfo{
			Name:   e.String(),
			Config: face.ConfigFor(e).String(),
			PNG:    "/faces/" + e.String() + ".png",
			Text:   "/faces/" + e.String() + ".txt",
		})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// faceRequest holds the parsed parameters shared by the face routes.
type faceRequest struct {
	expr       face.Expression
	viewport   grid.Rect
	background grid.Color
}

func (s *Server) handleFace(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	ext := path.Ext(file)
	req, err := s.parseFaceRequest(r, strings.TrimSuffix(file, ext))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	switch ext {
	case ".png":
		s.servePNG(w, r, req)
	case ".txt":
		s.serveText(w, r, req)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) parseFaceRequest(r *http.Request, name string) (faceRequest, error) {
	var req faceRequest
	expr, err := face.ParseExpression(name)
	if err != nil {
		return req, err
	}
	q := r.URL.Query()
	cols, err := intParam(q.Get("cols"), DefaultCols)
	if err != nil {
		return req, err
	}
	rows, err := intParam(q.Get("rows"), DefaultRows)
	if err != nil {
		return req, err
	}
	if err := errors.ValidateViewport(cols, rows); err != nil {
		return req, err
	}
	if cols > s.maxCells || rows > s.maxCells {
		return req, errors.New(errors.ErrCodeInvalidInput, "viewport too large (max %d cells per side), got %dx%d", s.maxCells, cols, rows)
	}
	bg, err := config.ParseColor(q.Get("bg"))
	if err != nil {
		return req, err
	}
	return faceRequest{expr: expr, viewport: grid.NewRect(cols, rows), background: bg}, nil
}

func (s *Server) fetch(w http.ResponseWriter, r *http.Request, req faceRequest) (*cache.Entry, bool) {
	entry, hit, err := s.store.Fetch(req.expr, req.viewport)
	if err != nil {
		s.logger.Warn("render failed", "id", RequestID(r.Context()), "key", cache.Key{Expression: req.expr, Viewport: req.viewport}, "err", err)
		httputil.WriteError(w, err)
		return nil, false
	}
	w.Header().Set("X-Cache", cacheStatus(hit))
	return entry, true
}

func (s *Server) servePNG(w http.ResponseWriter, r *http.Request, req faceRequest) {
	scale, err := intParam(r.URL.Query().Get("scale"), 1)
	if err == nil {
		err = errors.ValidateScale(scale)
	}
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	entry, ok := s.fetch(w, r, req)
	if !ok {
		return
	}
	etag := httputil.ETag(cache.Fingerprint(entry) + "-" + strconv.Itoa(scale) + req.background.Hex())
	if httputil.NotModified(w, r, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	opts := []raster.PNGOption{raster.WithScale(scale)}
	if req.background.IsSet() {
		opts = append(opts, raster.WithBackground(req.background.NRGBA()))
	}
	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, entry.Pixmap, opts...); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

func (s *Server) serveText(w http.ResponseWriter, r *http.Request, req faceRequest) {
	profile := termenv.TrueColor
	if r.URL.Query().Get("color") == "never" {
		profile = termenv.Ascii
	}

	entry, ok := s.fetch(w, r, req)
	if !ok {
		return
	}
	etag := httputil.ETag(cache.Fingerprint(entry) + "-" + strconv.Itoa(int(profile)) + req.background.Hex())
	if httputil.NotModified(w, r, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	buf := grid.NewBuffer(req.viewport)
	if req.background.IsSet() {
		buf.Fill(req.background)
	}
	halfblock.Draw(entry.Pixmap, req.viewport, buf)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, buf.RenderWith(grid.NewRenderer(io.Discard, profile))+"\n")
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid number %q", v)
	}
	return n, nil
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
