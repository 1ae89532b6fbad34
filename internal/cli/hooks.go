package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/whisker/pkg/observability"
)

// debugHooks logs render, cache and HTTP events at debug level.
type debugHooks struct {
	logger *log.Logger
}

func (h debugHooks) OnRasterize(width, height int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("rasterize failed", "size", sizeString(width, height), "elapsed", d, "err", err)
		return
	}
	h.logger.Debug("rasterized", "size", sizeString(width, height), "elapsed", d)
}

func (h debugHooks) OnComposite(cells int, d time.Duration) {
	h.logger.Debug("composited", "cells", cells, "elapsed", d)
}

func (h debugHooks) OnCacheHit(key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h debugHooks) OnCacheMiss(key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h debugHooks) OnCacheInsert(key string, slot int, evicted string) {
	if evicted != "" {
		h.logger.Debug("cache insert", "key", key, "slot", slot, "evicted", evicted)
		return
	}
	h.logger.Debug("cache insert", "key", key, "slot", slot)
}

func (h debugHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("http request", "method", method, "path", path)
}

func (h debugHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "path", path, "status", status, "elapsed", d)
}

// installDebugHooks routes render, cache and HTTP events to l.
func installDebugHooks(l *log.Logger) {
	h := debugHooks{logger: l}
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func sizeString(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}
