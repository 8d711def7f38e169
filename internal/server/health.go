package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gridwright/gridwright/pkg/cache"
)

func handleHealth(logger *log.Logger, store Store, gencache cache.Cache) http.HandlerFunc {
	type result struct {
		Status string `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		checks := map[string]result{
			"store": {Status: "ok"},
			"cache": {Status: "ok"},
		}
		status := http.StatusOK

		if err := store.Ping(ctx); err != nil {
			logger.Error("health check failed", "name", "store", "error", err)
			checks["store"] = result{Status: "error"}
			status = http.StatusServiceUnavailable
		}

		// A probe read exercises the cache backend without mutating it.
		if _, _, err := gencache.Get(ctx, "healthz"); err != nil {
			logger.Error("health check failed", "name", "cache", "error", err)
			checks["cache"] = result{Status: "error"}
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, checks)
	}
}
