package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/repodeps/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logHooks forwards scan and HTTP events to the logger at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.ScanHooks = (*logHooks)(nil)
	_ observability.HTTPHooks = (*logHooks)(nil)
)

func (h *logHooks) OnRepoStart(_ context.Context, repo string) {
	h.logger.Debug("scanning repository", "repo", repo)
}

func (h *logHooks) OnRepoComplete(_ context.Context, repo string, manifests int, d time.Duration) {
	h.logger.Debug("scanned repository", "repo", repo, "manifests", manifests, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnManifest(_ context.Context, repo, path string, deps int, fetchErr, parseErr error) {
	switch {
	case fetchErr != nil:
		h.logger.Debug("manifest unavailable", "repo", repo, "path", path)
	case parseErr != nil:
		h.logger.Debug("manifest invalid", "repo", repo, "path", path)
	default:
		h.logger.Debug("manifest parsed", "repo", repo, "path", path, "dependencies", deps)
	}
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "host", host, "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("request failed", "method", method, "host", host, "path", path, "err", err)
}
