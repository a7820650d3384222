package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Probe is a dependency checked by Ready.
type Probe struct {
	Name string
	Ping func(ctx context.Context) error
}

type Handler struct{ probes []Probe }

func NewHandler(probes ...Probe) *Handler { return &Handler{probes: probes} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Ready pings every probe and reports 503 if any of them fails.
func (h *Handler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	code := http.StatusOK
	checks := make(map[string]string, len(h.probes))
	for _, p := range h.probes {
		if err := p.Ping(ctx); err != nil {
			checks[p.Name] = err.Error()
			code = http.StatusServiceUnavailable
			continue
		}
		checks[p.Name] = "ok"
	}
	status := "ok"
	if code != http.StatusOK {
		status = "degraded"
	}
	return c.JSON(code, map[string]any{"status": status, "checks": checks})
}
