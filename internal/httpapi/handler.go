// Package httpapi exposes the latest boiler snapshot over HTTP.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/five82/stoker/internal/state"
)

const (
	statusOK = "ok"

	errNoStatus      = "no status received yet"
	errRefreshFailed = "refresh failed"
)

// Handler serves snapshots from a store.
type Handler struct {
	store   *state.Store
	refresh func(context.Context) error
	log     zerolog.Logger
}

// NewHandler builds a handler. refresh may be nil, which disables POST /api/refresh.
func NewHandler(store *state.Store, refresh func(context.Context) error, log zerolog.Logger) *Handler {
	return &Handler{store: store, refresh: refresh, log: log}
}

// InitRoutes builds the gin router.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		api.GET("/status", h.getStatus)
		api.GET("/readings/:key", h.getReading)
		if h.refresh != nil {
			api.POST("/refresh", h.postRefresh)
		}
	}
	return router
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

func (h *Handler) getStatus(c *gin.Context) {
	snap := h.store.Snapshot()
	if !snap.HasStatus() {
		resp := gin.H{"error": errNoStatus}
		if snap.LastError != nil {
			resp["last_error"] = snap.LastError.Error()
		}
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, NewStatusView(snap))
}

func (h *Handler) getReading(c *gin.Context) {
	snap := h.store.Snapshot()
	if !snap.HasStatus() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNoStatus})
		return
	}
	key := c.Param("key")
	r, ok := state.Find(snap.Readings, key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown reading " + key})
		return
	}
	view := ReadingView{Group: r.Group, Key: r.Key, Label: r.Label, Unit: string(r.Unit)}
	if r.Err != nil {
		view.Error = r.Err.Error()
	} else {
		view.Value = r.Text
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) postRefresh(c *gin.Context) {
	if err := h.refresh(c.Request.Context()); err != nil {
		h.log.Warn().Err(err).Msg("manual refresh failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": errRefreshFailed, "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, NewStatusView(h.store.Snapshot()))
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.log.Debug().
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Int("status", c.Writer.Status()).
		Dur("elapsed", time.Since(start)).
		Msg("http request")
}
