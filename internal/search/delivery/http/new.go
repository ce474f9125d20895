package http

import (
	"github.com/gin-gonic/gin"

	"anchorpoint-proxy/internal/search"
	"anchorpoint-proxy/pkg/log"
)

// DefaultMaxBodyBytes caps the POST /query body when no limit is configured.
const DefaultMaxBodyBytes = 1 << 20

// Handler is the public interface for the search HTTP delivery layer.
type Handler interface {
	Query(c *gin.Context)
}

type handler struct {
	l            log.Logger
	uc           search.UseCase
	maxBodyBytes int64
}

// New creates a new HTTP handler for the search domain.
func New(l log.Logger, uc search.UseCase, maxBodyBytes int64) Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &handler{
		l:            l,
		uc:           uc,
		maxBodyBytes: maxBodyBytes,
	}
}
