package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tadeyemo32/persona-backend/models"
	"github.com/tadeyemo32/persona-backend/services"
)

// Handlers carries the injected service dependencies for the API group.
type Handlers struct {
	Coordinator *services.Coordinator
}

func ok(c *gin.Context, extra gin.H) {
	resp := gin.H{"success": true}
	for k, v := range extra {
		resp[k] = v
	}
	c.JSON(http.StatusOK, resp)
}

func bad(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// enrichHandler resolves an enrichment lookup through the cache
// coordinator. The response carries the payload plus a cached flag, so the
// frontend learns cache status without the payload title being tagged.
func (h *Handlers) enrichHandler(c *gin.Context) {
	var req models.EnrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, http.StatusBadRequest, "Missing query in request body.")
		return
	}

	userID := identityFromContext(c)
	result, err := h.Coordinator.Resolve(c.Request.Context(), userID, req.Query)
	switch {
	case errors.Is(err, services.ErrEmptyQuery):
		bad(c, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, services.ErrComputeFailed):
		log.Error().Err(err).Msg("enrichment compute failed")
		bad(c, http.StatusBadGateway, "Enrichment failed. Please try again.")
		return
	case err != nil:
		log.Error().Err(err).Msg("enrichment lookup failed")
		bad(c, http.StatusInternalServerError, "Could not complete enrichment.")
		return
	}

	ok(c, gin.H{"data": result.Entry.Data, "cached": result.Cached})
}

// historyHandler lists the caller's past enrichments, newest first.
func (h *Handlers) historyHandler(c *gin.Context) {
	userID := identityFromContext(c)

	entries, err := h.Coordinator.ListHistory(userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch search history")
		bad(c, http.StatusInternalServerError, "Could not retrieve search history.")
		return
	}
	if entries == nil {
		entries = []models.SearchHistoryEntry{}
	}

	ok(c, gin.H{"data": entries})
}
