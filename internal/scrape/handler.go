package scrape

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"growhub/internal/ingest"
	"growhub/internal/notify"
)

type Handler struct {
	Scraper *Scraper
	Store   ingest.ComponentStore
	Hub     *notify.Hub
}

func NewHandler(scraper *Scraper, store ingest.ComponentStore, hub *notify.Hub) *Handler {
	return &Handler{Scraper: scraper, Store: store, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/scrape", h.scrape)
}

type scrapeReq struct {
	URL string `json:"url"`
}

// scrape fetches one product page, persists the extracted component and
// returns it. Failures come back as {"success": false, "error": "..."}
// so the dashboard can show them verbatim.
func (h *Handler) scrape(c *gin.Context) {
	var req scrapeReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "url required"})
		return
	}

	comp, err := h.Scraper.Scrape(strings.TrimSpace(req.URL))
	if err != nil {
		log.Printf("[scrape] %s: %v", req.URL, err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.Store.Create(c.Request.Context(), comp); err != nil {
		log.Printf("[scrape] persist %q: %v", comp.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to save component"})
		return
	}

	h.Hub.BroadcastJSON(notify.Event{
		Type: "component_created", ID: comp.ID, Category: comp.Category, Name: comp.Name,
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "component": comp})
}
