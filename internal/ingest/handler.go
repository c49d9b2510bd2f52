package ingest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"growhub/internal/notify"
)

type Handler struct {
	Store ComponentStore
	Hub   *notify.Hub
}

func NewHandler(store ComponentStore, hub *notify.Hub) *Handler {
	return &Handler{Store: store, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/import", h.importCSV)
}

// importCSV accepts a multipart upload (field "file") of a component CSV
// and imports every valid row.
func (h *Handler) importCSV(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot open upload"})
		return
	}
	defer f.Close()

	batch, err := ParseCSV(f)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	res := Import(c.Request.Context(), h.Store, batch)
	if res.ImportedCount > 0 {
		h.Hub.BroadcastJSON(gin.H{"type": "catalog_imported", "count": res.ImportedCount})
	}
	c.JSON(http.StatusOK, res)
}
