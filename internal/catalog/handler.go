package catalog

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"growhub/internal/classify"
	"growhub/internal/notify"
	"growhub/pkg/models"
)

type Handler struct {
	Repo *Repo
	Hub  *notify.Hub
}

func NewHandler(repo *Repo, hub *notify.Hub) *Handler {
	return &Handler{Repo: repo, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)             // GET /components
	rg.GET("/counts", h.counts)    // GET /components/counts
	rg.GET("/:id", h.getByID)      // GET /components/:id
	rg.POST("", h.create)          // POST /components
	rg.PUT("/:id", h.update)       // PUT /components/:id
	rg.DELETE("/:id", h.remove)    // DELETE /components/:id
}

func (h *Handler) list(c *gin.Context) {
	q := ListQuery{
		Q:        c.Query("q"),
		Category: c.Query("category"),
		Limit:    parseInt(c.Query("limit"), 20),
		Offset:   parseInt(c.Query("offset"), 0),
	}

	total, err := h.Repo.Count(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count failed"})
		return
	}

	items, err := h.Repo.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"limit":  q.Limit,
		"offset": q.Offset,
		"items":  items,
	})
}

func (h *Handler) counts(c *gin.Context) {
	counts, err := h.Repo.CategoryCounts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "counts failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}

func (h *Handler) getByID(c *gin.Context) {
	id := c.Param("id")
	comp, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if comp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, comp)
}

// create handles manual catalog entry from the admin/builder forms.
// User-authored components are marked custom and get a custom-<millis> id.
func (h *Handler) create(c *gin.Context) {
	var comp models.BuildComponent
	if err := c.ShouldBindJSON(&comp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	comp.Name = strings.TrimSpace(comp.Name)
	comp.Brand = strings.TrimSpace(comp.Brand)
	if comp.Name == "" || comp.Brand == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and brand are required"})
		return
	}
	if comp.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be >= 0"})
		return
	}
	if comp.Category == "" {
		comp.Category = classify.Category(comp.Name)
	}
	if !classify.ValidCategory(comp.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + comp.Category})
		return
	}

	comp.IsCustom = true
	if comp.ID == "" {
		comp.ID = fmt.Sprintf("custom-%d", time.Now().UnixMilli())
	}

	if err := h.Repo.Create(c.Request.Context(), &comp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	h.Hub.BroadcastJSON(notify.Event{
		Type: "component_created", ID: comp.ID, Category: comp.Category, Name: comp.Name,
	})
	c.JSON(http.StatusCreated, comp)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var comp models.BuildComponent
	if err := c.ShouldBindJSON(&comp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	comp.ID = id

	if strings.TrimSpace(comp.Name) == "" || strings.TrimSpace(comp.Brand) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and brand are required"})
		return
	}
	if comp.Category != "" && !classify.ValidCategory(comp.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + comp.Category})
		return
	}

	ok, err := h.Repo.Update(c.Request.Context(), &comp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	h.Hub.BroadcastJSON(notify.Event{
		Type: "component_updated", ID: comp.ID, Category: comp.Category, Name: comp.Name,
	})
	c.JSON(http.StatusOK, comp)
}

func (h *Handler) remove(c *gin.Context) {
	id := c.Param("id")

	ok, err := h.Repo.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	h.Hub.BroadcastJSON(notify.Event{Type: "component_deleted", ID: id})
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
