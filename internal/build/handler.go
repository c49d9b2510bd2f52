package build

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"growhub/internal/catalog"
	"growhub/pkg/models"
)

type Handler struct {
	Sessions *SessionStore
	Catalog  *catalog.Repo
	Repo     *Repo
}

func NewHandler(sessions *SessionStore, catalogRepo *catalog.Repo, repo *Repo) *Handler {
	return &Handler{Sessions: sessions, Catalog: catalogRepo, Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/builds", h.newSession)
	rg.GET("/builds/:id", h.getSession)
	rg.DELETE("/builds/:id", h.discardSession)
	rg.POST("/builds/:id/components", h.addComponent)
	rg.PUT("/builds/:id/components/:component_id", h.updateQuantity)
	rg.DELETE("/builds/:id/components/:component_id", h.removeComponent)
	rg.GET("/builds/:id/power-cost", h.sessionPowerCost)
	rg.POST("/builds/:id/save", h.saveSession)

	rg.POST("/power-cost", h.powerCost)

	rg.GET("/configurations", h.listConfigurations)
	rg.GET("/configurations/:id", h.getConfiguration)
	rg.DELETE("/configurations/:id", h.deleteConfiguration)
}

func (h *Handler) newSession(c *gin.Context) {
	id := h.Sessions.New()
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) session(c *gin.Context) *Session {
	sess := h.Sessions.Get(c.Param("id"))
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "build session not found"})
	}
	return sess
}

func (h *Handler) getSession(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	c.JSON(http.StatusOK, sess.State())
}

func (h *Handler) discardSession(c *gin.Context) {
	h.Sessions.Delete(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

type addReq struct {
	ComponentID string `json:"component_id"`
}

func (h *Handler) addComponent(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ComponentID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "component_id required"})
		return
	}

	comp, err := h.Catalog.GetByID(c.Request.Context(), req.ComponentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if comp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "component not found"})
		return
	}

	if !sess.Add(*comp) {
		c.JSON(http.StatusConflict, gin.H{"error": "component already selected"})
		return
	}
	c.JSON(http.StatusOK, sess.State())
}

type quantityReq struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) updateQuantity(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	var req quantityReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category required"})
		return
	}

	if !sess.SetQuantity(c.Param("component_id"), req.Category, req.Quantity) {
		c.JSON(http.StatusNotFound, gin.H{"error": "component not in build"})
		return
	}
	c.JSON(http.StatusOK, sess.State())
}

func (h *Handler) removeComponent(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category query param required"})
		return
	}

	if !sess.Remove(c.Param("component_id"), category) {
		c.JSON(http.StatusNotFound, gin.H{"error": "component not in build"})
		return
	}
	c.JSON(http.StatusOK, sess.State())
}

func (h *Handler) sessionPowerCost(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	hours := parseFloat(c.Query("hours_per_day"), 18)
	rate := parseFloat(c.Query("rate_per_kwh"), 0.12)
	c.JSON(http.StatusOK, CalculatePowerCost(float64(sess.TotalPower()), hours, rate))
}

type powerCostReq struct {
	TotalWatts  float64 `json:"total_watts"`
	HoursPerDay float64 `json:"hours_per_day"`
	RatePerKwh  float64 `json:"rate_per_kwh"`
}

func (h *Handler) powerCost(c *gin.Context) {
	var req powerCostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	c.JSON(http.StatusOK, CalculatePowerCost(req.TotalWatts, req.HoursPerDay, req.RatePerKwh))
}

type saveReq struct {
	Name string `json:"name"`
}

func (h *Handler) saveSession(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}

	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	st := sess.State()
	cfg := &models.BuildConfiguration{
		Name:       strings.TrimSpace(req.Name),
		Components: st.Components,
		TotalCost:  st.TotalCost,
		TotalPower: st.TotalPower,
	}
	if err := h.Repo.Save(c.Request.Context(), cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusCreated, cfg)
}

func (h *Handler) listConfigurations(c *gin.Context) {
	cfgs, err := h.Repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": cfgs})
}

func (h *Handler) getConfiguration(c *gin.Context) {
	cfg, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if cfg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *Handler) deleteConfiguration(c *gin.Context) {
	ok, err := h.Repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func parseFloat(s string, def float64) float64 {
	if strings.TrimSpace(s) == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return f
}
