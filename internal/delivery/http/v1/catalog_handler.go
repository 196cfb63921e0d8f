package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUC domain.CatalogUsecase
	healthUC  usecase.HealthUsecase
}

func NewCatalogHandler(r gin.IRoutes, catalogUC domain.CatalogUsecase, healthUC usecase.HealthUsecase) {
	handler := &CatalogHandler{catalogUC: catalogUC, healthUC: healthUC}

	r.GET("/job-types", handler.JobTypes)
	r.GET("/locations", handler.Locations)
	r.GET("/health", handler.Health)
}

// JobTypes godoc
// @Summary      Job type catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /job-types [get]
func (h *CatalogHandler) JobTypes(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalogUC.JobTypes(c.Request.Context()))
}

// Locations godoc
// @Summary      Location catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /locations [get]
func (h *CatalogHandler) Locations(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalogUC.Locations(c.Request.Context()))
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *CatalogHandler) Health(c *gin.Context) {
	c.Set(response.MaxAgeKey, 0)
	status, ok := h.healthUC.Check(c.Request.Context())
	code := http.StatusOK
	if !ok {
		code = http.StatusServiceUnavailable
	}
	response.JSON(c, code, status)
}
