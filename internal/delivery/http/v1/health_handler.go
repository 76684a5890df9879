package v1

import (
	"net/http"

	"circles-of-care-site/internal/delivery/http/response"
	"circles-of-care-site/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(public *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	public.GET("/health", handler.Health)
}

// Health godoc
// @Summary      Health check
// @Description  Pages are served even when optional dependencies are down, so this always returns 200.
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	report, healthy := h.healthUC.Check(c.Request.Context())
	message := "System operational"
	if !healthy {
		message = "System degraded"
	}
	response.Success(c, http.StatusOK, message, report)
}
