package v1

import (
	"net/http"

	"circles-of-care-site/internal/delivery/http/response"
	"circles-of-care-site/internal/domain"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	siteUC domain.SiteUsecase
}

func NewServiceHandler(public *gin.RouterGroup, siteUC domain.SiteUsecase) {
	handler := &ServiceHandler{siteUC: siteUC}

	public.GET("/services", handler.ListServices)
	public.GET("/services/:id", handler.GetService)
}

// ListServices godoc
// @Summary      List services
// @Tags         services
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Service}
// @Router       /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	response.Success(c, http.StatusOK, "Services retrieved", h.siteUC.ListServices(c.Request.Context()))
}

// GetService godoc
// @Summary      Get a service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  response.Response{data=domain.Service}
// @Failure      404  {object}  response.Response
// @Router       /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.siteUC.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Service retrieved", svc)
}
