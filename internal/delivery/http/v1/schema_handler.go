package v1

import (
	"net/http"

	"circles-of-care-site/internal/delivery/http/response"
	"circles-of-care-site/internal/domain"
	"circles-of-care-site/internal/schema"
	"circles-of-care-site/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// SchemaHandler serves the structured data records as standalone JSON-LD
// documents. Records are generated per request from the catalog.
type SchemaHandler struct {
	siteUC domain.SiteUsecase
}

func NewSchemaHandler(public *gin.RouterGroup, siteUC domain.SiteUsecase) {
	handler := &SchemaHandler{siteUC: siteUC}

	group := public.Group("/schema")
	group.GET("/business", handler.Business)
	group.GET("/organization", handler.Organization)
	group.GET("/services/:id", handler.Service)
	group.GET("/locations/:slug", handler.Location)
	group.GET("/faq", handler.FAQ)
	group.GET("/breadcrumbs", handler.Breadcrumbs)
}

// Business godoc
// @Summary      LocalBusiness record
// @Tags         schema
// @Produce      json
// @Success      200  {object}  schema.LocalBusinessRecord
// @Router       /schema/business [get]
func (h *SchemaHandler) Business(c *gin.Context) {
	response.Record(c, http.StatusOK, schema.LocalBusiness(h.siteUC.Site().Identity))
}

// Organization godoc
// @Summary      Organization record
// @Tags         schema
// @Produce      json
// @Success      200  {object}  schema.OrganizationRecord
// @Router       /schema/organization [get]
func (h *SchemaHandler) Organization(c *gin.Context) {
	response.Record(c, http.StatusOK, schema.Organization(h.siteUC.Site().Identity))
}

// Service godoc
// @Summary      Service record
// @Tags         schema
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  schema.ServiceRecord
// @Failure      404  {object}  response.Response
// @Router       /schema/services/{id} [get]
func (h *SchemaHandler) Service(c *gin.Context) {
	svc, err := h.siteUC.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Record(c, http.StatusOK, schema.ServiceFromCatalog(h.siteUC.Site().Identity, *svc))
}

// Location godoc
// @Summary      LocalBusiness record for a service area page
// @Tags         schema
// @Produce      json
// @Param        slug  path      string  true  "Location slug"
// @Success      200   {object}  schema.LocalBusinessRecord
// @Failure      404   {object}  response.Response
// @Router       /schema/locations/{slug} [get]
func (h *SchemaHandler) Location(c *gin.Context) {
	loc, err := h.siteUC.GetLocation(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Record(c, http.StatusOK, schema.LocationBusiness(h.siteUC.Site().Identity, *loc))
}

// FAQ godoc
// @Summary      FAQPage record
// @Tags         schema
// @Produce      json
// @Success      200  {object}  schema.FAQPageRecord
// @Router       /schema/faq [get]
func (h *SchemaHandler) FAQ(c *gin.Context) {
	response.Record(c, http.StatusOK, schema.FAQPage(h.siteUC.Site().FAQs))
}

// Breadcrumbs godoc
// @Summary      BreadcrumbList record for a page path
// @Tags         schema
// @Produce      json
// @Param        path  query     string  true  "Page path, e.g. /services/plan-management"
// @Success      200   {object}  schema.BreadcrumbListRecord
// @Failure      404   {object}  response.Response
// @Router       /schema/breadcrumbs [get]
func (h *SchemaHandler) Breadcrumbs(c *gin.Context) {
	site := h.siteUC.Site()
	items, ok := site.Trail(c.Query("path"))
	if !ok {
		c.Error(apperror.NotFound("Page not found"))
		return
	}
	response.Record(c, http.StatusOK, schema.Breadcrumbs(site.Identity, items))
}
