// Package web serves the server rendered pages. Every page embeds the
// business and organisation JSON-LD records plus its own, all generated per
// request from the catalog.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"circles-of-care-site/internal/delivery/http/response"
	"circles-of-care-site/internal/domain"
	"circles-of-care-site/internal/schema"
	"circles-of-care-site/pkg/logger"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.tmpl")
}

// Page is the data every template receives
type Page struct {
	Site        *domain.Site
	Title       string
	Description string
	Canonical   string
	JSONLD      template.HTML
	Trail       []domain.BreadcrumbItem
	Data        interface{}
}

type Handler struct {
	siteUC    domain.SiteUsecase
	contactUC domain.ContactUsecase
}

// Register mounts the HTML pages on r. contactLimit guards form posts.
func Register(r *gin.Engine, siteUC domain.SiteUsecase, contactUC domain.ContactUsecase, contactLimit gin.HandlerFunc) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	h := &Handler{siteUC: siteUC, contactUC: contactUC}

	servicesPath := "/" + siteUC.Site().Identity.ServicesPath
	r.GET("/", h.Home)
	r.GET(servicesPath, h.Services)
	r.GET(servicesPath+"/:id", h.Service)
	r.GET("/locations/:slug", h.Location)
	r.GET("/faq", h.FAQ)
	r.GET("/about", h.About)
	r.GET("/for-families", h.ForFamilies)
	r.GET("/ndis-resources", h.Resources)
	r.GET("/contact", h.ContactForm)
	r.POST("/contact", contactLimit, h.SubmitContact)
	r.NoRoute(h.NotFound)
	return nil
}

func (h *Handler) Home(c *gin.Context) {
	site := h.siteUC.Site()
	h.render(c, http.StatusOK, "home.tmpl", Page{
		Title:       "NDIS Disability Support Provider " + site.Identity.ServiceArea,
		Description: site.Identity.Description,
	})
}

func (h *Handler) Services(c *gin.Context) {
	h.render(c, http.StatusOK, "services.tmpl", Page{
		Title:       "Our NDIS Services",
		Description: "NDIS disability support services in " + h.siteUC.Site().Identity.ServiceArea + ".",
	})
}

type serviceView struct {
	Service domain.Service
	Related []domain.Service
}

func (h *Handler) Service(c *gin.Context) {
	site := h.siteUC.Site()
	svc, err := h.siteUC.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.NotFound(c)
		return
	}
	h.render(c, http.StatusOK, "service.tmpl", Page{
		Title:       svc.Title,
		Description: svc.Description,
		Data: serviceView{
			Service: *svc,
			Related: site.RelatedServices(svc.ID, 3),
		},
	}, schema.ServiceFromCatalog(site.Identity, *svc))
}

func (h *Handler) Location(c *gin.Context) {
	site := h.siteUC.Site()
	loc, err := h.siteUC.GetLocation(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.NotFound(c)
		return
	}
	h.render(c, http.StatusOK, "location.tmpl", Page{
		Title:       "NDIS Provider in " + loc.Name,
		Description: loc.Description,
		Data:        loc,
	}, schema.LocationBusiness(site.Identity, *loc))
}

func (h *Handler) FAQ(c *gin.Context) {
	h.render(c, http.StatusOK, "faq.tmpl", Page{
		Title:       "Frequently Asked Questions",
		Description: "Answers to common questions about NDIS support.",
	}, schema.FAQPage(h.siteUC.Site().FAQs))
}

func (h *Handler) About(c *gin.Context) {
	site := h.siteUC.Site()
	h.render(c, http.StatusOK, "about.tmpl", Page{
		Title:       "About Us",
		Description: "Learn about " + site.Identity.Name + ", a trusted NDIS disability support provider on the " + site.Identity.ServiceArea + ".",
	})
}

func (h *Handler) ForFamilies(c *gin.Context) {
	h.render(c, http.StatusOK, "families.tmpl", Page{
		Title:       "For Families",
		Description: "Support for the families and carers of NDIS participants.",
	})
}

func (h *Handler) Resources(c *gin.Context) {
	h.render(c, http.StatusOK, "resources.tmpl", Page{
		Title:       "NDIS Resources & Guides",
		Description: "Guides to NDIS funding and links to independent support organisations.",
	})
}

// NotFound renders the HTML 404 page, or the JSON envelope under /v1.
func (h *Handler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/v1/") {
		response.Error(c, http.StatusNotFound, "Resource not found", nil)
		return
	}
	h.render(c, http.StatusNotFound, "notfound.tmpl", Page{Title: "Page Not Found"})
}

// render fills in the shared page fields and writes the template. The
// breadcrumb trail and its record come from the request path.
func (h *Handler) render(c *gin.Context, code int, name string, page Page, records ...schema.Record) {
	site := h.siteUC.Site()
	page.Site = site
	page.Canonical = site.Identity.URL + c.Request.URL.Path

	all := []schema.Record{
		schema.LocalBusiness(site.Identity),
		schema.Organization(site.Identity),
	}
	all = append(all, records...)
	if trail, ok := site.Trail(c.Request.URL.Path); ok && len(trail) > 0 {
		page.Trail = trail
		all = append(all, schema.Breadcrumbs(site.Identity, trail))
	}

	jsonLD, err := schema.JSONLD(all...)
	if err != nil {
		logger.Log.Error("Failed to encode structured data", "page", name, "error", err)
		c.HTML(http.StatusInternalServerError, "error.tmpl", nil)
		return
	}
	page.JSONLD = jsonLD

	c.HTML(code, name, page)
}
