package domain

import (
	"context"
	"strings"
)

// Site is the static catalog rendered across the website. It is loaded once at
// start-up and treated as read-only afterwards.
type Site struct {
	Identity     SiteConfig    `yaml:"identity" json:"identity"`
	Services     []Service     `yaml:"services" json:"services" validate:"required,min=1,unique=ID,dive"`
	Locations    []Location    `yaml:"locations" json:"locations" validate:"unique=Slug,dive"`
	FAQs         []FAQ         `yaml:"faqs" json:"faqs" validate:"dive"`
	Testimonials []Testimonial `yaml:"testimonials" json:"testimonials" validate:"dive"`
	Stats        []Stat        `yaml:"stats" json:"stats" validate:"dive"`
}

// SiteConfig is the business identity shared by every page and record.
type SiteConfig struct {
	Name            string         `yaml:"name" json:"name" validate:"required"`
	AlternateName   string         `yaml:"alternateName" json:"alternateName,omitempty"`
	Description     string         `yaml:"description" json:"description" validate:"required"`
	URL             string         `yaml:"url" json:"url" validate:"required,url"`
	Phone           string         `yaml:"phone" json:"phone" validate:"required"`
	PhoneE164       string         `yaml:"phoneE164" json:"phoneE164" validate:"required,e164"`
	Email           string         `yaml:"email" json:"email" validate:"required,email"`
	Address         Address        `yaml:"address" json:"address"`
	Geo             GeoCoordinates `yaml:"geo" json:"geo"`
	Hours           []OpeningHours `yaml:"hours" json:"hours" validate:"dive"`
	PaymentAccepted []string       `yaml:"paymentAccepted" json:"paymentAccepted,omitempty"`
	Currency        string         `yaml:"currency" json:"currency,omitempty"`
	PriceRange      string         `yaml:"priceRange" json:"priceRange,omitempty"`
	LogoPath        string         `yaml:"logoPath" json:"logoPath" validate:"required,startswith=/"`
	ImagePath       string         `yaml:"imagePath" json:"imagePath,omitempty" validate:"omitempty,startswith=/"`
	Social          SocialLinks    `yaml:"social" json:"social"`
	AreasServed     []Area         `yaml:"areasServed" json:"areasServed,omitempty" validate:"dive"`
	ServiceArea     string         `yaml:"serviceArea" json:"serviceArea,omitempty"`
	Audience        string         `yaml:"audience" json:"audience,omitempty"`
	Language        string         `yaml:"language" json:"language,omitempty"`
	// Path segment under which service pages live, e.g. "services"
	ServicesPath string `yaml:"servicesPath" json:"servicesPath"`
}

type Address struct {
	Street      string `yaml:"street" json:"street" validate:"required"`
	City        string `yaml:"city" json:"city" validate:"required"`
	State       string `yaml:"state" json:"state" validate:"required"`
	Postcode    string `yaml:"postcode" json:"postcode" validate:"required"`
	Country     string `yaml:"country" json:"country"`
	CountryCode string `yaml:"countryCode" json:"countryCode" validate:"required,iso3166_1_alpha2"`
}

type GeoCoordinates struct {
	Latitude  float64 `yaml:"latitude" json:"latitude" validate:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude" validate:"longitude"`
}

type OpeningHours struct {
	Days   []string `yaml:"days" json:"days" validate:"required,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Opens  string   `yaml:"opens" json:"opens" validate:"required,datetime=15:04"`
	Closes string   `yaml:"closes" json:"closes" validate:"required,datetime=15:04"`
}

type SocialLinks struct {
	Facebook string `yaml:"facebook" json:"facebook,omitempty" validate:"omitempty,url"`
	LinkedIn string `yaml:"linkedin" json:"linkedin,omitempty" validate:"omitempty,url"`
}

// Area is a place the business serves. Kind is the schema.org type, e.g. City.
type Area struct {
	Kind    string `yaml:"kind" json:"kind" validate:"required,oneof=City AdministrativeArea"`
	Name    string `yaml:"name" json:"name" validate:"required"`
	Region  string `yaml:"region" json:"region,omitempty"`
	Country string `yaml:"country" json:"country,omitempty"`
}

type Service struct {
	ID              string   `yaml:"id" json:"id" validate:"required,hostname_rfc1123"`
	Title           string   `yaml:"title" json:"title" validate:"required"`
	ShortTitle      string   `yaml:"shortTitle" json:"shortTitle"`
	Description     string   `yaml:"description" json:"description" validate:"required"`
	LongDescription string   `yaml:"longDescription" json:"longDescription"`
	Icon            string   `yaml:"icon" json:"icon"`
	Features        []string `yaml:"features" json:"features"`
}

type Location struct {
	Slug        string         `yaml:"slug" json:"slug" validate:"required"`
	Name        string         `yaml:"name" json:"name" validate:"required"`
	Description string         `yaml:"description" json:"description"`
	NearbyAreas []string       `yaml:"nearbyAreas" json:"nearbyAreas"`
	Coordinates GeoCoordinates `yaml:"coordinates" json:"coordinates"`
}

type FAQ struct {
	Question string `yaml:"question" json:"question" validate:"required"`
	Answer   string `yaml:"answer" json:"answer" validate:"required"`
}

type Testimonial struct {
	Name    string `yaml:"name" json:"name" validate:"required"`
	Role    string `yaml:"role" json:"role"`
	Content string `yaml:"content" json:"content" validate:"required"`
	Rating  int    `yaml:"rating" json:"rating" validate:"min=1,max=5"`
}

type Stat struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// BreadcrumbItem is one step of a navigation trail below the site root.
// An empty Href marks the current page.
type BreadcrumbItem struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

// ServiceByID returns the catalog entry for id, or false when it does not exist.
func (s *Site) ServiceByID(id string) (Service, bool) {
	for _, svc := range s.Services {
		if svc.ID == id {
			return svc, true
		}
	}
	return Service{}, false
}

func (s *Site) LocationBySlug(slug string) (Location, bool) {
	for _, loc := range s.Locations {
		if loc.Slug == slug {
			return loc, true
		}
	}
	return Location{}, false
}

// ServiceIDs lists the catalog ids in declaration order.
func (s *Site) ServiceIDs() []string {
	ids := make([]string, len(s.Services))
	for i, svc := range s.Services {
		ids[i] = svc.ID
	}
	return ids
}

// RelatedServices returns up to n services other than id, in catalog order.
func (s *Site) RelatedServices(id string, n int) []Service {
	var out []Service
	for _, svc := range s.Services {
		if len(out) >= n {
			break
		}
		if svc.ID != id {
			out = append(out, svc)
		}
	}
	return out
}

// pageLabels holds the single segment pages and their breadcrumb label.
// An empty label means the page shows no breadcrumb.
var pageLabels = map[string]string{
	"about":          "About Us",
	"for-families":   "For Families",
	"ndis-resources": "NDIS Resources",
	"faq":            "",
	"contact":        "",
}

// Trail returns the breadcrumb items below Home for a page path served by the
// site, or false when the path is not a known page. Pages without a
// breadcrumb (home, FAQ, contact) have an empty trail.
func (s *Site) Trail(path string) ([]BreadcrumbItem, bool) {
	servicesPath := s.Identity.ServicesPath
	if servicesPath == "" {
		servicesPath = "services"
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case len(parts) == 1 && parts[0] == "":
		return []BreadcrumbItem{}, true
	case len(parts) == 1 && parts[0] == servicesPath:
		return []BreadcrumbItem{{Label: "Services"}}, true
	case len(parts) == 2 && parts[0] == servicesPath:
		svc, ok := s.ServiceByID(parts[1])
		if !ok {
			return nil, false
		}
		return []BreadcrumbItem{{Label: "Services", Href: "/" + servicesPath}, {Label: svc.Title}}, true
	case len(parts) == 2 && parts[0] == "locations":
		loc, ok := s.LocationBySlug(parts[1])
		if !ok {
			return nil, false
		}
		return []BreadcrumbItem{{Label: "Locations", Href: "/locations"}, {Label: loc.Name}}, true
	case len(parts) == 1:
		if label, ok := pageLabels[parts[0]]; ok {
			if label == "" {
				return []BreadcrumbItem{}, true
			}
			return []BreadcrumbItem{{Label: label}}, true
		}
	}
	return nil, false
}

// SiteUsecase exposes the read-only catalog to the delivery layer
type SiteUsecase interface {
	Site() *Site
	GetService(ctx context.Context, id string) (*Service, error)
	GetLocation(ctx context.Context, slug string) (*Location, error)
	ListServices(ctx context.Context) []Service
}
