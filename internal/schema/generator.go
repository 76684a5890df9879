package schema

import (
	"strings"

	"circles-of-care-site/internal/domain"
)

const (
	logoWidth  = 300
	logoHeight = 100

	homeLabel          = "Home"
	contactType        = "customer service"
	organizationAnchor = "/#organization"
	locationsPath      = "locations"
)

// ServiceInput is the subset of a catalog service a Service record needs.
// Category is the URL segment the service lives under; the site's
// ServicesPath is used when it is empty.
type ServiceInput struct {
	ID          string
	Title       string
	Description string
	Category    string
}

// BusinessID is the stable @id other records use to reference the business.
func BusinessID(site domain.SiteConfig) string {
	return site.URL + organizationAnchor
}

// LocalBusiness maps the business identity into a LocalBusiness listing.
func LocalBusiness(site domain.SiteConfig) LocalBusinessRecord {
	rec := LocalBusinessRecord{
		Context:       Context,
		Type:          "LocalBusiness",
		ID:            BusinessID(site),
		Name:          site.Name,
		AlternateName: site.AlternateName,
		Description:   site.Description,
		URL:           site.URL,
		Logo: ImageObject{
			Type:   "ImageObject",
			URL:    site.URL + site.LogoPath,
			Width:  logoWidth,
			Height: logoHeight,
		},
		Telephone:                 site.PhoneE164,
		Email:                     site.Email,
		Address:                   postalAddress(site.Address),
		Geo:                       geo(site.Geo),
		OpeningHoursSpecification: openingHours(site.Hours),
		SameAs:                    sameAs(site.Social),
		PriceRange:                site.PriceRange,
		PaymentAccepted:           site.PaymentAccepted,
		CurrenciesAccepted:        site.Currency,
	}

	if site.ImagePath != "" {
		rec.Image = []string{site.URL + site.ImagePath}
	}
	for _, a := range site.AreasServed {
		rec.AreaServed = append(rec.AreaServed, Place{
			Type:           a.Kind,
			Name:           a.Name,
			AddressRegion:  a.Region,
			AddressCountry: a.Country,
		})
	}
	return rec
}

// LocationBusiness is the listing for one service area page. It shares the
// business contact details but has its own @id, URL and coordinates, and
// serves a single city inside the wider region.
func LocationBusiness(site domain.SiteConfig, loc domain.Location) LocationBusinessRecord {
	pageURL := joinURL(site.URL, locationsPath, loc.Slug)

	description := "NDIS disability support services in " + loc.Name
	if site.ServiceArea != "" {
		description += ", " + site.ServiceArea
	}

	city := Place{Type: "City", Name: loc.Name}
	for _, a := range site.AreasServed {
		if a.Kind == "AdministrativeArea" {
			city.ContainedInPlace = &Place{
				Type:           a.Kind,
				Name:           a.Name,
				AddressRegion:  a.Region,
				AddressCountry: a.Country,
			}
			break
		}
	}

	return LocationBusinessRecord{
		Context:                   Context,
		Type:                      "LocalBusiness",
		ID:                        pageURL + "#organization",
		Name:                      site.Name + " - " + loc.Name,
		Description:               description + ".",
		URL:                       pageURL,
		Telephone:                 site.PhoneE164,
		Email:                     site.Email,
		Address:                   postalAddress(site.Address),
		Geo:                       geo(loc.Coordinates),
		AreaServed:                city,
		OpeningHoursSpecification: openingHours(site.Hours),
		PriceRange:                site.PriceRange,
		PaymentAccepted:           site.PaymentAccepted,
		SameAs:                    sameAs(site.Social),
	}
}

func postalAddress(a domain.Address) PostalAddress {
	return PostalAddress{
		Type:            "PostalAddress",
		StreetAddress:   a.Street,
		AddressLocality: a.City,
		AddressRegion:   a.State,
		PostalCode:      a.Postcode,
		AddressCountry:  a.CountryCode,
	}
}

func geo(g domain.GeoCoordinates) GeoCoordinates {
	return GeoCoordinates{Type: "GeoCoordinates", Latitude: g.Latitude, Longitude: g.Longitude}
}

func openingHours(hours []domain.OpeningHours) []OpeningHoursSpecification {
	var out []OpeningHoursSpecification
	for _, h := range hours {
		out = append(out, OpeningHoursSpecification{
			Type:      "OpeningHoursSpecification",
			DayOfWeek: h.Days,
			Opens:     h.Opens,
			Closes:    h.Closes,
		})
	}
	return out
}

// Organization is the narrower organisation view of the same identity.
func Organization(site domain.SiteConfig) OrganizationRecord {
	return OrganizationRecord{
		Context: Context,
		Type:    "Organization",
		Name:    site.Name,
		URL:     site.URL,
		Logo:    site.URL + site.LogoPath,
		ContactPoint: ContactPoint{
			Type:              "ContactPoint",
			Telephone:         site.PhoneE164,
			ContactType:       contactType,
			AreaServed:        site.Address.CountryCode,
			AvailableLanguage: site.Language,
		},
		SameAs: sameAs(site.Social),
	}
}

// Service describes one catalog service. The provider is referenced by the
// business @id rather than by copying business fields.
func Service(site domain.SiteConfig, svc ServiceInput) ServiceRecord {
	category := strings.Trim(svc.Category, "/")
	if category == "" {
		category = site.ServicesPath
	}

	rec := ServiceRecord{
		Context:     Context,
		Type:        "Service",
		Name:        svc.Title,
		ServiceType: svc.Title,
		Description: svc.Description,
		Provider: EntityRef{
			Type: "LocalBusiness",
			Name: site.Name,
			ID:   BusinessID(site),
		},
		AvailableChannel: ServiceChannel{
			Type:         "ServiceChannel",
			ServiceURL:   joinURL(site.URL, category, svc.ID),
			ServicePhone: site.PhoneE164,
		},
	}
	if site.ServiceArea != "" {
		rec.AreaServed = &Place{Type: "AdministrativeArea", Name: site.ServiceArea}
	}
	if site.Audience != "" {
		rec.Audience = &Audience{Type: "PeopleAudience", AudienceType: site.Audience}
	}
	return rec
}

// ServiceFromCatalog builds the Service record for a catalog entry, using
// the long description when one exists.
func ServiceFromCatalog(site domain.SiteConfig, svc domain.Service) ServiceRecord {
	desc := svc.LongDescription
	if desc == "" {
		desc = svc.Description
	}
	return Service(site, ServiceInput{ID: svc.ID, Title: svc.Title, Description: desc})
}

// FAQPage keeps question order. An empty list yields an empty mainEntity.
func FAQPage(faqs []domain.FAQ) FAQPageRecord {
	questions := make([]Question, 0, len(faqs))
	for _, f := range faqs {
		questions = append(questions, Question{
			Type: "Question",
			Name: f.Question,
			AcceptedAnswer: Answer{
				Type: "Answer",
				Text: f.Answer,
			},
		})
	}
	return FAQPageRecord{
		Context:    Context,
		Type:       "FAQPage",
		MainEntity: questions,
	}
}

// Breadcrumbs lists the trail from the site root to the current page. Home is
// always position 1; items without an href point at the site root.
func Breadcrumbs(site domain.SiteConfig, items []domain.BreadcrumbItem) BreadcrumbListRecord {
	list := make([]ListItem, 0, len(items)+1)
	list = append(list, ListItem{Type: "ListItem", Position: 1, Name: homeLabel, Item: site.URL})
	for i, item := range items {
		list = append(list, ListItem{
			Type:     "ListItem",
			Position: i + 2,
			Name:     item.Label,
			Item:     resolveHref(site.URL, item.Href),
		})
	}
	return BreadcrumbListRecord{
		Context:         Context,
		Type:            "BreadcrumbList",
		ItemListElement: list,
	}
}

func resolveHref(base, href string) string {
	switch {
	case href == "":
		return base
	case strings.HasPrefix(href, "https://"), strings.HasPrefix(href, "http://"):
		return href
	case strings.HasPrefix(href, "/"):
		return base + href
	default:
		return base + "/" + href
	}
}

func joinURL(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, seg := range segments {
		b.WriteByte('/')
		b.WriteString(strings.Trim(seg, "/"))
	}
	return b.String()
}

func sameAs(s domain.SocialLinks) []string {
	var out []string
	for _, link := range []string{s.Facebook, s.LinkedIn} {
		if link != "" {
			out = append(out, link)
		}
	}
	return out
}
