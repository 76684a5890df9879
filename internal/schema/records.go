// Package schema builds schema.org structured data records for embedding in
// page output. Every builder is a pure function of its input; records are
// rebuilt on each render and never cached.
package schema

const Context = "https://schema.org"

// Record is implemented by every top level structured data document.
type Record interface {
	SchemaType() string
}

type ImageObject struct {
	Type   string `json:"@type"`
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode"`
	AddressCountry  string `json:"addressCountry"`
}

type GeoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type OpeningHoursSpecification struct {
	Type      string   `json:"@type"`
	DayOfWeek []string `json:"dayOfWeek"`
	Opens     string   `json:"opens"`
	Closes    string   `json:"closes"`
}

type Place struct {
	Type             string `json:"@type"`
	Name             string `json:"name"`
	AddressRegion    string `json:"addressRegion,omitempty"`
	AddressCountry   string `json:"addressCountry,omitempty"`
	ContainedInPlace *Place `json:"containedInPlace,omitempty"`
}

type LocalBusinessRecord struct {
	Context                   string                      `json:"@context"`
	Type                      string                      `json:"@type"`
	ID                        string                      `json:"@id"`
	Name                      string                      `json:"name"`
	AlternateName             string                      `json:"alternateName,omitempty"`
	Description               string                      `json:"description"`
	URL                       string                      `json:"url"`
	Logo                      ImageObject                 `json:"logo"`
	Image                     []string                    `json:"image,omitempty"`
	Telephone                 string                      `json:"telephone"`
	Email                     string                      `json:"email"`
	Address                   PostalAddress               `json:"address"`
	Geo                       GeoCoordinates              `json:"geo"`
	OpeningHoursSpecification []OpeningHoursSpecification `json:"openingHoursSpecification,omitempty"`
	AreaServed                []Place                     `json:"areaServed,omitempty"`
	SameAs                    []string                    `json:"sameAs,omitempty"`
	PriceRange                string                      `json:"priceRange,omitempty"`
	PaymentAccepted           []string                    `json:"paymentAccepted,omitempty"`
	CurrenciesAccepted        string                      `json:"currenciesAccepted,omitempty"`
}

func (LocalBusinessRecord) SchemaType() string { return "LocalBusiness" }

// LocationBusinessRecord is the narrower listing emitted on a location page.
// It serves exactly one place and carries no logo, image or currency.
type LocationBusinessRecord struct {
	Context                   string                      `json:"@context"`
	Type                      string                      `json:"@type"`
	ID                        string                      `json:"@id"`
	Name                      string                      `json:"name"`
	Description               string                      `json:"description"`
	URL                       string                      `json:"url"`
	Telephone                 string                      `json:"telephone"`
	Email                     string                      `json:"email"`
	Address                   PostalAddress               `json:"address"`
	Geo                       GeoCoordinates              `json:"geo"`
	AreaServed                Place                       `json:"areaServed"`
	OpeningHoursSpecification []OpeningHoursSpecification `json:"openingHoursSpecification,omitempty"`
	PriceRange                string                      `json:"priceRange,omitempty"`
	PaymentAccepted           []string                    `json:"paymentAccepted,omitempty"`
	SameAs                    []string                    `json:"sameAs,omitempty"`
}

func (LocationBusinessRecord) SchemaType() string { return "LocalBusiness" }

type ContactPoint struct {
	Type              string `json:"@type"`
	Telephone         string `json:"telephone"`
	ContactType       string `json:"contactType"`
	AreaServed        string `json:"areaServed,omitempty"`
	AvailableLanguage string `json:"availableLanguage,omitempty"`
}

type OrganizationRecord struct {
	Context      string       `json:"@context"`
	Type         string       `json:"@type"`
	Name         string       `json:"name"`
	URL          string       `json:"url"`
	Logo         string       `json:"logo"`
	ContactPoint ContactPoint `json:"contactPoint"`
	SameAs       []string     `json:"sameAs,omitempty"`
}

func (OrganizationRecord) SchemaType() string { return "Organization" }

// EntityRef points at another record by @id instead of repeating its fields.
type EntityRef struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	ID   string `json:"@id"`
}

type Audience struct {
	Type         string `json:"@type"`
	AudienceType string `json:"audienceType"`
}

type ServiceChannel struct {
	Type         string `json:"@type"`
	ServiceURL   string `json:"serviceUrl"`
	ServicePhone string `json:"servicePhone"`
}

type ServiceRecord struct {
	Context          string         `json:"@context"`
	Type             string         `json:"@type"`
	Name             string         `json:"name"`
	ServiceType      string         `json:"serviceType"`
	Description      string         `json:"description"`
	Provider         EntityRef      `json:"provider"`
	AreaServed       *Place         `json:"areaServed,omitempty"`
	Audience         *Audience      `json:"audience,omitempty"`
	AvailableChannel ServiceChannel `json:"availableChannel"`
}

func (ServiceRecord) SchemaType() string { return "Service" }

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type FAQPageRecord struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

func (FAQPageRecord) SchemaType() string { return "FAQPage" }

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type BreadcrumbListRecord struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

func (BreadcrumbListRecord) SchemaType() string { return "BreadcrumbList" }
