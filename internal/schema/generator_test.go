package schema_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circles-of-care-site/internal/domain"
	"circles-of-care-site/internal/schema"
)

func testSite() domain.SiteConfig {
	return domain.SiteConfig{
		Name:          "My Circles of Care",
		AlternateName: "MCOC",
		Description:   "NDIS support",
		URL:           "https://mycirclesofcare.com.au",
		Phone:         "0413 610 404",
		PhoneE164:     "+61413610404",
		Email:         "contact@mycirclesofcare.com.au",
		Address: domain.Address{
			Street: "152 Mann St", City: "Gosford", State: "NSW", Postcode: "2250", CountryCode: "AU",
		},
		Geo:             domain.GeoCoordinates{Latitude: -33.4269, Longitude: 151.342},
		Hours:           []domain.OpeningHours{{Days: []string{"Monday", "Friday"}, Opens: "09:00", Closes: "17:00"}},
		PaymentAccepted: []string{"NDIS Funding"},
		Currency:        "AUD",
		PriceRange:      "$$",
		LogoPath:        "/images/logo.PNG",
		ImagePath:       "/images/hero.jpg",
		Social:          domain.SocialLinks{Facebook: "https://facebook.example/mcoc"},
		AreasServed: []domain.Area{
			{Kind: "City", Name: "Gosford"},
			{Kind: "AdministrativeArea", Name: "Central Coast", Region: "NSW", Country: "AU"},
		},
		ServiceArea:  "Central Coast NSW",
		Audience:     "NDIS Participants",
		Language:     "English",
		ServicesPath: "services",
	}
}

func toMap(t *testing.T, rec schema.Record) map[string]any {
	t.Helper()
	data, err := schema.Marshal(rec)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestBreadcrumbs(t *testing.T) {
	site := testSite()
	rec := schema.Breadcrumbs(site, []domain.BreadcrumbItem{
		{Label: "Services", Href: "/services"},
		{Label: "Support Coordination"},
	})

	want := []schema.ListItem{
		{Type: "ListItem", Position: 1, Name: "Home", Item: "https://mycirclesofcare.com.au"},
		{Type: "ListItem", Position: 2, Name: "Services", Item: "https://mycirclesofcare.com.au/services"},
		{Type: "ListItem", Position: 3, Name: "Support Coordination", Item: "https://mycirclesofcare.com.au"},
	}
	if diff := cmp.Diff(want, rec.ItemListElement); diff != "" {
		t.Fatalf("breadcrumb mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "BreadcrumbList", rec.Type)
	assert.Equal(t, "https://schema.org", rec.Context)
}

func TestBreadcrumbs_HrefForms(t *testing.T) {
	rec := schema.Breadcrumbs(testSite(), []domain.BreadcrumbItem{
		{Label: "Locations", Href: "locations"},
		{Label: "Partner", Href: "https://ndis.gov.au"},
	})
	assert.Equal(t, "https://mycirclesofcare.com.au/locations", rec.ItemListElement[1].Item)
	assert.Equal(t, "https://ndis.gov.au", rec.ItemListElement[2].Item)
}

func TestFAQPage(t *testing.T) {
	t.Run("Should keep question order", func(t *testing.T) {
		rec := schema.FAQPage([]domain.FAQ{
			{Question: "Q2", Answer: "A2"},
			{Question: "Q1", Answer: "A1"},
		})
		require.Len(t, rec.MainEntity, 2)
		assert.Equal(t, "Q2", rec.MainEntity[0].Name)
		assert.Equal(t, "A1", rec.MainEntity[1].AcceptedAnswer.Text)
	})

	t.Run("Should serialise an empty list as an empty array", func(t *testing.T) {
		got := toMap(t, schema.FAQPage(nil))
		want := map[string]any{
			"@context":   "https://schema.org",
			"@type":      "FAQPage",
			"mainEntity": []any{},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("faq mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestService(t *testing.T) {
	site := testSite()
	got := toMap(t, schema.Service(site, schema.ServiceInput{
		ID:          "support-coordination",
		Title:       "Support Coordination",
		Description: "Helps you navigate the NDIS.",
	}))

	want := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        "Support Coordination",
		"serviceType": "Support Coordination",
		"description": "Helps you navigate the NDIS.",
		"provider": map[string]any{
			"@type": "LocalBusiness",
			"name":  "My Circles of Care",
			"@id":   "https://mycirclesofcare.com.au/#organization",
		},
		"areaServed": map[string]any{"@type": "AdministrativeArea", "name": "Central Coast NSW"},
		"audience":   map[string]any{"@type": "PeopleAudience", "audienceType": "NDIS Participants"},
		"availableChannel": map[string]any{
			"@type":        "ServiceChannel",
			"serviceUrl":   "https://mycirclesofcare.com.au/services/support-coordination",
			"servicePhone": "+61413610404",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("service mismatch (-want +got):\n%s", diff)
	}
}

func TestService_Category(t *testing.T) {
	rec := schema.Service(testSite(), schema.ServiceInput{ID: "gosford", Title: "Gosford", Category: "/locations/"})
	assert.Equal(t, "https://mycirclesofcare.com.au/locations/gosford", rec.AvailableChannel.ServiceURL)
}

func TestServiceFromCatalog(t *testing.T) {
	svc := domain.Service{ID: "personal-care", Title: "Personal Activities", Description: "short", LongDescription: "long"}
	assert.Equal(t, "long", schema.ServiceFromCatalog(testSite(), svc).Description)

	svc.LongDescription = ""
	assert.Equal(t, "short", schema.ServiceFromCatalog(testSite(), svc).Description)
}

func TestLocalBusiness(t *testing.T) {
	site := testSite()
	rec := schema.LocalBusiness(site)

	assert.Equal(t, schema.BusinessID(site), rec.ID)
	assert.Equal(t, schema.Service(site, schema.ServiceInput{ID: "x"}).Provider.ID, rec.ID)

	got := toMap(t, rec)
	assert.Equal(t, "LocalBusiness", got["@type"])
	assert.Equal(t, "https://mycirclesofcare.com.au/#organization", got["@id"])
	assert.Equal(t, map[string]any{
		"@type": "ImageObject", "url": "https://mycirclesofcare.com.au/images/logo.PNG", "width": float64(300), "height": float64(100),
	}, got["logo"])
	assert.Equal(t, map[string]any{
		"@type": "PostalAddress", "streetAddress": "152 Mann St", "addressLocality": "Gosford",
		"addressRegion": "NSW", "postalCode": "2250", "addressCountry": "AU",
	}, got["address"])
	assert.Equal(t, []any{
		map[string]any{"@type": "City", "name": "Gosford"},
		map[string]any{"@type": "AdministrativeArea", "name": "Central Coast", "addressRegion": "NSW", "addressCountry": "AU"},
	}, got["areaServed"])
	assert.Equal(t, []any{"https://facebook.example/mcoc"}, got["sameAs"])
	assert.Equal(t, []any{"https://mycirclesofcare.com.au/images/hero.jpg"}, got["image"])
	assert.Equal(t, "AUD", got["currenciesAccepted"])
}

func TestLocationBusiness(t *testing.T) {
	site := testSite()
	loc := domain.Location{
		Slug:        "woy-woy",
		Name:        "Woy Woy",
		Coordinates: domain.GeoCoordinates{Latitude: -33.4854, Longitude: 151.3234},
	}

	got := toMap(t, schema.LocationBusiness(site, loc))
	want := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "LocalBusiness",
		"@id":         "https://mycirclesofcare.com.au/locations/woy-woy#organization",
		"name":        "My Circles of Care - Woy Woy",
		"description": "NDIS disability support services in Woy Woy, Central Coast NSW.",
		"url":         "https://mycirclesofcare.com.au/locations/woy-woy",
		"telephone":   "+61413610404",
		"email":       "contact@mycirclesofcare.com.au",
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   "152 Mann St",
			"addressLocality": "Gosford",
			"addressRegion":   "NSW",
			"postalCode":      "2250",
			"addressCountry":  "AU",
		},
		"geo": map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  -33.4854,
			"longitude": 151.3234,
		},
		"areaServed": map[string]any{
			"@type": "City",
			"name":  "Woy Woy",
			"containedInPlace": map[string]any{
				"@type":          "AdministrativeArea",
				"name":           "Central Coast",
				"addressRegion":  "NSW",
				"addressCountry": "AU",
			},
		},
		"openingHoursSpecification": []any{
			map[string]any{
				"@type":     "OpeningHoursSpecification",
				"dayOfWeek": []any{"Monday", "Friday"},
				"opens":     "09:00",
				"closes":    "17:00",
			},
		},
		"priceRange":      "$$",
		"paymentAccepted": []any{"NDIS Funding"},
		"sameAs":          []any{"https://facebook.example/mcoc"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("location business mismatch (-want +got):\n%s", diff)
	}

	// The site-wide listing is untouched
	assert.Equal(t, schema.BusinessID(site), schema.LocalBusiness(site).ID)
}

func TestOrganization(t *testing.T) {
	got := toMap(t, schema.Organization(testSite()))
	want := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     "My Circles of Care",
		"url":      "https://mycirclesofcare.com.au",
		"logo":     "https://mycirclesofcare.com.au/images/logo.PNG",
		"contactPoint": map[string]any{
			"@type":             "ContactPoint",
			"telephone":         "+61413610404",
			"contactType":       "customer service",
			"areaServed":        "AU",
			"availableLanguage": "English",
		},
		"sameAs": []any{"https://facebook.example/mcoc"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("organization mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONLD(t *testing.T) {
	out, err := schema.JSONLD(
		schema.FAQPage([]domain.FAQ{{Question: "</script><b>", Answer: "a & b"}}),
		schema.Breadcrumbs(testSite(), nil),
	)
	require.NoError(t, err)

	html := string(out)
	assert.Equal(t, 2, strings.Count(html, `<script type="application/ld+json">`))
	assert.Equal(t, 2, strings.Count(html, "</script>"))
	assert.Contains(t, html, `\u003c/script\u003e\u003cb\u003e`)
	assert.Contains(t, html, `a \u0026 b`)
}
