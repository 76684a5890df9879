package domain_test

import (
	"testing"

	"circles-of-care-site/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testSite() *domain.Site {
	return &domain.Site{
		Identity: domain.SiteConfig{ServicesPath: "services"},
		Services: []domain.Service{
			{ID: "support-coordination", Title: "Support Coordination"},
			{ID: "personal-care", Title: "Personal Care"},
			{ID: "plan-management", Title: "NDIS Plan Management"},
		},
		Locations: []domain.Location{{Slug: "gosford", Name: "Gosford"}},
	}
}

func TestSiteLookups(t *testing.T) {
	site := testSite()

	t.Run("Should find services and locations by key", func(t *testing.T) {
		svc, ok := site.ServiceByID("personal-care")
		assert.True(t, ok)
		assert.Equal(t, "Personal Care", svc.Title)

		_, ok = site.ServiceByID("gardening")
		assert.False(t, ok)

		loc, ok := site.LocationBySlug("gosford")
		assert.True(t, ok)
		assert.Equal(t, "Gosford", loc.Name)
	})

	t.Run("Should list ids in catalog order", func(t *testing.T) {
		assert.Equal(t, []string{"support-coordination", "personal-care", "plan-management"}, site.ServiceIDs())
	})

	t.Run("Should exclude the current service from related services", func(t *testing.T) {
		related := site.RelatedServices("support-coordination", 2)
		assert.Len(t, related, 2)
		assert.Equal(t, "personal-care", related[0].ID)
		assert.Equal(t, "plan-management", related[1].ID)
		assert.Len(t, site.RelatedServices("personal-care", 5), 2)
	})
}

func TestSiteTrail(t *testing.T) {
	site := testSite()

	cases := []struct {
		path string
		want []domain.BreadcrumbItem
		ok   bool
	}{
		{"/", []domain.BreadcrumbItem{}, true},
		{"", []domain.BreadcrumbItem{}, true},
		{"/services", []domain.BreadcrumbItem{{Label: "Services"}}, true},
		{"/services/plan-management/", []domain.BreadcrumbItem{
			{Label: "Services", Href: "/services"},
			{Label: "NDIS Plan Management"},
		}, true},
		{"/locations/gosford", []domain.BreadcrumbItem{
			{Label: "Locations", Href: "/locations"},
			{Label: "Gosford"},
		}, true},
		{"/about", []domain.BreadcrumbItem{{Label: "About Us"}}, true},
		{"/for-families/", []domain.BreadcrumbItem{{Label: "For Families"}}, true},
		{"/ndis-resources", []domain.BreadcrumbItem{{Label: "NDIS Resources"}}, true},
		{"/faq", []domain.BreadcrumbItem{}, true},
		{"/contact", []domain.BreadcrumbItem{}, true},
		{"/services/gardening", nil, false},
		{"/locations/sydney", nil, false},
		{"/admin", nil, false},
	}

	for _, tc := range cases {
		t.Run("Should resolve "+tc.path, func(t *testing.T) {
			got, ok := site.Trail(tc.path)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
