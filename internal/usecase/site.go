package usecase

import (
	"context"

	"circles-of-care-site/internal/domain"
	"circles-of-care-site/pkg/apperror"
)

type siteUsecase struct {
	site *domain.Site
}

// NewSiteUsecase serves the catalog loaded at start-up
func NewSiteUsecase(site *domain.Site) domain.SiteUsecase {
	return &siteUsecase{site: site}
}

func (uc *siteUsecase) Site() *domain.Site {
	return uc.site
}

func (uc *siteUsecase) GetService(ctx context.Context, id string) (*domain.Service, error) {
	svc, ok := uc.site.ServiceByID(id)
	if !ok {
		return nil, apperror.NotFound("Service not found")
	}
	return &svc, nil
}

func (uc *siteUsecase) GetLocation(ctx context.Context, slug string) (*domain.Location, error) {
	loc, ok := uc.site.LocationBySlug(slug)
	if !ok {
		return nil, apperror.NotFound("Location not found")
	}
	return &loc, nil
}

func (uc *siteUsecase) ListServices(ctx context.Context) []domain.Service {
	out := make([]domain.Service, len(uc.site.Services))
	copy(out, uc.site.Services)
	return out
}
