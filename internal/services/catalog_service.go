package services

import (
	"github.com/nlitvin/pytrail/internal/catalog"
)

// CatalogService exposes the read-only module catalog.
type CatalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(cat *catalog.Catalog) *CatalogService {
	return &CatalogService{catalog: cat}
}

func (s *CatalogService) ListModules() []catalog.ModuleSummary {
	return s.catalog.List()
}

func (s *CatalogService) GetModule(id int) (*catalog.Module, error) {
	m := s.catalog.Get(id)
	if m == nil {
		return nil, NewNotFoundError("module not found")
	}
	return m, nil
}
