package generator

import "github.com/toyz/vtgen/internal/models"

// HeaderGenerator defines the interface for turning an Interface Model
// into a generated header artifact
type HeaderGenerator interface {
	GenerateHeader(unitName string, unit *models.UnitMetadata) (*models.GeneratedHeader, error)
}
