package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownSector is returned when a sector name cannot be parsed
	ErrUnknownSector = errors.New("unknown sector")

	// ErrUnknownCalculationType is returned when a calculation type cannot be parsed
	ErrUnknownCalculationType = errors.New("unknown calculation type")
)

// Sector selects the set of sector-specific tax rules
type Sector string

const (
	SectorStandard     Sector = "standard"
	SectorIT           Sector = "it"
	SectorConstruction Sector = "construction"
	SectorAgriculture  Sector = "agriculture"
)

// Sectors returns every supported sector in display order
func Sectors() []Sector {
	return []Sector{SectorStandard, SectorIT, SectorConstruction, SectorAgriculture}
}

// Label returns a human-readable sector name
func (s Sector) Label() string {
	switch s {
	case SectorStandard:
		return "Standard"
	case SectorIT:
		return "IT"
	case SectorConstruction:
		return "Construction"
	case SectorAgriculture:
		return "Agriculture"
	}
	return string(s)
}

// IsConstructionLike reports whether the sector follows the construction and
// agriculture rule set
func (s Sector) IsConstructionLike() bool {
	return s == SectorConstruction || s == SectorAgriculture
}

// Valid reports whether s is one of the supported sectors
func (s Sector) Valid() bool {
	for _, known := range Sectors() {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSector converts user input into a Sector
func ParseSector(value string) (Sector, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "standard", "general":
		return SectorStandard, nil
	case "it":
		return SectorIT, nil
	case "construction", "constructii":
		return SectorConstruction, nil
	case "agriculture", "agricultura":
		return SectorAgriculture, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSector, value)
}

// CalculationType tells which amount the input value represents
type CalculationType string

const (
	FromGross CalculationType = "gross"
	FromNet   CalculationType = "net"
	FromCost  CalculationType = "cost"
)

// ParseCalculationType converts user input into a CalculationType
func ParseCalculationType(value string) (CalculationType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "gross", "brut":
		return FromGross, nil
	case "net":
		return FromNet, nil
	case "cost", "total", "complet":
		return FromCost, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCalculationType, value)
}
