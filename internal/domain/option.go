package domain

import (
	"fmt"
	"strings"
)

// Dimension identifica uno de los tres ejes de elección.
type Dimension string

const (
	DimensionLocation  Dimension = "location"
	DimensionFamily    Dimension = "family"
	DimensionLifestyle Dimension = "lifestyle"
)

// Dimensions devuelve los tres ejes en orden de presentación.
func Dimensions() []Dimension {
	return []Dimension{DimensionLocation, DimensionFamily, DimensionLifestyle}
}

// ParseDimension acepta el nombre canónico y algunos alias usados por clientes.
func ParseDimension(raw string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "location", "locations":
		return DimensionLocation, nil
	case "family", "family-context", "family_context", "familycontext":
		return DimensionFamily, nil
	case "lifestyle", "lifestyles":
		return DimensionLifestyle, nil
	default:
		return "", fmt.Errorf("unknown dimension %q", raw)
	}
}

// Option es un valor seleccionable dentro de una dimensión.
type Option struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var locationTags = map[string]string{
	"coastal-town":      "Coastal",
	"mountain-village":  "Mountain",
	"rural-countryside": "Rural",
	"small-city":        "Urban",
	"suburban-area":     "Suburban",
	"overseas":          "Overseas",
}

// LocationTag devuelve la etiqueta corta de una ubicación. Ids desconocidos caen en "Urban".
func LocationTag(locationID string) string {
	if tag, ok := locationTags[locationID]; ok {
		return tag
	}
	return "Urban"
}
