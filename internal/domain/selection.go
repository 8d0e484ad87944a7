package domain

// Selection guarda la elección actual del usuario: a lo sumo una opción por dimensión.
// Vive en memoria durante la sesión; no se persiste.
type Selection struct {
	Location      *Option `json:"location"`
	FamilyContext *Option `json:"family_context"`
	Lifestyle     *Option `json:"lifestyle"`
}

// Select reemplaza la opción elegida para la dimensión.
func (s *Selection) Select(dim Dimension, opt Option) {
	o := opt
	switch dim {
	case DimensionLocation:
		s.Location = &o
	case DimensionFamily:
		s.FamilyContext = &o
	case DimensionLifestyle:
		s.Lifestyle = &o
	}
}

// Clear deja la dimensión sin seleccionar.
func (s *Selection) Clear(dim Dimension) {
	switch dim {
	case DimensionLocation:
		s.Location = nil
	case DimensionFamily:
		s.FamilyContext = nil
	case DimensionLifestyle:
		s.Lifestyle = nil
	}
}

// Get devuelve la opción elegida o nil.
func (s Selection) Get(dim Dimension) *Option {
	switch dim {
	case DimensionLocation:
		return s.Location
	case DimensionFamily:
		return s.FamilyContext
	case DimensionLifestyle:
		return s.Lifestyle
	default:
		return nil
	}
}

// Complete indica si las tres dimensiones tienen opción.
func (s Selection) Complete() bool {
	return s.Location != nil && s.FamilyContext != nil && s.Lifestyle != nil
}
