package catalog

import "retire-explorer/internal/domain"

func defaultLocations() []domain.Option {
	return []domain.Option{
		{ID: "coastal-town", Title: "Coastal Town", Description: "Small seaside community with slower pace"},
		{ID: "mountain-village", Title: "Mountain Village", Description: "Peaceful mountain setting with nature access"},
		{ID: "suburban-area", Title: "Suburban Area", Description: "Balance of amenities and quiet living"},
		{ID: "rural-countryside", Title: "Rural Countryside", Description: "Open spaces and agricultural setting"},
		{ID: "small-city", Title: "Small City", Description: "Urban conveniences in a manageable size"},
		{ID: "overseas", Title: "Overseas", Description: "Living abroad in a different culture"},
	}
}

func defaultFamilyContexts() []domain.Option {
	return []domain.Option{
		{ID: "solo", Title: "Solo Living", Description: "Complete independence and autonomy"},
		{ID: "partner", Title: "With Partner", Description: "Shared life with a companion"},
		{ID: "children", Title: "With Children", Description: "Family life with kids at home"},
		{ID: "extended-family", Title: "Extended Family", Description: "Multi-generational household"},
		{ID: "community", Title: "Community Living", Description: "Shared spaces with like-minded people"},
	}
}

func defaultLifestyles() []domain.Option {
	return []domain.Option{
		{ID: "simple-quiet", Title: "Simple & Quiet", Description: "Minimalist approach focused on peace"},
		{ID: "travel-oriented", Title: "Travel-Oriented", Description: "Regular exploration and movement"},
		{ID: "creative", Title: "Creative Pursuits", Description: "Focus on art, writing, or making"},
		{ID: "active-outdoor", Title: "Active & Outdoor", Description: "Physical activities and nature immersion"},
		{ID: "purpose-driven", Title: "Purpose-Driven", Description: "Volunteering, teaching, or giving back"},
		{ID: "mixed", Title: "Mixed Lifestyle", Description: "Blend of different activities and rhythms"},
	}
}

// Puntajes base por ubicación.
func defaultLocationScores() map[string]domain.PartialScores {
	return map[string]domain.PartialScores{
		"coastal-town": {
			domain.FieldCostOfLiving:   3, // la demanda estacional puede subir precios
			domain.FieldPaceOfLife:     2,
			domain.FieldPollution:      2,
			domain.FieldInfrastructure: 3,
			domain.FieldSocialLife:     3,
		},
		"mountain-village": {
			domain.FieldCostOfLiving:   3, // turismo
			domain.FieldPaceOfLife:     1,
			domain.FieldPollution:      1,
			domain.FieldInfrastructure: 2, // remoto
			domain.FieldSocialLife:     2,
		},
		"suburban-area": {
			domain.FieldCostOfLiving:   3,
			domain.FieldPaceOfLife:     3,
			domain.FieldPollution:      3,
			domain.FieldInfrastructure: 4,
			domain.FieldSocialLife:     4,
		},
		"rural-countryside": {
			domain.FieldCostOfLiving:   2,
			domain.FieldPaceOfLife:     1,
			domain.FieldPollution:      1,
			domain.FieldInfrastructure: 2,
			domain.FieldSocialLife:     2,
		},
		"small-city": {
			domain.FieldCostOfLiving:   3,
			domain.FieldPaceOfLife:     3,
			domain.FieldPollution:      3,
			domain.FieldInfrastructure: 4,
			domain.FieldSocialLife:     4,
		},
		"overseas": {
			domain.FieldCostOfLiving:   2, // depende del país
			domain.FieldPaceOfLife:     3,
			domain.FieldPollution:      3,
			domain.FieldInfrastructure: 3,
			domain.FieldSocialLife:     3,
		},
	}
}

func defaultFamilyAdjustments() map[string]domain.Adjustment {
	return map[string]domain.Adjustment{
		"solo": {
			domain.FieldCostOfLiving: -1,
			domain.FieldSocialLife:   -1,
		},
		"partner": {
			domain.FieldCostOfLiving: 0,
			domain.FieldSocialLife:   1,
		},
		"children": {
			domain.FieldCostOfLiving:   1,
			domain.FieldInfrastructure: 1, // escuelas, actividades
			domain.FieldSocialLife:     1,
		},
		"extended-family": {
			domain.FieldCostOfLiving: 1,
			domain.FieldSocialLife:   2,
		},
		"community": {
			domain.FieldCostOfLiving: -1, // recursos compartidos
			domain.FieldSocialLife:   2,
		},
	}
}

func defaultLifestyleAdjustments() map[string]domain.Adjustment {
	return map[string]domain.Adjustment{
		"simple-quiet": {
			domain.FieldPaceOfLife: -1,
			domain.FieldSocialLife: -1,
		},
		"travel-oriented": {
			domain.FieldCostOfLiving: 1,
			domain.FieldPaceOfLife:   1,
			domain.FieldSocialLife:   0,
		},
		"creative": {
			domain.FieldPaceOfLife: -1,
			domain.FieldSocialLife: 0,
		},
		"active-outdoor": {
			domain.FieldPollution:  -1,
			domain.FieldSocialLife: 1,
		},
		"purpose-driven": {
			domain.FieldSocialLife: 1,
		},
		"mixed": {},
	}
}

func defaultConsiderations() map[string][]string {
	return map[string][]string{
		"coastal-town": {
			"Access to water activities and coastal community events",
			"Potential for seasonal tourism affecting local pace",
		},
		"mountain-village": {
			"Year-round outdoor recreation opportunities",
			"Possible seasonal weather considerations",
		},
		"overseas": {
			"Cultural adaptation and language learning opportunities",
			"Healthcare and legal considerations in new country",
		},
		"rural-countryside": {
			"Space for self-sufficiency and larger projects",
			"Distance from urban amenities and services",
		},
		"small-city": {
			"Balance of community resources and personal space",
			"Access to cultural events and diverse activities",
		},
		"suburban-area": {
			"Family-friendly amenities and community connections",
			"Proximity to both nature and urban centers",
		},
	}
}

// DefaultFamilyPhrase se usa para cualquier contexto familiar sin frase propia.
const DefaultFamilyPhrase = "in community"

func defaultFamilyPhrases() map[string]string {
	return map[string]string{
		"solo":            "on your own",
		"partner":         "with your partner",
		"children":        "with your children",
		"extended-family": "with extended family",
	}
}

const (
	imageThailand   = "https://images.unsplash.com/photo-1552465011-b4e21bf6e79a?w=800&h=800&fit=crop"
	imageAustralia  = "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=800&fit=crop"
	imagePortugal   = "https://images.unsplash.com/photo-1544551763-46a013bb70d5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"
	imageNewZealand = "https://images.unsplash.com/photo-1507692049790-de58290a4334?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"
	imageSpain      = "https://images.unsplash.com/photo-1539037116277-4db20889f2d4?w=800&h=800&fit=crop"
	imageVietnam    = "https://images.unsplash.com/photo-1583417319070-4a69db38a482?w=800&h=800&fit=crop"
)

func defaultCurated() []domain.CuratedEntry {
	return []domain.CuratedEntry{
		{Country: "Thailand", CountryCode: "TH", ImageURL: imageThailand, LocationID: "mountain-village", FamilyID: "solo", LifestyleID: "travel-oriented"},
		{Country: "Thailand", CountryCode: "TH", ImageURL: imageThailand, LocationID: "coastal-town", FamilyID: "partner", LifestyleID: "simple-quiet"},
		{Country: "Australia", CountryCode: "AU", ImageURL: imageAustralia, LocationID: "small-city", FamilyID: "partner", LifestyleID: "active-outdoor"},
		{Country: "Australia", CountryCode: "AU", ImageURL: imageAustralia, LocationID: "coastal-town", FamilyID: "children", LifestyleID: "mixed"},
		{Country: "Portugal", CountryCode: "PT", ImageURL: imagePortugal, LocationID: "coastal-town", FamilyID: "solo", LifestyleID: "simple-quiet"},
		{Country: "Portugal", CountryCode: "PT", ImageURL: imagePortugal, LocationID: "small-city", FamilyID: "partner", LifestyleID: "creative"},
		{Country: "New Zealand", CountryCode: "NZ", ImageURL: imageNewZealand, LocationID: "rural-countryside", FamilyID: "partner", LifestyleID: "active-outdoor"},
		{Country: "New Zealand", CountryCode: "NZ", ImageURL: imageNewZealand, LocationID: "coastal-town", FamilyID: "children", LifestyleID: "mixed"},
		{Country: "Spain", CountryCode: "ES", ImageURL: imageSpain, LocationID: "coastal-town", FamilyID: "extended-family", LifestyleID: "simple-quiet"},
		{Country: "Spain", CountryCode: "ES", ImageURL: imageSpain, LocationID: "small-city", FamilyID: "solo", LifestyleID: "creative"},
		{Country: "Vietnam", CountryCode: "VN", ImageURL: imageVietnam, LocationID: "small-city", FamilyID: "partner", LifestyleID: "travel-oriented"},
		{Country: "Vietnam", CountryCode: "VN", ImageURL: imageVietnam, LocationID: "coastal-town", FamilyID: "solo", LifestyleID: "travel-oriented"},
	}
}
