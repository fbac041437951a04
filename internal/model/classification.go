package model

import "strings"

// Direction is the sign-derived label of one axis
type Direction string

const (
	DirectionExperience    Direction = "Experience"
	DirectionContemplation Direction = "Contemplation"
	DirectionIdeation      Direction = "Ideation"
	DirectionProduction    Direction = "Production"
)

// Strength buckets the magnitude of a dimension score
type Strength string

const (
	StrengthSlight Strength = "slight"
	StrengthSolid  Strength = "solid"
	StrengthStrong Strength = "strong"
)

// Style is the composite quadrant identifier
type Style string

const (
	StyleIntuitive  Style = "intuitive"
	StyleConceptual Style = "conceptual"
	StylePragmatic  Style = "pragmatic"
	StyleDeductive  Style = "deductive"
)

// AllStyles lists the quadrants in matrix order.
var AllStyles = []Style{StyleIntuitive, StyleConceptual, StylePragmatic, StyleDeductive}

// DimensionScore holds the two signed totals
type DimensionScore struct {
	LearningScore    int `json:"learning_score"`
	ApplicationScore int `json:"application_score"`
}

// Classification is the label set derived from a DimensionScore.
type Classification struct {
	LearningDirection    Direction `json:"learning_direction"`
	LearningStrength     Strength  `json:"learning_strength"`
	ApplicationDirection Direction `json:"application_direction"`
	ApplicationStrength  Strength  `json:"application_strength"`
	OverallStyle         Style     `json:"overall_style"`
}

// Labels is the wire form of a classification
type Labels struct {
	LearningDirection    string `json:"learning_direction"`
	LearningStrength     string `json:"learning_strength"`
	ApplicationDirection string `json:"application_direction"`
	ApplicationStrength  string `json:"application_strength"`
	OverallStyle         string `json:"overall_style"`
}

func (c Classification) Labels() Labels {
	return Labels{
		LearningDirection:    string(c.LearningDirection),
		LearningStrength:     string(c.LearningStrength),
		ApplicationDirection: string(c.ApplicationDirection),
		ApplicationStrength:  string(c.ApplicationStrength),
		OverallStyle:         string(c.OverallStyle),
	}
}

// DisplayLabels renders the phrasing used by the admin simulator,
// e.g. "to Learn Through Experience" and "Intuitive Creative Style".
func (c Classification) DisplayLabels() Labels {
	style := string(c.OverallStyle)
	if style != "" {
		style = strings.ToUpper(style[:1]) + style[1:] + " Creative Style"
	}
	return Labels{
		LearningDirection:    "to Learn Through " + string(c.LearningDirection),
		LearningStrength:     string(c.LearningStrength),
		ApplicationDirection: "to Apply Knowledge for " + string(c.ApplicationDirection),
		ApplicationStrength:  string(c.ApplicationStrength),
		OverallStyle:         style,
	}
}
