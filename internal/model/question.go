package model

import "strings"

// Dimension is one of the two scored axes
type Dimension string

const (
	DimensionNone        Dimension = ""
	DimensionLearning    Dimension = "Learning"
	DimensionApplication Dimension = "Application"
)

// Polarity decides whether a raw value is scored directly or mirrored around the scale center
type Polarity string

const (
	PolarityNormal  Polarity = "normal"
	PolarityReverse Polarity = "reverse"
)

// Question is a catalog entry. Scale questions carry a category and a score type;
// text questions carry neither and never contribute to a score.
type Question struct {
	ID        string `json:"id" yaml:"id"`
	Category  string `json:"category,omitempty" yaml:"category,omitempty"`
	Question  string `json:"question" yaml:"question"`
	ScoreType string `json:"scoreType,omitempty" yaml:"scoreType,omitempty"`
	ScaleType string `json:"scaleType,omitempty" yaml:"scaleType,omitempty"`
	TextType  string `json:"textType,omitempty" yaml:"textType,omitempty"`
}

// Dimension maps the free-form category onto a scored axis.
func (q Question) Dimension() Dimension {
	switch strings.ToLower(strings.TrimSpace(q.Category)) {
	case "learning":
		return DimensionLearning
	case "application":
		return DimensionApplication
	default:
		return DimensionNone
	}
}

// Polarity defaults to normal for anything that is not explicitly "reverse".
func (q Question) Polarity() Polarity {
	if strings.EqualFold(strings.TrimSpace(q.ScoreType), string(PolarityReverse)) {
		return PolarityReverse
	}
	return PolarityNormal
}

// IsScale reports whether the question is answered on the numeric scale
func (q Question) IsScale() bool {
	return q.Dimension() != DimensionNone
}

// ScaleRange is the min/max pair in the scale catalog metadata
type ScaleRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// QuestionFile is the on-disk layout of scale_questions.json / text_questions.json.
type QuestionFile struct {
	Metadata struct {
		ScaleRange *ScaleRange `json:"scaleRange,omitempty" yaml:"scaleRange,omitempty"`
	} `json:"metadata" yaml:"metadata"`
	Questions []Question `json:"questions" yaml:"questions"`
}
