package scoring

import "creativestyle/internal/model"

const (
	solidThreshold  = 10
	strongThreshold = 19
)

// styleTable is indexed by [learning < 0][application < 0].
var styleTable = [2][2]model.Style{
	{model.StyleIntuitive, model.StyleDeductive},
	{model.StyleConceptual, model.StylePragmatic},
}

// StrengthFor buckets |score|. Zero is treated as slight.
func StrengthFor(score int) model.Strength {
	if score < 0 {
		score = -score
	}
	switch {
	case score >= strongThreshold:
		return model.StrengthStrong
	case score >= solidThreshold:
		return model.StrengthSolid
	default:
		return model.StrengthSlight
	}
}

// Classify maps the two totals onto direction, strength and style labels.
// Zero counts as non-negative on both axes.
func Classify(s model.DimensionScore) model.Classification {
	learningNeg := s.LearningScore < 0
	applicationNeg := s.ApplicationScore < 0

	c := model.Classification{
		LearningDirection:    model.DirectionExperience,
		LearningStrength:     StrengthFor(s.LearningScore),
		ApplicationDirection: model.DirectionIdeation,
		ApplicationStrength:  StrengthFor(s.ApplicationScore),
		OverallStyle:         styleTable[b2i(learningNeg)][b2i(applicationNeg)],
	}
	if learningNeg {
		c.LearningDirection = model.DirectionContemplation
	}
	if applicationNeg {
		c.ApplicationDirection = model.DirectionProduction
	}
	return c
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
