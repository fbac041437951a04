package scoring

import (
	"fmt"

	"creativestyle/internal/config"
	"creativestyle/internal/model"
)

// Contribution is the signed amount a single answer adds to its dimension.
func Contribution(p model.Polarity, value, center int) int {
	if p == model.PolarityReverse {
		return center - value
	}
	return value - center
}

// Aggregate folds a submission's answers into the two dimension totals.
// Unanswered questions and questions outside both dimensions are skipped.
// A value outside the scale fails the whole call.
func Aggregate(responses map[string]int, questions []model.Question, scale config.Scale) (model.DimensionScore, error) {
	var score model.DimensionScore
	for _, q := range questions {
		dim := q.Dimension()
		if dim == model.DimensionNone {
			continue
		}
		value, ok := responses[q.ID]
		if !ok {
			continue
		}
		if !scale.Contains(value) {
			return model.DimensionScore{}, fmt.Errorf("%w: question %s answered %d, want %d-%d",
				ErrMalformedInput, q.ID, value, scale.Min, scale.Max)
		}

		c := Contribution(q.Polarity(), value, scale.Center)
		switch dim {
		case model.DimensionLearning:
			score.LearningScore += c
		case model.DimensionApplication:
			score.ApplicationScore += c
		}
	}
	return score, nil
}
