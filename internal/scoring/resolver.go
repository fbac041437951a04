package scoring

import (
	"fmt"

	"creativestyle/internal/model"
)

// Resolve joins a classification against the matrix. When the style is missing it
// returns an empty, well-formed profile together with ErrStyleNotFound. A missing
// preference yields an empty string for that field only.
func (m *PreferenceMatrix) Resolve(c model.Classification) (model.StyleProfile, error) {
	rec, ok := m.lookup(c.OverallStyle)
	if !ok {
		return model.EmptyProfile(), fmt.Errorf("%w: %q", ErrStyleNotFound, c.OverallStyle)
	}

	return model.StyleProfile{
		StyleDescription:                 rec.entry.Description,
		PreferenceDescription:            rec.preference(c.LearningStrength, DimensionTypeLearning, c.LearningDirection),
		ApplicationPreferenceDescription: rec.preference(c.ApplicationStrength, DimensionTypeApplication, c.ApplicationDirection),
		WorkingRelationships:             rec.entry.WorkingWith.Relationships(),
		Strengths:                        rec.entry.Strengths.Strings(),
		Weaknesses:                       rec.entry.Weaknesses.Strings(),
	}, nil
}
