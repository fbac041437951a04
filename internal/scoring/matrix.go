package scoring

import (
	"fmt"
	"strings"

	"creativestyle/internal/model"
)

// Dimension types used in the preference matrix.
const (
	DimensionTypeLearning    = "learningMethod"
	DimensionTypeApplication = "knowledgeApplication"
)

type prefKey struct {
	strength string
	dimType  string
	dimValue string
}

type styleRecord struct {
	entry model.StyleEntry
	prefs map[prefKey]string
}

// PreferenceMatrix is the read-only, pre-indexed form of the matrix document.
// It is safe for concurrent use once built.
type PreferenceMatrix struct {
	styles  map[string]*styleRecord
	dropped int
}

// NewPreferenceMatrix indexes the document. Keys are case- and whitespace-insensitive.
// Only the first preference per (strength, dimension type) and the first entry
// per style id are kept; later duplicates are dropped.
func NewPreferenceMatrix(doc model.MatrixFile) (*PreferenceMatrix, error) {
	if len(doc.LearningStyles) == 0 {
		return nil, fmt.Errorf("%w: preference matrix has no styles", ErrConfiguration)
	}

	m := &PreferenceMatrix{styles: make(map[string]*styleRecord, len(doc.LearningStyles))}
	for i, entry := range doc.LearningStyles {
		id := normalize(entry.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: style #%d has no id", ErrConfiguration, i)
		}
		if _, exists := m.styles[id]; exists {
			m.dropped++
			continue
		}

		rec := &styleRecord{entry: entry, prefs: make(map[prefKey]string, len(entry.Preferences))}
		seen := make(map[[2]string]bool, len(entry.Preferences))
		for _, p := range entry.Preferences {
			strength, dimType := normalize(p.StrengthLevel), normalize(p.DimensionType)
			if seen[[2]string{strength, dimType}] {
				m.dropped++
				continue
			}
			seen[[2]string{strength, dimType}] = true
			rec.prefs[prefKey{strength, dimType, normalize(p.DimensionValue)}] = p.Description
		}
		m.styles[id] = rec
	}
	return m, nil
}

// Dropped is the number of duplicate styles and preferences ignored at load.
func (m *PreferenceMatrix) Dropped() int {
	return m.dropped
}

// Len is the number of distinct styles
func (m *PreferenceMatrix) Len() int {
	return len(m.styles)
}

func (m *PreferenceMatrix) lookup(style model.Style) (*styleRecord, bool) {
	rec, ok := m.styles[normalize(string(style))]
	return rec, ok
}

func (r *styleRecord) preference(strength model.Strength, dimType string, dir model.Direction) string {
	return r.prefs[prefKey{normalize(string(strength)), normalize(dimType), normalize(string(dir))}]
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
