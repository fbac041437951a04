package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"creativestyle/internal/config"
	"creativestyle/internal/model"
	"creativestyle/internal/scoring"
)

// Catalog is the immutable question set served to respondents and scored by the engine.
type Catalog struct {
	Scale          config.Scale
	ScaleQuestions []model.Question
	TextQuestions  []model.Question
	byID           map[string]model.Question
}

// LoadQuestions reads the scale and text question files. The response scale comes
// from the scale file's metadata, falling back to 1-7. The text file is optional.
func LoadQuestions(scalePath, textPath string) (*Catalog, error) {
	var scaleDoc model.QuestionFile
	if err := decodeFile(scalePath, &scaleDoc); err != nil {
		return nil, err
	}
	if len(scaleDoc.Questions) == 0 {
		return nil, fmt.Errorf("%w: %s has no questions", scoring.ErrConfiguration, scalePath)
	}

	scale := config.DefaultScale()
	if r := scaleDoc.Metadata.ScaleRange; r != nil {
		scale = config.NewScale(r.Min, r.Max)
	}

	var text []model.Question
	if textPath != "" {
		var textDoc model.QuestionFile
		if err := decodeFile(textPath, &textDoc); err != nil {
			return nil, err
		}
		text = textDoc.Questions
	}

	c, err := New(scale, scaleDoc.Questions, text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", scalePath, err)
	}
	return c, nil
}

// New builds a catalog from already-decoded questions.
func New(scale config.Scale, scaleQuestions, textQuestions []model.Question) (*Catalog, error) {
	if !scale.Valid() {
		return nil, fmt.Errorf("%w: scale range %d-%d", scoring.ErrConfiguration, scale.Min, scale.Max)
	}
	c := &Catalog{
		Scale:          scale,
		ScaleQuestions: scaleQuestions,
		TextQuestions:  textQuestions,
		byID:           make(map[string]model.Question, len(scaleQuestions)+len(textQuestions)),
	}
	for _, q := range c.All() {
		if q.ID == "" {
			return nil, fmt.Errorf("%w: question without id", scoring.ErrConfiguration)
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %s", scoring.ErrConfiguration, q.ID)
		}
		c.byID[q.ID] = q
	}
	return c, nil
}

// LoadMatrix reads and indexes the preference matrix.
func LoadMatrix(path string) (*scoring.PreferenceMatrix, error) {
	var doc model.MatrixFile
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	m, err := scoring.NewPreferenceMatrix(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// All returns scale questions followed by text questions.
func (c *Catalog) All() []model.Question {
	out := make([]model.Question, 0, len(c.ScaleQuestions)+len(c.TextQuestions))
	out = append(out, c.ScaleQuestions...)
	return append(out, c.TextQuestions...)
}

// Lookup finds a question by id
func (c *Catalog) Lookup(id string) (model.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", scoring.ErrConfiguration, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("%w: decode %s: %v", scoring.ErrConfiguration, path, err)
	}
	return nil
}
