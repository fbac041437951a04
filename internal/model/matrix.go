package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MatrixFile is the on-disk layout of creative_matrix.json
type MatrixFile struct {
	LearningStyles []StyleEntry `json:"learningStyles" yaml:"learningStyles"`
}

// StyleEntry is one creative style in the matrix
type StyleEntry struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Preferences []PreferenceEntry `json:"preferences" yaml:"preferences"`
	WorkingWith WorkingWith       `json:"workingWith" yaml:"workingWith"`
	Strengths   TextList          `json:"strengths" yaml:"strengths"`
	Weaknesses  TextList          `json:"weaknesses" yaml:"weaknesses"`
}

// PreferenceEntry is a description keyed by (strength, dimension type, dimension value)
type PreferenceEntry struct {
	StrengthLevel  string `json:"strengthLevel" yaml:"strengthLevel"`
	DimensionType  string `json:"dimensionType" yaml:"dimensionType"`
	DimensionValue string `json:"dimensionValue" yaml:"dimensionValue"`
	Description    string `json:"description" yaml:"description"`
}

// WorkingWith is keyed by the style being worked with
type WorkingWith struct {
	Intuitive  string `json:"intuitive" yaml:"intuitive"`
	Conceptual string `json:"conceptual" yaml:"conceptual"`
	Pragmatic  string `json:"pragmatic" yaml:"pragmatic"`
	Deductive  string `json:"deductive" yaml:"deductive"`
}

// Relationships converts to the pluralised output form.
func (w WorkingWith) Relationships() WorkingRelationships {
	return WorkingRelationships{
		Intuitives:  w.Intuitive,
		Conceptuals: w.Conceptual,
		Pragmatists: w.Pragmatic,
		Deductives:  w.Deductive,
	}
}

// TextList accepts either a single string or a list of strings.
type TextList []string

func (l *TextList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = fromString(one)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("text list: want string or array of strings: %w", err)
	}
	*l = many
	return nil
}

func (l *TextList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var one string
		if err := value.Decode(&one); err != nil {
			return err
		}
		*l = fromString(one)
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*l = many
		return nil
	default:
		return fmt.Errorf("text list: unexpected yaml node kind %d at line %d", value.Kind, value.Line)
	}
}

// Strings returns a non-nil copy
func (l TextList) Strings() []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}

func fromString(s string) TextList {
	if s == "" {
		return TextList{}
	}
	return TextList{s}
}
