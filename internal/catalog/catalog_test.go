package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"creativestyle/internal/scoring"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

const scaleJSON = `{
  "metadata": {"scaleRange": {"min": 1, "max": 7}},
  "questions": [
    {"id": "L1", "category": "Learning", "question": "I learn by trying", "scoreType": "normal"},
    {"id": "A1", "category": "Application", "question": "I like finishing", "scoreType": "reverse"}
  ]
}`

const textYAML = `questions:
  - id: T1
    question: Describe your last project
    textType: long
`

func TestLoadQuestions(t *testing.T) {
	dir := t.TempDir()
	c, err := LoadQuestions(writeFile(t, dir, "scale.json", scaleJSON), writeFile(t, dir, "text.yaml", textYAML))
	if err != nil {
		t.Fatalf("LoadQuestions: %v", err)
	}
	if c.Scale.Center != 4 {
		t.Errorf("center = %d, want 4", c.Scale.Center)
	}
	if len(c.All()) != 3 {
		t.Errorf("All() = %d questions, want 3", len(c.All()))
	}
	q, ok := c.Lookup("T1")
	if !ok || q.IsScale() {
		t.Errorf("T1 lookup = %+v, %v", q, ok)
	}
	if _, ok := c.Lookup("nope"); ok {
		t.Error("unexpected lookup hit")
	}
}

func TestLoadQuestionsErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"questions": [`},
		{"no questions", `{"questions": []}`},
		{"bad range", `{"metadata": {"scaleRange": {"min": 7, "max": 1}}, "questions": [{"id": "x", "category": "Learning"}]}`},
		{"duplicate id", `{"questions": [{"id": "x"}, {"id": "x"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, dir, tt.name+".json", tt.body)
			if _, err := LoadQuestions(p, ""); !errors.Is(err, scoring.ErrConfiguration) {
				t.Errorf("expected ErrConfiguration, got %v", err)
			}
		})
	}

	if _, err := LoadQuestions(filepath.Join(dir, "missing.json"), ""); !errors.Is(err, scoring.ErrConfiguration) {
		t.Errorf("missing file: expected ErrConfiguration, got %v", err)
	}
}

func TestLoadMatrix(t *testing.T) {
	dir := t.TempDir()
	body := `{"learningStyles": [{
    "id": "intuitive",
    "description": "Explorer",
    "preferences": [{"strengthLevel": "slight", "dimensionType": "learningMethod", "dimensionValue": "experience", "description": "d"}],
    "workingWith": {"intuitive": "a", "conceptual": "b", "pragmatic": "c", "deductive": "d"},
    "strengths": "single strength",
    "weaknesses": ["w1", "w2"]
  }]}`
	m, err := LoadMatrix(writeFile(t, dir, "matrix.json", body))
	if err != nil {
		t.Fatalf("LoadMatrix: %v", err)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d", m.Len())
	}

	if _, err := LoadMatrix(writeFile(t, dir, "empty.json", `{"learningStyles": []}`)); !errors.Is(err, scoring.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}
