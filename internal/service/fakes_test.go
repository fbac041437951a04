package service

import (
	"context"
	"sync"
	"testing"

	"creativestyle/internal/catalog"
	"creativestyle/internal/config"
	"creativestyle/internal/logger"
	"creativestyle/internal/model"
	"creativestyle/internal/repository"
	"creativestyle/internal/scoring"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) record(e string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) PublishSubmissionStarted(context.Context, string) error {
	return p.record("submission.started")
}

func (p *recordingPublisher) PublishSubmissionCompleted(context.Context, string) error {
	return p.record("submission.completed")
}

func (p *recordingPublisher) PublishResultsGenerated(context.Context, string, *model.Result) error {
	return p.record("results.generated")
}

func (p *recordingPublisher) Close() error { return nil }

type recordingBroadcaster struct {
	mu       sync.Mutex
	messages []string
}

func (b *recordingBroadcaster) BroadcastToAdmins(msgType string, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, msgType)
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(config.DefaultScale(),
		[]model.Question{
			{ID: "L1", Category: "Learning", ScoreType: "normal"},
			{ID: "A1", Category: "Application", ScoreType: "reverse"},
		},
		[]model.Question{{ID: "T1", TextType: "long"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func testEngine(t *testing.T) *scoring.Engine {
	t.Helper()
	m, err := scoring.NewPreferenceMatrix(model.MatrixFile{LearningStyles: []model.StyleEntry{
		{ID: "intuitive", Description: "explorer", Strengths: model.TextList{"open"}},
	}})
	if err != nil {
		t.Fatal(err)
	}
	e, err := scoring.NewEngine(testCatalog(t).ScaleQuestions, config.DefaultScale(), m, logger.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func newMemStore() *repository.MemoryStore {
	return repository.NewMemoryStore()
}
