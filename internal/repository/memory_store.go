package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"creativestyle/internal/model"
)

// MemoryStore keeps submissions in process memory. It backs STORE_DRIVER=memory
// and tests; data does not survive a restart.
type MemoryStore struct {
	mu        sync.RWMutex
	subs      map[string]model.Submission
	responses map[string]map[string]model.Response
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		subs:      make(map[string]model.Submission),
		responses: make(map[string]map[string]model.Response),
	}
}

// Store exposes the memory store through the common bundle
func (m *MemoryStore) Store() *Store {
	return &Store{Submissions: m, Responses: m}
}

func (m *MemoryStore) Create(_ context.Context, s *model.Submission) error {
	if s.SubmissionTime.IsZero() {
		s.SubmissionTime = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs[s.ID] = *s
	return nil
}

func (m *MemoryStore) GetByID(_ context.Context, id string) (*model.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.subs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) List(_ context.Context, f model.SubmissionFilter) ([]*model.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*model.Submission{}
	for _, s := range m.subs {
		if f.Complete != nil && s.IsComplete != *f.Complete {
			continue
		}
		if f.From != nil && s.SubmissionTime.Before(*f.From) {
			continue
		}
		if f.To != nil && s.SubmissionTime.After(*f.To) {
			continue
		}
		s := s
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SubmissionTime.Equal(out[j].SubmissionTime) {
			return out[i].ID < out[j].ID
		}
		return out[i].SubmissionTime.After(out[j].SubmissionTime)
	})
	return out, nil
}

func (m *MemoryStore) MarkComplete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.subs[id]
	if !ok {
		return ErrNotFound
	}
	s.IsComplete = true
	m.subs[id] = s
	return nil
}

func (m *MemoryStore) Count(_ context.Context) (int64, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var completed int64
	for _, s := range m.subs {
		if s.IsComplete {
			completed++
		}
	}
	return int64(len(m.subs)), completed, nil
}

func (m *MemoryStore) Save(_ context.Context, r *model.Response) error {
	if r.ResponseTime.IsZero() {
		r.ResponseTime = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.responses[r.SubmissionID] == nil {
		m.responses[r.SubmissionID] = make(map[string]model.Response)
	}
	m.responses[r.SubmissionID][r.QuestionID] = *r
	return nil
}

func (m *MemoryStore) GetBySubmissionID(_ context.Context, submissionID string) ([]*model.Response, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Response, 0, len(m.responses[submissionID]))
	for _, r := range m.responses[submissionID] {
		r := r
		out = append(out, &r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out, nil
}

func (m *MemoryStore) GetNumericResponses(ctx context.Context, submissionID string) (map[string]int, error) {
	if _, err := m.GetByID(ctx, submissionID); err != nil {
		return nil, err
	}
	rows, err := m.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	return numericMap(rows), nil
}
