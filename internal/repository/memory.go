package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/lshigami/coursehive/internal/model"
)

// MemoryStore keeps tests and attempts in process memory. Records are copied
// on the way in and out so callers never share state with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	seq      int64
	tests    map[string]memoryRecord[model.Test]
	attempts map[string]memoryRecord[model.Attempt]
}

type memoryRecord[T any] struct {
	seq   int64
	value T
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tests:    make(map[string]memoryRecord[model.Test]),
		attempts: make(map[string]memoryRecord[model.Attempt]),
	}
}

func (s *MemoryStore) Tests() TestRepository       { return &memoryTestRepository{s: s} }
func (s *MemoryStore) Attempts() AttemptRepository { return &memoryAttemptRepository{s: s} }

func cloneTest(t model.Test) model.Test {
	if t.Questions != nil {
		qs := make([]model.Question, len(t.Questions))
		for i, q := range t.Questions {
			q.Options = append([]string(nil), q.Options...)
			qs[i] = q
		}
		t.Questions = qs
	}
	return t
}

func cloneAttempt(a model.Attempt) model.Attempt {
	if a.SubmittedAt != nil {
		at := *a.SubmittedAt
		a.SubmittedAt = &at
	}
	if a.Answers != nil {
		answers := make([]model.Answer, len(a.Answers))
		for i, ans := range a.Answers {
			if ans.SelectedIndex != nil {
				sel := *ans.SelectedIndex
				ans.SelectedIndex = &sel
			}
			answers[i] = ans
		}
		a.Answers = answers
	}
	return a
}

type memoryTestRepository struct {
	s *MemoryStore
}

func (r *memoryTestRepository) Create(_ context.Context, test *model.Test) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.tests[test.ID]; exists {
		return fmt.Errorf("test %s already exists", test.ID)
	}
	r.s.seq++
	r.s.tests[test.ID] = memoryRecord[model.Test]{seq: r.s.seq, value: cloneTest(*test)}
	return nil
}

func (r *memoryTestRepository) FindByID(_ context.Context, id string) (*model.Test, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.tests[id]
	if !ok {
		return nil, ErrNotFound
	}
	t := cloneTest(rec.value)
	return &t, nil
}

func (r *memoryTestRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*model.Test, error) {
	t, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.CreatedBy != ownerID {
		return nil, ErrNotFound
	}
	return t, nil
}

func (r *memoryTestRepository) FindAllByOwner(_ context.Context, ownerID string) ([]model.Test, error) {
	return r.newestFirst(func(t model.Test) bool { return t.CreatedBy == ownerID }), nil
}

func (r *memoryTestRepository) FindAllPublished(_ context.Context) ([]model.Test, error) {
	return r.newestFirst(func(t model.Test) bool { return t.Published }), nil
}

func (r *memoryTestRepository) newestFirst(keep func(model.Test) bool) []model.Test {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	recs := make([]memoryRecord[model.Test], 0, len(r.s.tests))
	for _, rec := range r.s.tests {
		if keep(rec.value) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if !a.value.CreatedAt.Equal(b.value.CreatedAt) {
			return a.value.CreatedAt.After(b.value.CreatedAt)
		}
		return a.seq > b.seq
	})
	tests := make([]model.Test, len(recs))
	for i, rec := range recs {
		tests[i] = cloneTest(rec.value)
	}
	return tests
}

func (r *memoryTestRepository) Update(_ context.Context, test *model.Test) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.tests[test.ID]
	if !ok {
		return ErrNotFound
	}
	rec.value = cloneTest(*test)
	r.s.tests[test.ID] = rec
	return nil
}

func (r *memoryTestRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tests[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.tests, id)
	return nil
}

type memoryAttemptRepository struct {
	s *MemoryStore
}

func (r *memoryAttemptRepository) Create(_ context.Context, attempt *model.Attempt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.attempts[attempt.ID]; exists {
		return fmt.Errorf("attempt %s already exists", attempt.ID)
	}
	r.s.seq++
	r.s.attempts[attempt.ID] = memoryRecord[model.Attempt]{seq: r.s.seq, value: cloneAttempt(*attempt)}
	return nil
}

func (r *memoryAttemptRepository) FindByID(_ context.Context, id string) (*model.Attempt, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.attempts[id]
	if !ok {
		return nil, ErrNotFound
	}
	a := cloneAttempt(rec.value)
	return &a, nil
}

func (r *memoryAttemptRepository) ExistsForUser(_ context.Context, testID, userID string, statuses []model.AttemptStatus) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, rec := range r.s.attempts {
		a := rec.value
		if a.TestID != testID || a.UserID != userID {
			continue
		}
		for _, st := range statuses {
			if a.Status == st {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *memoryAttemptRepository) FindAllByTest(_ context.Context, testID string) ([]model.Attempt, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	recs := make([]memoryRecord[model.Attempt], 0)
	for _, rec := range r.s.attempts {
		if rec.value.TestID == testID {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })
	attempts := make([]model.Attempt, len(recs))
	for i, rec := range recs {
		attempts[i] = cloneAttempt(rec.value)
	}
	return attempts, nil
}

func (r *memoryAttemptRepository) Submit(_ context.Context, attempt *model.Attempt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.attempts[attempt.ID]
	if !ok || rec.value.Status != model.AttemptInProgress {
		return ErrAttemptNotInProgress
	}
	stored := rec.value
	graded := cloneAttempt(*attempt)
	stored.Answers = graded.Answers
	stored.SubmittedAt = graded.SubmittedAt
	stored.DurationTakenSeconds = graded.DurationTakenSeconds
	stored.Score = graded.Score
	stored.Status = graded.Status
	stored.UpdatedAt = graded.UpdatedAt
	rec.value = stored
	r.s.attempts[attempt.ID] = rec
	return nil
}

func (r *memoryAttemptRepository) DeleteAllByTest(_ context.Context, testID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, rec := range r.s.attempts {
		if rec.value.TestID == testID {
			delete(r.s.attempts, id)
			n++
		}
	}
	return n, nil
}
