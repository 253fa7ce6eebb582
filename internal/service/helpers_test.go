package service

import (
	"errors"
	"time"

	"github.com/lshigami/coursehive/internal/dto"
	"github.com/lshigami/coursehive/internal/repository"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recordedEvent struct {
	Type    string
	Payload interface{}
}

type recordingPublisher struct {
	events []recordedEvent
	err    error
}

func (p *recordingPublisher) Publish(eventType string, payload interface{}) error {
	p.events = append(p.events, recordedEvent{Type: eventType, Payload: payload})
	return p.err
}

func (p *recordingPublisher) Close() {}

func (p *recordingPublisher) types() []string {
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	store      *repository.MemoryStore
	clock      *fakeClock
	publisher  *recordingPublisher
	admin      AdminTestService
	user       UserTestService
	submission TestSubmissionService
	results    AttemptService
}

func newFixture() *fixture {
	store := repository.NewMemoryStore()
	clock := newFakeClock()
	pub := &recordingPublisher{}
	return &fixture{
		store:      store,
		clock:      clock,
		publisher:  pub,
		admin:      NewAdminTestService(store.Tests(), store.Attempts(), pub, clock.Now),
		user:       NewUserTestService(store.Tests()),
		submission: NewTestSubmissionService(store.Tests(), store.Attempts(), pub, clock.Now),
		results:    NewAttemptService(store.Tests(), store.Attempts(), NewScoreConverterService()),
	}
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

// sampleTest has two questions worth 2 and 3 marks. The correct options are
// 1 and 0.
func sampleTest() dto.TestCreateDTO {
	return dto.TestCreateDTO{
		Title:           "  Algebra basics ",
		Description:     "Linear equations",
		Subject:         "math",
		DurationMinutes: 60,
		Questions: []dto.QuestionCreateDTO{
			{Text: "2x = 4, x = ?", Options: []string{"1", "2", "3"}, CorrectIndex: intPtr(1), Marks: intPtr(2)},
			{Text: "x + 1 = 1, x = ?", Options: []string{"0", "1"}, CorrectIndex: intPtr(0), Marks: intPtr(3)},
		},
	}
}

func answer(questionIndex int, selected string) dto.AnswerSubmitDTO {
	a := dto.AnswerSubmitDTO{QuestionIndex: intPtr(questionIndex)}
	if selected != "" {
		a.SelectedIndex = []byte(selected)
	}
	return a
}

var errBroker = errors.New("broker unavailable")
