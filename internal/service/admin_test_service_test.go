package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/coursehive/internal/apperror"
	"github.com/lshigami/coursehive/internal/dto"
	"github.com/lshigami/coursehive/internal/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTestService_CreateTest(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.admin.CreateTest(ctx, "admin-1", sampleTest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Algebra basics", created.Title)
	assert.Equal(t, 5, created.TotalMarks)
	assert.Equal(t, "admin-1", created.CreatedBy)
	assert.True(t, created.Published)
	assert.False(t, created.AllowRetake)
	assert.Equal(t, f.clock.Now(), created.CreatedAt)
	require.Len(t, created.Questions, 2)
	assert.Equal(t, 1, created.Questions[0].CorrectIndex)
	assert.Equal(t, []string{event.TestCreated}, f.publisher.types())
}

func TestAdminTestService_CreateTest_QuestionDefaults(t *testing.T) {
	f := newFixture()
	req := sampleTest()
	req.Questions[0].Marks = nil
	req.Questions[1].Marks = intPtr(0)
	req.Questions[1].NegativeMarks = intPtr(-2)

	created, err := f.admin.CreateTest(context.Background(), "admin-1", req)
	require.NoError(t, err)

	assert.Equal(t, 1, created.Questions[0].Marks)
	assert.Equal(t, 1, created.Questions[1].Marks)
	assert.Equal(t, 2, created.Questions[1].NegativeMarks)
	assert.Equal(t, 2, created.TotalMarks)
}

func TestAdminTestService_CreateTest_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.TestCreateDTO)
	}{
		{"blank title", func(r *dto.TestCreateDTO) { r.Title = "   " }},
		{"zero duration", func(r *dto.TestCreateDTO) { r.DurationMinutes = 0 }},
		{"no questions", func(r *dto.TestCreateDTO) { r.Questions = nil }},
		{"single option", func(r *dto.TestCreateDTO) { r.Questions[0].Options = []string{"only"} }},
		{"correct index out of range", func(r *dto.TestCreateDTO) { r.Questions[1].CorrectIndex = intPtr(2) }},
		{"missing correct index", func(r *dto.TestCreateDTO) { r.Questions[1].CorrectIndex = nil }},
		{"negative marks value", func(r *dto.TestCreateDTO) { r.Questions[0].Marks = intPtr(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := sampleTest()
			tt.mutate(&req)

			_, err := f.admin.CreateTest(context.Background(), "admin-1", req)
			require.Error(t, err)
			assert.True(t, apperror.Is(err, apperror.KindValidation), "got %v", err)

			owned, err := f.admin.ListOwnedTests(context.Background(), "admin-1")
			require.NoError(t, err)
			assert.Empty(t, owned)
			assert.Empty(t, f.publisher.events)
		})
	}
}

func TestAdminTestService_CreateTest_PublishFailureIsIgnored(t *testing.T) {
	f := newFixture()
	f.publisher.err = errBroker

	created, err := f.admin.CreateTest(context.Background(), "admin-1", sampleTest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestAdminTestService_UpdateTest(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created, err := f.admin.CreateTest(ctx, "admin-1", sampleTest())
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	questions := []dto.QuestionCreateDTO{
		{Text: "only question", Options: []string{"yes", "no"}, CorrectIndex: intPtr(0), Marks: intPtr(4)},
	}
	updated, err := f.admin.UpdateTest(ctx, "admin-1", created.ID, dto.TestUpdateDTO{
		Title:       strPtr(" Renamed "),
		Questions:   &questions,
		Published:   boolPtr(false),
		AllowRetake: boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Linear equations", updated.Description)
	assert.Equal(t, 60, updated.DurationMinutes)
	assert.Equal(t, 4, updated.TotalMarks)
	assert.False(t, updated.Published)
	assert.True(t, updated.AllowRetake)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, f.clock.Now(), updated.UpdatedAt)
	assert.Equal(t, []string{event.TestCreated, event.TestUpdated}, f.publisher.types())
}

func TestAdminTestService_UpdateTest_KeepsTotalWithoutQuestions(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created, err := f.admin.CreateTest(ctx, "admin-1", sampleTest())
	require.NoError(t, err)

	updated, err := f.admin.UpdateTest(ctx, "admin-1", created.ID, dto.TestUpdateDTO{DurationMinutes: intPtr(90)})
	require.NoError(t, err)
	assert.Equal(t, 90, updated.DurationMinutes)
	assert.Equal(t, 5, updated.TotalMarks)
}

func TestAdminTestService_UpdateTest_Errors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created, err := f.admin.CreateTest(ctx, "admin-1", sampleTest())
	require.NoError(t, err)

	_, err = f.admin.UpdateTest(ctx, "admin-2", created.ID, dto.TestUpdateDTO{Title: strPtr("x")})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = f.admin.UpdateTest(ctx, "admin-1", "missing", dto.TestUpdateDTO{Title: strPtr("x")})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = f.admin.UpdateTest(ctx, "admin-1", created.ID, dto.TestUpdateDTO{Title: strPtr("  ")})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = f.admin.UpdateTest(ctx, "admin-1", created.ID, dto.TestUpdateDTO{DurationMinutes: intPtr(-5)})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	unchanged, err := f.store.Tests().FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Algebra basics", unchanged.Title)
	assert.Equal(t, 60, unchanged.DurationMinutes)
}

func TestAdminTestService_DeleteTest_CascadesAttempts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created, err := f.admin.CreateTest(ctx, "admin-1", sampleTest())
	require.NoError(t, err)
	_, err = f.submission.StartTest(ctx, "user-1", created.ID)
	require.NoError(t, err)
	_, err = f.submission.StartTest(ctx, "user-2", created.ID)
	require.NoError(t, err)

	assert.True(t, apperror.Is(f.admin.DeleteTest(ctx, "admin-2", created.ID), apperror.KindNotFound))

	require.NoError(t, f.admin.DeleteTest(ctx, "admin-1", created.ID))

	board, err := f.results.GetTestLeaderboard(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, board)

	_, err = f.user.GetTest(ctx, created.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	last := f.publisher.events[len(f.publisher.events)-1]
	assert.Equal(t, event.TestDeleted, last.Type)
	assert.Equal(t, int64(2), last.Payload.(map[string]interface{})["deletedAttempts"])

	assert.True(t, apperror.Is(f.admin.DeleteTest(ctx, "admin-1", created.ID), apperror.KindNotFound))
}

func TestAdminTestService_ListOwnedTests(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.admin.CreateTest(ctx, "admin-1", sampleTest())
	require.NoError(t, err)
	f.clock.Advance(time.Second)
	second, err := f.admin.CreateTest(ctx, "admin-1", sampleTest())
	require.NoError(t, err)
	_, err = f.admin.CreateTest(ctx, "admin-2", sampleTest())
	require.NoError(t, err)

	owned, err := f.admin.ListOwnedTests(ctx, "admin-1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, second.ID, owned[0].ID)
	assert.Equal(t, first.ID, owned[1].ID)

	none, err := f.admin.ListOwnedTests(ctx, "admin-3")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
