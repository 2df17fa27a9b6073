package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/internal/repository"
	"github.com/anonymity12/habitplanet/pkg/entity"
)

var (
	userID = uuid.New()
)

func testHabit() entity.Habit {
	last := "2024-03-09"
	return entity.Habit{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "Code Study",
		Description: "Learn Go for 1 hour",
		Type:        entity.HabitTypeStudy,
		Frequency:   entity.FrequencyDaily,
		TargetCount: 1,
		SubTasks: []entity.SubTask{
			{ID: uuid.New(), Title: "Read Docs"},
			{ID: uuid.New(), Title: "Write Code", IsCompleted: true},
		},
		Streak:          12,
		LastCheckInDate: &last,
		CreatedAt:       time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestSaveHabit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	habit := testHabit()
	query := regexp.QuoteMeta(`INSERT INTO habits (id, user_id, doc, created_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW();`)
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "saved",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(habit.ID, habit.UserID, pgxmock.AnyArg(), habit.CreatedAt).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("saving habit db error: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(habit.ID, habit.UserID, pgxmock.AnyArg(), habit.CreatedAt).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.Save(ctx, &habit)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHabitsByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT doc FROM habits WHERE user_id = $1 ORDER BY created_at DESC;`)
	first, second := testHabit(), testHabit()
	second.Title = "Morning Water"
	second.LastCheckInDate = nil
	second.SubTasks = []entity.SubTask{}
	firstDoc, err := repository.EncodeDoc(first)
	require.NoError(t, err)
	secondDoc, err := repository.EncodeDoc(second)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"doc"}).AddRow(firstDoc).AddRow(secondDoc))
		habits, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, habits, 2)
		assert.Equal(t, first, *habits[0])
		assert.Equal(t, second, *habits[1])
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"doc"}))
		habits, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, habits)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, userID)
		assert.EqualError(t, err, "getting habits by uid error: db error")
	})
}

func TestDeleteHabit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM habits WHERE id = $1;`)
	habitID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "deleted",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(habitID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(habitID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("error deleting habit: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(habitID).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.Delete(ctx, habitID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
