package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/internal/repository"
	"github.com/anonymity12/habitplanet/internal/store"
	"github.com/anonymity12/habitplanet/pkg/dateutil"
	"github.com/anonymity12/habitplanet/pkg/entity"
)

const defaultHabitTitle = "New Habit"

type HabitsService struct {
	sessions *Sessions
	calendar *dateutil.Calendar
}

func NewHabitsService(sessions *Sessions, calendar *dateutil.Calendar) *HabitsService {
	if sessions == nil || calendar == nil {
		log.Fatal("provided nil sessions or calendar")
	}
	return &HabitsService{
		sessions: sessions,
		calendar: calendar,
	}
}

func (hs *HabitsService) ListHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	var habits []*entity.Habit
	err := hs.sessions.Do(ctx, uid, func(sess *store.Session) error {
		today := hs.calendar.Today()
		habits = sess.Habits()
		for _, h := range habits {
			if !Rollover(h, today) {
				continue
			}
			sess.PutHabit(h)
			rolled := h.Clone()
			hs.sessions.persist(ctx, "rollover", func(ctx context.Context, st repository.StorageI) error {
				return st.SaveHabit(ctx, rolled)
			})
		}
		return nil
	})
	if err != nil {
		return nil, hs.wrap(err)
	}
	return habits, nil
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	if req == nil {
		req = &CreateHabitRequest{}
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	habit := newHabit(uid, req, hs.calendar.Now())
	err := hs.sessions.Do(ctx, uid, func(sess *store.Session) error {
		sess.PutHabit(habit)
		hs.sessions.persist(ctx, "create habit", func(ctx context.Context, st repository.StorageI) error {
			return st.SaveHabit(ctx, habit)
		})
		return nil
	})
	if err != nil {
		return nil, hs.wrap(err)
	}
	return habit.Clone(), nil
}

func newHabit(uid uuid.UUID, req *CreateHabitRequest, now time.Time) *entity.Habit {
	h := &entity.Habit{
		ID:          uuid.New(),
		UserID:      uid,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Type:        req.Type,
		Frequency:   req.Frequency,
		TargetCount: req.TargetCount,
		SubTasks:    make([]entity.SubTask, 0, len(req.SubTasks)),
		CreatedAt:   now.UTC().Round(0),
	}
	if h.Title == "" {
		h.Title = defaultHabitTitle
	}
	if h.Type == "" {
		h.Type = entity.HabitTypeLife
	}
	if h.Frequency == "" {
		h.Frequency = entity.FrequencyDaily
	}
	if h.TargetCount < 1 {
		h.TargetCount = 1
	}
	for _, title := range req.SubTasks {
		h.SubTasks = append(h.SubTasks, entity.SubTask{ID: uuid.New(), Title: title})
	}
	return h
}

// DeleteHabit removes the habit. Its check-in records stay in the log.
func (hs *HabitsService) DeleteHabit(ctx context.Context, uid, habitID uuid.UUID) error {
	err := hs.sessions.Do(ctx, uid, func(sess *store.Session) error {
		if !sess.DeleteHabit(habitID) {
			return errorvalues.ErrHabitNotFound
		}
		hs.sessions.persist(ctx, "delete habit", func(ctx context.Context, st repository.StorageI) error {
			err := st.DeleteHabit(ctx, habitID)
			// Never reached storage, nothing to remove
			if errors.Is(err, errorvalues.ErrHabitNotFound) {
				return nil
			}
			return err
		})
		return nil
	})
	if err != nil {
		return hs.wrap(err)
	}
	return nil
}

func (hs *HabitsService) ToggleSubtask(ctx context.Context, uid, habitID, subtaskID uuid.UUID) (*entity.Habit, error) {
	var habit *entity.Habit
	err := hs.sessions.Do(ctx, uid, func(sess *store.Session) error {
		h, ok := sess.Habit(habitID)
		if !ok {
			return errorvalues.ErrHabitNotFound
		}
		idx := -1
		for i := range h.SubTasks {
			if h.SubTasks[i].ID == subtaskID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return errorvalues.ErrSubtaskNotFound
		}
		Rollover(h, hs.calendar.Today())
		h.SubTasks[idx].IsCompleted = !h.SubTasks[idx].IsCompleted
		sess.PutHabit(h)
		hs.sessions.persist(ctx, "toggle subtask", func(ctx context.Context, st repository.StorageI) error {
			return st.SaveHabit(ctx, h)
		})
		habit = h
		return nil
	})
	if err != nil {
		return nil, hs.wrap(err)
	}
	return habit, nil
}

func (hs *HabitsService) wrap(err error) error {
	if errorvalues.IsNotFound(err) || errors.Is(err, errorvalues.ErrStorageFailure) {
		return err
	}
	return errors.New("habits service error: " + err.Error())
}
