package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/internal/repository"
	"github.com/anonymity12/habitplanet/internal/store"
	"github.com/anonymity12/habitplanet/pkg/dateutil"
	"github.com/anonymity12/habitplanet/pkg/entity"
	"github.com/anonymity12/habitplanet/pkg/logging"
)

// Rollover resets the daily progress of h unless it was last checked in
// today. It reports whether h changed, and is a no-op on a second call the
// same day. Streak is left alone.
func Rollover(h *entity.Habit, today string) bool {
	if h.LastCheckInDate != nil && *h.LastCheckInDate == today {
		return false
	}
	changed := h.CompletedCount != 0 || h.IsCompletedToday
	h.CompletedCount = 0
	h.IsCompletedToday = false
	return changed
}

// NextStreak is the streak h reaches with a check-in today.
func NextStreak(h *entity.Habit, today, yesterday string) int {
	switch {
	case h.LastCheckInDate == nil:
		return 1
	case *h.LastCheckInDate == today:
		return h.Streak
	case *h.LastCheckInDate == yesterday:
		return h.Streak + 1
	default:
		return 1
	}
}

// applyCheckIn advances h by one check-in. h must already be rolled over.
func applyCheckIn(h *entity.Habit, today, yesterday string) {
	h.Streak = NextStreak(h, today, yesterday)
	h.CompletedCount++
	if h.CompletedCount >= h.TargetCount {
		h.IsCompletedToday = true
	}
	d := today
	h.LastCheckInDate = &d
}

type CheckInService struct {
	sessions *Sessions
	calendar *dateutil.Calendar
	policy   RewardPolicy
	notifier Notifier
}

func NewCheckInService(sessions *Sessions, calendar *dateutil.Calendar, policy RewardPolicy, notifier Notifier) *CheckInService {
	if sessions == nil || calendar == nil {
		log.Fatal("on check-in service provided nil sessions or calendar")
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &CheckInService{
		sessions: sessions,
		calendar: calendar,
		policy:   policy,
		notifier: notifier,
	}
}

func (serv *CheckInService) CheckIn(ctx context.Context, uid, habitID uuid.UUID, req *CheckInRequest) (*entity.CheckInResult, error) {
	if req == nil {
		req = &CheckInRequest{}
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var result *entity.CheckInResult
	err := serv.sessions.Do(ctx, uid, func(sess *store.Session) error {
		habit, ok := sess.Habit(habitID)
		if !ok || habit.UserID != uid {
			return errorvalues.ErrHabitNotFound
		}
		now := serv.calendar.Now()
		today, yesterday := serv.calendar.Today(), serv.calendar.Yesterday()
		Rollover(habit, today)
		// Multi-target habits accept check-ins past the target without a cap.
		if habit.IsCompletedToday && habit.TargetCount <= 1 {
			return errorvalues.ErrAlreadyCompleted
		}
		applyCheckIn(habit, today, yesterday)

		user := sess.User()
		rewards := serv.policy.Grant(user, habit.Streak)
		record := newRecord(uid, habit.ID, now.UnixMilli(), today, req)

		sess.CommitCheckIn(habit, record, user)
		warning := serv.sessions.persist(ctx, "check-in", func(ctx context.Context, st repository.StorageI) error {
			return st.CommitCheckIn(ctx, habit, record, user)
		})
		result = &entity.CheckInResult{
			Record:       record,
			UpdatedHabit: habit,
			Rewards:      rewards,
			Warning:      warning,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) ||
			errors.Is(err, errorvalues.ErrAlreadyCompleted) ||
			errors.Is(err, errorvalues.ErrUserNotFound) ||
			errors.Is(err, errorvalues.ErrStorageFailure) {
			return nil, err
		}
		return nil, errors.New("check-in error: " + err.Error())
	}
	logging.FromContext(ctx).Info("habit checked in",
		slog.String("habit_id", habitID.String()),
		slog.Int("streak", result.UpdatedHabit.Streak),
		slog.Int("coins", result.Rewards.Coins),
	)
	serv.notifier.Notify(uid, entity.Event{Type: entity.EventCheckInCreated, Payload: result})
	if result.Rewards.LevelUp {
		serv.notifier.Notify(uid, entity.Event{Type: entity.EventPetLeveledUp, Payload: result.Rewards})
	}
	return result, nil
}

// newRecord builds the immutable log entry. Location is kept only when both
// coordinates are present.
func newRecord(uid, habitID uuid.UUID, ts int64, day string, req *CheckInRequest) *entity.CheckInRecord {
	record := &entity.CheckInRecord{
		ID:         uuid.New(),
		HabitID:    habitID,
		UserID:     uid,
		Timestamp:  ts,
		DateString: day,
	}
	if req.Note != nil {
		if note := strings.TrimSpace(*req.Note); note != "" {
			record.Note = &note
		}
	}
	if req.Lat != nil && req.Lng != nil {
		record.Location = &entity.Location{Lat: *req.Lat, Lng: *req.Lng}
	}
	return record
}
