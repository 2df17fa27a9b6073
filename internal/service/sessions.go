package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/internal/repository"
	"github.com/anonymity12/habitplanet/internal/store"
	"github.com/anonymity12/habitplanet/pkg/entity"
	"github.com/anonymity12/habitplanet/pkg/logging"
)

// StorageWarning is reported when a mutation stayed in memory only.
const StorageWarning = "progress is kept for this session but could not be saved"

const defaultWriteTimeout = 5 * time.Second

// Sessions owns the in-memory state of every active user. Each operation runs
// inside the user's exclusive section, storage is only a best-effort mirror.
type Sessions struct {
	storage      repository.StorageI
	memory       *store.Memory
	locks        *store.KeyedMutex
	writeTimeout time.Duration
}

func NewSessions(storage repository.StorageI) *Sessions {
	if storage == nil {
		log.Fatal("provided nil storage for sessions")
	}
	return &Sessions{
		storage:      storage,
		memory:       store.NewMemory(),
		locks:        store.NewKeyedMutex(),
		writeTimeout: defaultWriteTimeout,
	}
}

// Do runs fn with uid's session while holding uid's exclusive section. The
// session is hydrated from storage on first use.
func (s *Sessions) Do(ctx context.Context, uid uuid.UUID, fn func(sess *store.Session) error) error {
	unlock := s.locks.Lock(uid)
	defer unlock()
	sess, err := s.load(ctx, uid)
	if err != nil {
		return err
	}
	return fn(sess)
}

// Admit installs a fresh session for a user who has no stored history yet.
func (s *Sessions) Admit(user *entity.User) {
	unlock := s.locks.Lock(user.ID)
	defer unlock()
	s.memory.Store(user.ID, store.NewSession(user, nil, nil))
}

func (s *Sessions) load(ctx context.Context, uid uuid.UUID) (*store.Session, error) {
	if sess, ok := s.memory.Load(uid); ok {
		return sess, nil
	}
	var (
		user     *entity.User
		habits   []*entity.Habit
		checkIns []*entity.CheckInRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		user, err = s.storage.FindUserByID(gctx, uid)
		return err
	})
	g.Go(func() (err error) {
		habits, err = s.storage.GetHabitsByUserID(gctx, uid)
		return err
	})
	g.Go(func() (err error) {
		checkIns, err = s.storage.GetCheckInsByUserID(gctx, uid)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.Join(errorvalues.ErrStorageFailure, err)
	}
	sess := store.NewSession(user, habits, checkIns)
	s.memory.Store(uid, sess)
	logging.FromContext(ctx).Debug("session hydrated",
		slog.String("uid", uid.String()),
		slog.Int("habits", len(habits)),
		slog.Int("check_ins", len(checkIns)),
	)
	return sess, nil
}

// persist mirrors a committed mutation into storage. The write outlives the
// caller's cancellation, a failure is logged and returned as a warning.
func (s *Sessions) persist(ctx context.Context, op string, write func(ctx context.Context, st repository.StorageI) error) string {
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)
	defer cancel()
	if err := write(wctx, s.storage); err != nil {
		err = errors.Join(errorvalues.ErrStorageFailure, err)
		logging.FromContext(ctx).Warn("persisting failed, session state kept",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return StorageWarning
	}
	return ""
}
