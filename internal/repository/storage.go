package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anonymity12/habitplanet/pkg/cleanup"
	"github.com/anonymity12/habitplanet/pkg/entity"
)

// Storage is the PostgreSQL implementation of StorageI.
type Storage struct {
	conn     PgConnection
	close    func()
	users    *UsersRepository
	habits   *HabitsRepository
	checkIns *CheckInsRepository
}

var _ StorageI = (*Storage)(nil)

// NewStorage opens a pool for cfg and registers its closing as a cleanup job.
func NewStorage(ctx context.Context, cfg DBConfig) (*Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating pgxpool error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("error while pinging pgxpool: " + err.Error())
	}
	s := NewStorageWithConn(pool)
	s.close = pool.Close
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F:    s.Close,
	})
	return s, nil
}

func NewStorageWithConn(conn PgConnection) *Storage {
	return &Storage{
		conn:     conn,
		users:    NewUsersRepoWithConn(conn),
		habits:   NewHabitsRepoWithConn(conn),
		checkIns: NewCheckInsRepoWithConn(conn),
	}
}

func (s *Storage) CreateUser(ctx context.Context, user *entity.User) error {
	return s.users.Create(ctx, user)
}

func (s *Storage) FindUserByName(ctx context.Context, name string) (*entity.User, error) {
	return s.users.FindByName(ctx, name)
}

func (s *Storage) FindUserByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	return s.users.FindByID(ctx, uid)
}

func (s *Storage) UpdateUser(ctx context.Context, user *entity.User) error {
	return s.users.Update(ctx, user)
}

func (s *Storage) SaveHabit(ctx context.Context, habit *entity.Habit) error {
	return s.habits.Save(ctx, habit)
}

func (s *Storage) DeleteHabit(ctx context.Context, id uuid.UUID) error {
	return s.habits.Delete(ctx, id)
}

func (s *Storage) GetHabitsByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	return s.habits.GetByUserID(ctx, uid)
}

func (s *Storage) GetCheckInsByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.CheckInRecord, error) {
	return s.checkIns.GetByUserID(ctx, uid)
}

func (s *Storage) CommitCheckIn(ctx context.Context, habit *entity.Habit, record *entity.CheckInRecord, user *entity.User) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		if err := s.habits.save(ctx, tx, habit); err != nil {
			return err
		}
		if err := s.checkIns.create(ctx, tx, record); err != nil {
			return err
		}
		return s.users.update(ctx, tx, user)
	})
}

func (s *Storage) Close() error {
	if s.close != nil {
		s.close()
		s.close = nil
	}
	return nil
}

// withTx runs fn inside a transaction, rolling back unless fn and commit succeed.
func (s *Storage) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return errors.New("begin tx error: " + err.Error())
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("commit tx error: " + err.Error())
	}
	committed = true
	return nil
}
