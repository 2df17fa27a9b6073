package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/anonymity12/habitplanet/pkg/entity"
)

// StorageI is the persistence collaborator of the engines. It keeps three
// independent record sets (users, habits, check-ins) keyed by id and does
// not enforce foreign keys.
type StorageI interface {
	// Creates new user. Returns ErrUserExists on duplicated name
	CreateUser(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindUserByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid
	FindUserByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Replaces user's progression (coins, pet, inventory, cards)
	UpdateUser(ctx context.Context, user *entity.User) error
	// Inserts or replaces habit
	SaveHabit(ctx context.Context, habit *entity.Habit) error
	// Deletes habit with id
	DeleteHabit(ctx context.Context, id uuid.UUID) error
	// Lists habits owned by uid, newest first
	GetHabitsByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	// Lists check-in records of uid in creation order
	GetCheckInsByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.CheckInRecord, error)
	// Saves habit, appends record and saves user in one transaction
	CommitCheckIn(ctx context.Context, habit *entity.Habit, record *entity.CheckInRecord, user *entity.User) error
	Close() error
}

type DBConfig interface {
	ConnString() string
}

// querier is the part of a connection shared with pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	querier
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PGCfg struct {
	Address  string `env:"HABITPLANET_POSTGRES_ADDRESS" envDefault:"localhost:5432"`
	Username string `env:"HABITPLANET_POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"HABITPLANET_POSTGRES_PASSWORD"`
	DB       string `env:"HABITPLANET_POSTGRES_DB" envDefault:"habitplanet"`
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
