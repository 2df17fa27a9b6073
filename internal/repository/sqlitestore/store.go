// Package sqlitestore keeps habitplanet data in a single SQLite file. It is
// the storage behind the local CLI and mirrors the PostgreSQL schema with
// TEXT documents.
package sqlitestore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/internal/repository"
	"github.com/anonymity12/habitplanet/pkg/entity"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Store struct {
	db *sql.DB
}

var _ repository.StorageI = (*Store)(nil)

// Open opens the database at path (":memory:" is accepted) and migrates it.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.New("open sqlite error: " + err.Error())
	}
	// A single connection keeps in-memory databases alive and serializes writers.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, errors.New("ping sqlite error: " + err.Error())
	}
	if err = runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return errors.New("set dialect error: " + err.Error())
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return errors.New("goose up error: " + err.Error())
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func isPrimaryKeyViolation(err error) bool {
	var sqliteErr *sqlite.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

func (s *Store) CreateUser(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	doc, err := repository.EncodeDoc(user)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO users (id, name, password_hash, doc, updated_at) VALUES (?, ?, ?, ?, ?);`,
		user.ID.String(), user.Name, user.PasswordHash, string(doc), time.Now().UnixMilli())
	if err != nil {
		if isUniqueViolation(err) || isPrimaryKeyViolation(err) {
			return errorvalues.ErrUserExists
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (s *Store) FindUserByName(ctx context.Context, name string) (*entity.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT password_hash, doc FROM users WHERE name = ?;`, name)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return user, nil
}

func (s *Store) FindUserByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT password_hash, doc FROM users WHERE id = ?;`, uid.String())
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func scanUser(row *sql.Row) (*entity.User, error) {
	var passwordHash, doc string
	if err := row.Scan(&passwordHash, &doc); err != nil {
		return nil, err
	}
	user, err := repository.DecodeDoc[entity.User]([]byte(doc))
	if err != nil {
		return nil, err
	}
	user.PasswordHash = passwordHash
	return user, nil
}

func (s *Store) UpdateUser(ctx context.Context, user *entity.User) error {
	return updateUser(ctx, s.db, user)
}

func updateUser(ctx context.Context, q execer, user *entity.User) error {
	doc, err := repository.EncodeDoc(user)
	if err != nil {
		return err
	}
	res, err := q.ExecContext(ctx, `UPDATE users SET doc = ?, updated_at = ? WHERE id = ?;`,
		string(doc), time.Now().UnixMilli(), user.ID.String())
	if err != nil {
		return errors.New("updating user error: " + err.Error())
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (s *Store) SaveHabit(ctx context.Context, habit *entity.Habit) error {
	return saveHabit(ctx, s.db, habit)
}

func saveHabit(ctx context.Context, q execer, habit *entity.Habit) error {
	doc, err := repository.EncodeDoc(habit)
	if err != nil {
		return err
	}
	now := time.Now().UnixMilli()
	_, err = q.ExecContext(ctx, `INSERT INTO habits (id, user_id, doc, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at;`,
		habit.ID.String(), habit.UserID.String(), string(doc), habit.CreatedAt.UnixNano(), now)
	if err != nil {
		return errors.New("saving habit db error: " + err.Error())
	}
	return nil
}

func (s *Store) DeleteHabit(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?;`, id.String())
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (s *Store) GetHabitsByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT doc FROM habits WHERE user_id = ? ORDER BY created_at DESC;`, uid.String())
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	return scanDocs[entity.Habit](rows, "getting habits by uid error: ")
}

func (s *Store) GetCheckInsByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.CheckInRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT doc FROM check_ins WHERE user_id = ? ORDER BY created_at ASC, rowid ASC;`, uid.String())
	if err != nil {
		return nil, errors.New("getting check-ins error: " + err.Error())
	}
	return scanDocs[entity.CheckInRecord](rows, "getting check-ins error: ")
}

func scanDocs[T any](rows *sql.Rows, prefix string) ([]*T, error) {
	defer rows.Close()
	result := make([]*T, 0)
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, errors.New(prefix + err.Error())
		}
		v, err := repository.DecodeDoc[T]([]byte(doc))
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New(prefix + err.Error())
	}
	return result, nil
}

func createCheckIn(ctx context.Context, q execer, record *entity.CheckInRecord) error {
	doc, err := repository.EncodeDoc(record)
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx, `INSERT INTO check_ins (id, user_id, habit_id, doc, created_at) VALUES (?, ?, ?, ?, ?);`,
		record.ID.String(), record.UserID.String(), record.HabitID.String(), string(doc), record.Timestamp)
	if err != nil {
		if isUniqueViolation(err) || isPrimaryKeyViolation(err) {
			return errorvalues.ErrCheckExist
		}
		return errors.New("creating check-in error: " + err.Error())
	}
	return nil
}

func (s *Store) CommitCheckIn(ctx context.Context, habit *entity.Habit, record *entity.CheckInRecord, user *entity.User) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.New("begin tx error: " + err.Error())
	}
	defer tx.Rollback()
	if err = saveHabit(ctx, tx, habit); err != nil {
		return err
	}
	if err = createCheckIn(ctx, tx, record); err != nil {
		return err
	}
	if err = updateUser(ctx, tx, user); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return errors.New("commit tx error: " + err.Error())
	}
	return nil
}
