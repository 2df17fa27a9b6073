package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	doc, err := EncodeDoc(user)
	if err != nil {
		return err
	}
	_, err = ur.conn.Exec(ctx, `INSERT INTO users (id, name, password_hash, doc) VALUES ($1, $2, $3, $4);`,
		user.ID,
		user.Name,
		user.PasswordHash,
		doc,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT password_hash, doc FROM users WHERE name = $1;`, name)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT password_hash, doc FROM users WHERE id = $1;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) Update(ctx context.Context, user *entity.User) error {
	return ur.update(ctx, ur.conn, user)
}

func (ur *UsersRepository) update(ctx context.Context, q querier, user *entity.User) error {
	doc, err := EncodeDoc(user)
	if err != nil {
		return err
	}
	ct, err := q.Exec(ctx, `UPDATE users SET doc = $1, updated_at = NOW() WHERE id = $2;`, doc, user.ID)
	if err != nil {
		return errors.New("updating user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		passwordHash string
		doc          []byte
	)
	if err := row.Scan(&passwordHash, &doc); err != nil {
		return nil, err
	}
	user, err := DecodeDoc[entity.User](doc)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = passwordHash
	return user, nil
}
