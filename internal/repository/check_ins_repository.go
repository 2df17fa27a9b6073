package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/pkg/entity"
)

type CheckInsRepository struct {
	conn PgConnection
}

func NewCheckInsRepoWithConn(conn PgConnection) *CheckInsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for checkInsRepo: " + err.Error())
	}
	return &CheckInsRepository{
		conn: conn,
	}
}

func (cr *CheckInsRepository) Create(ctx context.Context, record *entity.CheckInRecord) error {
	return cr.create(ctx, cr.conn, record)
}

func (cr *CheckInsRepository) create(ctx context.Context, q querier, record *entity.CheckInRecord) error {
	doc, err := EncodeDoc(record)
	if err != nil {
		return err
	}
	_, err = q.Exec(
		ctx,
		`INSERT INTO check_ins (id, user_id, habit_id, doc, created_at) VALUES ($1, $2, $3, $4, $5);`,
		record.ID,
		record.UserID,
		record.HabitID,
		doc,
		time.UnixMilli(record.Timestamp).UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: records are immutable
			case "23505":
				return errorvalues.ErrCheckExist
			}
		}
		return errors.New("creating check-in error: " + err.Error())
	}
	return nil
}

func (cr *CheckInsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.CheckInRecord, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT doc FROM check_ins WHERE user_id = $1 ORDER BY created_at ASC, id ASC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting check-ins error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.CheckInRecord, 0, 8)
	for rows.Next() {
		var doc []byte
		if err = rows.Scan(&doc); err != nil {
			return nil, errors.New("check-in row parsing error: " + err.Error())
		}
		rec, err := DecodeDoc[entity.CheckInRecord](doc)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected check-in rows error: " + err.Error())
	}
	return result, nil
}

