package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/pkg/entity"
)

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Save(ctx context.Context, habit *entity.Habit) error {
	return hr.save(ctx, hr.conn, habit)
}

func (hr *HabitsRepository) save(ctx context.Context, q querier, habit *entity.Habit) error {
	doc, err := EncodeDoc(habit)
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, `INSERT INTO habits (id, user_id, doc, created_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW();`,
		habit.ID,
		habit.UserID,
		doc,
		habit.CreatedAt,
	)
	if err != nil {
		return errors.New("saving habit db error: " + err.Error())
	}
	return nil
}

func (hr *HabitsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx, `SELECT doc FROM habits WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var doc []byte
		if err = rows.Scan(&doc); err != nil {
			return nil, errors.New("scanning habit error: " + err.Error())
		}
		h, err := DecodeDoc[entity.Habit](doc)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}
