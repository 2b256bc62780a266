package postgresql

import (
	"context"
	"time"

	"github.com/gsh-hris/roster-backend-go/internal/domain/holiday"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO holidays (id, holiday_date, name, type, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query, h.Date, h.Name, h.Type).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return holiday.Holiday{}, err
	}
	return h, nil
}

// ListBetween implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) ListBetween(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `
		SELECT id, holiday_date, name, type, created_at, updated_at
		FROM holidays
		WHERE holiday_date BETWEEN $1 AND $2
		ORDER BY holiday_date
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.Type, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	err := q.QueryRow(ctx, `
		UPDATE holidays
		SET holiday_date = $2, name = $3, type = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, h.ID, h.Date, h.Name, h.Type).Scan(&h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return holiday.Holiday{}, err
	}
	return h, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return pgx.ErrNoRows
	}
	return nil
}
