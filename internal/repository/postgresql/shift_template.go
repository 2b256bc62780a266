package postgresql

import (
	"context"

	"github.com/gsh-hris/roster-backend-go/internal/domain/shift"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftTemplateRepositoryImpl struct {
	db *database.DB
}

func NewShiftTemplateRepository(db *database.DB) shift.TemplateRepository {
	return &shiftTemplateRepositoryImpl{db: db}
}

const shiftTemplateColumns = `
	id, name, category,
	morning_in, morning_out, afternoon_in, afternoon_out,
	start_time, end_time, color_key, status,
	created_at, updated_at
`

func scanShiftTemplate(row pgx.Row) (shift.Template, error) {
	var t shift.Template
	err := row.Scan(
		&t.ID, &t.Name, &t.Category,
		&t.MorningIn, &t.MorningOut, &t.AfternoonIn, &t.AfternoonOut,
		&t.StartTime, &t.EndTime, &t.ColorKey, &t.Status,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Create implements shift.TemplateRepository.
func (r *shiftTemplateRepositoryImpl) Create(ctx context.Context, t shift.Template) (shift.Template, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO shift_templates (
			id, name, category,
			morning_in, morning_out, afternoon_in, afternoon_out,
			start_time, end_time, color_key, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		t.Name, t.Category,
		t.MorningIn, t.MorningOut, t.AfternoonIn, t.AfternoonOut,
		t.StartTime, t.EndTime, t.ColorKey, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return shift.Template{}, err
	}
	return t, nil
}

// GetByID implements shift.TemplateRepository.
func (r *shiftTemplateRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Template, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + shiftTemplateColumns + ` FROM shift_templates WHERE id = $1 AND deleted_at IS NULL`
	return scanShiftTemplate(q.QueryRow(ctx, query, id))
}

// List implements shift.TemplateRepository.
func (r *shiftTemplateRepositoryImpl) List(ctx context.Context) ([]shift.Template, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + shiftTemplateColumns + ` FROM shift_templates WHERE deleted_at IS NULL ORDER BY name`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []shift.Template
	for rows.Next() {
		t, err := scanShiftTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// Update implements shift.TemplateRepository.
func (r *shiftTemplateRepositoryImpl) Update(ctx context.Context, t shift.Template) (shift.Template, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE shift_templates
		SET name = $2, category = $3,
			morning_in = $4, morning_out = $5, afternoon_in = $6, afternoon_out = $7,
			start_time = $8, end_time = $9, color_key = $10, status = $11,
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		t.ID, t.Name, t.Category,
		t.MorningIn, t.MorningOut, t.AfternoonIn, t.AfternoonOut,
		t.StartTime, t.EndTime, t.ColorKey, t.Status,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return shift.Template{}, err
	}
	return t, nil
}

// Delete implements shift.TemplateRepository. Soft delete: history may
// still reference the template through snapshots.
func (r *shiftTemplateRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `
		UPDATE shift_templates SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return pgx.ErrNoRows
	}
	return nil
}
