package postgresql

import (
	"context"

	"github.com/gsh-hris/roster-backend-go/internal/domain/leave"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveTemplateRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTemplateRepository(db *database.DB) leave.TemplateRepository {
	return &leaveTemplateRepositoryImpl{db: db}
}

// Create implements leave.TemplateRepository.
func (r *leaveTemplateRepositoryImpl) Create(ctx context.Context, t leave.Template) (leave.Template, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_templates (id, name, created_at, updated_at)
		VALUES (uuidv7(), $1, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query, t.Name).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return leave.Template{}, err
	}
	return t, nil
}

// GetByID implements leave.TemplateRepository.
func (r *leaveTemplateRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Template, error) {
	q := GetQuerier(ctx, r.db)
	var t leave.Template
	err := q.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM leave_templates
		WHERE id = $1 AND deleted_at IS NULL
	`, id).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return leave.Template{}, err
	}
	return t, nil
}

// List implements leave.TemplateRepository.
func (r *leaveTemplateRepositoryImpl) List(ctx context.Context) ([]leave.Template, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM leave_templates
		WHERE deleted_at IS NULL
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []leave.Template
	for rows.Next() {
		var t leave.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// Update implements leave.TemplateRepository.
func (r *leaveTemplateRepositoryImpl) Update(ctx context.Context, t leave.Template) (leave.Template, error) {
	q := GetQuerier(ctx, r.db)
	err := q.QueryRow(ctx, `
		UPDATE leave_templates
		SET name = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING created_at, updated_at
	`, t.ID, t.Name).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return leave.Template{}, err
	}
	return t, nil
}

// Delete implements leave.TemplateRepository.
func (r *leaveTemplateRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `
		UPDATE leave_templates SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return pgx.ErrNoRows
	}
	return nil
}
