package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gsh-hris/roster-backend-go/internal/domain/employee"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const employeeColumns = `
	id, employee_no, last_name, first_name, middle_name, suffix,
	position, department, status, created_at, updated_at, deleted_at
`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID,
		&emp.EmployeeNo,
		&emp.LastName,
		&emp.FirstName,
		&emp.MiddleName,
		&emp.Suffix,
		&emp.Position,
		&emp.Department,
		&emp.Status,
		&emp.CreatedAt,
		&emp.UpdatedAt,
		&emp.DeletedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employees (
			id, employee_no, last_name, first_name, middle_name, suffix,
			position, department, status, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		emp.EmployeeNo,
		emp.LastName,
		emp.FirstName,
		emp.MiddleName,
		emp.Suffix,
		emp.Position,
		emp.Department,
		emp.Status,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeNoExists
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"deleted_at IS NULL"}
	args := []any{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(last_name ILIKE $%d OR first_name ILIKE $%d OR employee_no ILIKE $%d)",
			argIdx, argIdx, argIdx,
		))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Department != nil && *filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var totalCount int64
	countQuery := "SELECT COUNT(*) FROM employees " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM employees %s ORDER BY last_name, first_name LIMIT $%d OFFSET $%d",
		employeeColumns, where, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	return employees, totalCount, rows.Err()
}

// ListAll implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE deleted_at IS NULL ORDER BY last_name, first_name`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employees
		SET last_name = $2, first_name = $3, middle_name = $4, suffix = $5,
			position = $6, department = $7, status = $8, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING employee_no, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.LastName,
		emp.FirstName,
		emp.MiddleName,
		emp.Suffix,
		emp.Position,
		emp.Department,
		emp.Status,
	).Scan(&emp.EmployeeNo, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// Delete implements employee.EmployeeRepository.
// Soft delete keeps historical duty assignments resolvable.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `
		UPDATE employees SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return pgx.ErrNoRows
	}
	return nil
}
