package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // HR admin - manages master data and rosters
	RoleApprover Role = "approver" // Chief nurse / department head - approves schedules
	RoleEmployee Role = "employee" // Regular employee - views own schedule
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user manages master data
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if user can record approval decisions
func (u *User) CanApprove() bool {
	return u.Role == RoleApprover || u.Role == RoleAdmin
}
