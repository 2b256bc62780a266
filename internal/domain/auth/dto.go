package auth

import "github.com/gsh-hris/roster-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken      string  `json:"access_token"`
	ExpiresAt        int64   `json:"expires_at"`
	RefreshToken     string  `json:"-"`
	RefreshExpiresAt int64   `json:"-"`
	UserID           string  `json:"user_id"`
	Role             string  `json:"role"`
	EmployeeID       *string `json:"employee_id,omitempty"`
}
