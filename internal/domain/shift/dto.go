package shift

import (
	"strings"

	"github.com/gsh-hris/roster-backend-go/internal/pkg/validator"
)

type TemplateResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	MorningIn    string `json:"morning_in,omitempty"`
	MorningOut   string `json:"morning_out,omitempty"`
	AfternoonIn  string `json:"afternoon_in,omitempty"`
	AfternoonOut string `json:"afternoon_out,omitempty"`
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
	ColorKey     string `json:"color_key"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type CreateTemplateRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	MorningIn    string `json:"morning_in"`
	MorningOut   string `json:"morning_out"`
	AfternoonIn  string `json:"afternoon_in"`
	AfternoonOut string `json:"afternoon_out"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	ColorKey     string `json:"color_key"`
	Status       string `json:"status"`
}

var categoryValues = []string{
	string(CategoryStandard),
	string(CategoryShifting),
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	} else if !validator.IsInSlice(r.Category, categoryValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: " + strings.Join(categoryValues, ", "),
		})
	}

	if r.Category == string(CategoryStandard) {
		for field, value := range map[string]string{
			"morning_in":    r.MorningIn,
			"morning_out":   r.MorningOut,
			"afternoon_in":  r.AfternoonIn,
			"afternoon_out": r.AfternoonOut,
		} {
			if !validator.IsValidTimeOfDay(value) {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be a valid HH:MM time",
				})
			}
		}
	} else if r.Category != "" {
		if !validator.IsValidTimeOfDay(r.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be a valid HH:MM time",
			})
		}
		if !validator.IsValidTimeOfDay(r.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be a valid HH:MM time",
			})
		}
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusOff)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, off",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTemplateRequest struct {
	ID string `json:"-"`
	CreateTemplateRequest
}

func (r *UpdateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if err := r.CreateTemplateRequest.Validate(); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, verrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
