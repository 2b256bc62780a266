package holiday

import (
	"github.com/gsh-hris/roster-backend-go/internal/pkg/validator"
)

type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateHolidayRequest struct {
	ID string `json:"-"`
	CreateHolidayRequest
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if err := r.CreateHolidayRequest.Validate(); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, verrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListHolidayRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r *ListHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start is required",
		})
	} else if _, ok := validator.IsValidDate(r.Start); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.End) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end is required",
		})
	} else if _, ok := validator.IsValidDate(r.End); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
