package master

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gsh-hris/roster-backend-go/internal/domain/holiday"
	"github.com/gsh-hris/roster-backend-go/internal/domain/leave"
	"github.com/gsh-hris/roster-backend-go/internal/domain/shift"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/dateutil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MasterService manages the reference data the duty calendar resolves
// against: shift templates, leave templates and the holiday table.
type MasterService interface {
	// Shift template operations
	CreateShiftTemplate(ctx context.Context, req shift.CreateTemplateRequest) (shift.TemplateResponse, error)
	GetShiftTemplate(ctx context.Context, id string) (shift.TemplateResponse, error)
	ListShiftTemplates(ctx context.Context) ([]shift.TemplateResponse, error)
	UpdateShiftTemplate(ctx context.Context, req shift.UpdateTemplateRequest) (shift.TemplateResponse, error)
	DeleteShiftTemplate(ctx context.Context, id string) error

	// Leave template operations
	CreateLeaveTemplate(ctx context.Context, req leave.CreateTemplateRequest) (leave.TemplateResponse, error)
	GetLeaveTemplate(ctx context.Context, id string) (leave.TemplateResponse, error)
	ListLeaveTemplates(ctx context.Context) ([]leave.TemplateResponse, error)
	UpdateLeaveTemplate(ctx context.Context, req leave.UpdateTemplateRequest) (leave.TemplateResponse, error)
	DeleteLeaveTemplate(ctx context.Context, id string) error

	// Holiday operations
	CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error)
	ListHolidays(ctx context.Context, req holiday.ListHolidayRequest) ([]holiday.HolidayResponse, error)
	UpdateHoliday(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	shiftRepo   shift.TemplateRepository
	leaveRepo   leave.TemplateRepository
	holidayRepo holiday.HolidayRepository
}

func NewMasterService(
	shiftRepo shift.TemplateRepository,
	leaveRepo leave.TemplateRepository,
	holidayRepo holiday.HolidayRepository,
) MasterService {
	return &masterServiceImpl{
		shiftRepo:   shiftRepo,
		leaveRepo:   leaveRepo,
		holidayRepo: holidayRepo,
	}
}

// ==================== SHIFT TEMPLATE OPERATIONS ====================

func (s *masterServiceImpl) CreateShiftTemplate(ctx context.Context, req shift.CreateTemplateRequest) (shift.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.TemplateResponse{}, err
	}

	entity := shiftTemplateFromRequest(req)
	created, err := s.shiftRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.TemplateResponse{}, shift.ErrTemplateNameExists
		}
		return shift.TemplateResponse{}, fmt.Errorf("failed to create shift template: %w", err)
	}

	return mapShiftTemplateToResponse(created), nil
}

func (s *masterServiceImpl) GetShiftTemplate(ctx context.Context, id string) (shift.TemplateResponse, error) {
	entity, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.TemplateResponse{}, shift.ErrTemplateNotFound
		}
		return shift.TemplateResponse{}, err
	}
	return mapShiftTemplateToResponse(entity), nil
}

func (s *masterServiceImpl) ListShiftTemplates(ctx context.Context) ([]shift.TemplateResponse, error) {
	templates, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift templates: %w", err)
	}

	responses := make([]shift.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		responses = append(responses, mapShiftTemplateToResponse(t))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateShiftTemplate(ctx context.Context, req shift.UpdateTemplateRequest) (shift.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.TemplateResponse{}, err
	}

	entity := shiftTemplateFromRequest(req.CreateTemplateRequest)
	entity.ID = req.ID

	updated, err := s.shiftRepo.Update(ctx, entity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.TemplateResponse{}, shift.ErrTemplateNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.TemplateResponse{}, shift.ErrTemplateNameExists
		}
		return shift.TemplateResponse{}, fmt.Errorf("failed to update shift template: %w", err)
	}
	return mapShiftTemplateToResponse(updated), nil
}

func (s *masterServiceImpl) DeleteShiftTemplate(ctx context.Context, id string) error {
	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrTemplateNotFound
		}
		return fmt.Errorf("failed to delete shift template: %w", err)
	}
	return nil
}

func shiftTemplateFromRequest(req shift.CreateTemplateRequest) shift.Template {
	status := shift.Status(req.Status)
	if status == "" {
		status = shift.StatusActive
	}
	return shift.Template{
		Name:         req.Name,
		Category:     shift.Category(req.Category),
		MorningIn:    req.MorningIn,
		MorningOut:   req.MorningOut,
		AfternoonIn:  req.AfternoonIn,
		AfternoonOut: req.AfternoonOut,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ColorKey:     req.ColorKey,
		Status:       status,
	}
}

func mapShiftTemplateToResponse(t shift.Template) shift.TemplateResponse {
	return shift.TemplateResponse{
		ID:           t.ID,
		Name:         t.Name,
		Category:     string(t.Category),
		MorningIn:    t.MorningIn,
		MorningOut:   t.MorningOut,
		AfternoonIn:  t.AfternoonIn,
		AfternoonOut: t.AfternoonOut,
		StartTime:    t.StartTime,
		EndTime:      t.EndTime,
		ColorKey:     t.ColorKey,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt.Format(time.RFC3339),
	}
}

// ==================== LEAVE TEMPLATE OPERATIONS ====================

func (s *masterServiceImpl) CreateLeaveTemplate(ctx context.Context, req leave.CreateTemplateRequest) (leave.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.TemplateResponse{}, err
	}

	created, err := s.leaveRepo.Create(ctx, leave.Template{Name: req.Name})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.TemplateResponse{}, leave.ErrTemplateNameExists
		}
		return leave.TemplateResponse{}, fmt.Errorf("failed to create leave template: %w", err)
	}
	return mapLeaveTemplateToResponse(created), nil
}

func (s *masterServiceImpl) GetLeaveTemplate(ctx context.Context, id string) (leave.TemplateResponse, error) {
	entity, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.TemplateResponse{}, leave.ErrTemplateNotFound
		}
		return leave.TemplateResponse{}, err
	}
	return mapLeaveTemplateToResponse(entity), nil
}

func (s *masterServiceImpl) ListLeaveTemplates(ctx context.Context) ([]leave.TemplateResponse, error) {
	templates, err := s.leaveRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave templates: %w", err)
	}

	responses := make([]leave.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		responses = append(responses, mapLeaveTemplateToResponse(t))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateLeaveTemplate(ctx context.Context, req leave.UpdateTemplateRequest) (leave.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.TemplateResponse{}, err
	}

	updated, err := s.leaveRepo.Update(ctx, leave.Template{ID: req.ID, Name: req.Name})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.TemplateResponse{}, leave.ErrTemplateNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.TemplateResponse{}, leave.ErrTemplateNameExists
		}
		return leave.TemplateResponse{}, fmt.Errorf("failed to update leave template: %w", err)
	}
	return mapLeaveTemplateToResponse(updated), nil
}

func (s *masterServiceImpl) DeleteLeaveTemplate(ctx context.Context, id string) error {
	if err := s.leaveRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrTemplateNotFound
		}
		return fmt.Errorf("failed to delete leave template: %w", err)
	}
	return nil
}

func mapLeaveTemplateToResponse(t leave.Template) leave.TemplateResponse {
	return leave.TemplateResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

// ==================== HOLIDAY OPERATIONS ====================

func (s *masterServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Date: date,
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.HolidayResponse{}, holiday.ErrHolidayExists
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return mapHolidayToResponse(created), nil
}

func (s *masterServiceImpl) ListHolidays(ctx context.Context, req holiday.ListHolidayRequest) ([]holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, err := dateutil.ParseDate(req.Start)
	if err != nil {
		return nil, err
	}
	end, err := dateutil.ParseDate(req.End)
	if err != nil {
		return nil, err
	}

	holidays, err := s.holidayRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapHolidayToResponse(h))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateHoliday(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	updated, err := s.holidayRepo.Update(ctx, holiday.Holiday{
		ID:   req.ID,
		Date: date,
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.HolidayResponse{}, holiday.ErrHolidayNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.HolidayResponse{}, holiday.ErrHolidayExists
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to update holiday: %w", err)
	}
	return mapHolidayToResponse(updated), nil
}

func (s *masterServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

func mapHolidayToResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:   h.ID,
		Date: dateutil.Datestamp(h.Date),
		Name: h.Name,
		Type: h.Type,
	}
}
