package duty

import "errors"

var (
	// Calendar Errors
	ErrInvalidDate = errors.New("invalid date, use YYYY-MM-DD")

	// Schedule Errors
	ErrScheduleNotFound       = errors.New("duty schedule not found")
	ErrSchedulePeriodExists   = errors.New("a duty schedule already exists for this department and period")
	ErrScheduleFinalized      = errors.New("duty schedule is approved and can no longer be modified")
	ErrScheduleNotForApproval = errors.New("duty schedule is not awaiting approval")

	// Approval Errors
	ErrInvalidDecision = errors.New("decision must be 'approved' or 'rejected'")

	// Entry Errors
	ErrEntryNotFound      = errors.New("duty schedule entry not found")
	ErrEntryOutsidePeriod = errors.New("entry date falls outside the schedule period")

	// Request Data Errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
