package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeDutyService struct {
	duty.DutyService
	view duty.CalendarViewResponse
	err  error
}

func (f *fakeDutyService) GetCalendarView(ctx context.Context, scheduleID string) (duty.CalendarViewResponse, error) {
	return f.view, f.err
}

func sampleView() duty.CalendarViewResponse {
	remarks := "relief duty"
	return duty.CalendarViewResponse{
		Schedule: duty.ScheduleResponse{
			ID:          "sched-1",
			Department:  "Nursing Ward A",
			PeriodStart: "2025-06-01",
			PeriodEnd:   "2025-06-30",
			Status:      "approved",
		},
		Days: []duty.DayView{
			{
				Day: duty.CalendarDay{Datestamp: "2025-06-01", IsWeekend: true, MarkRed: true},
				Groups: []duty.DayGroup{
					{
						Label:    "Day Shift",
						Category: duty.CategoryDuty,
						Members: []duty.GroupMember{
							{
								EmployeeID:  "emp-1",
								DisplayName: "Alba, M.",
								Remarks:     &remarks,
								ResolvedDisplay: duty.ResolvedDisplay{
									Label:         "Day Shift",
									TimeRangeText: "8:00 AM-5:00 PM",
									Category:      duty.CategoryDuty,
								},
							},
						},
					},
				},
			},
			{
				Day: duty.CalendarDay{Datestamp: "2025-06-02"},
			},
		},
		Weekly: duty.WeeklySummary{
			Weeks: []duty.WeekBlock{
				{
					Days: []*duty.CalendarDay{
						{Datestamp: "2025-06-01"}, {Datestamp: "2025-06-02"}, nil, nil, nil, nil, nil,
					},
					Rows: []duty.WeekRow{
						{
							EmployeeID:  "emp-1",
							DisplayName: "Alba, M.",
							Cells: []duty.HourCell{
								{Text: "8", Hours: 8, Numeric: true},
								{Text: "off"},
								{}, {}, {}, {}, {},
							},
							TotalHours: 8,
							TotalText:  "8 h",
						},
					},
				},
			},
		},
		Monthly: duty.MonthlySummary{
			Rows: []duty.MonthlyRow{
				{EmployeeID: "emp-1", DisplayName: "Alba, M.", TotalHours: 160, TotalText: "160 h"},
			},
		},
	}
}

func TestExportScheduleProducesWorkbook(t *testing.T) {
	svc := NewExportService(&fakeDutyService{view: sampleView()})

	buf, filename, err := svc.ExportSchedule(context.Background(), "sched-1")
	require.NoError(t, err)
	assert.Equal(t, "duty-schedule_nursing-ward-a_2025-06-01.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, sheetCalendar)
	assert.Contains(t, sheets, sheetWeekly)
	assert.Contains(t, sheets, sheetMonthly)
	assert.NotContains(t, sheets, "Sheet1")

	title, err := f.GetCellValue(sheetCalendar, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Nursing Ward A Duty Schedule (2025-06-01 to 2025-06-30)", title)

	member, err := f.GetCellValue(sheetCalendar, "C3")
	require.NoError(t, err)
	assert.Equal(t, "Alba, M.", member)

	detail, err := f.GetCellValue(sheetCalendar, "D3")
	require.NoError(t, err)
	assert.Equal(t, "8:00 AM-5:00 PM / relief duty", detail)

	total, err := f.GetCellValue(sheetMonthly, "C2")
	require.NoError(t, err)
	assert.Equal(t, "160 h", total)
}

func TestExportSchedulePropagatesServiceError(t *testing.T) {
	svc := NewExportService(&fakeDutyService{err: duty.ErrScheduleNotFound})

	_, _, err := svc.ExportSchedule(context.Background(), "missing")
	assert.ErrorIs(t, err, duty.ErrScheduleNotFound)
}
