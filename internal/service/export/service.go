package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/xuri/excelize/v2"
)

const (
	sheetCalendar = "Calendar"
	sheetWeekly   = "Weekly Hours"
	sheetMonthly  = "Monthly Hours"
)

type exportServiceImpl struct {
	dutyService duty.DutyService
}

func NewExportService(dutyService duty.DutyService) duty.ExportService {
	return &exportServiceImpl{dutyService: dutyService}
}

// ExportSchedule implements duty.ExportService.
func (s *exportServiceImpl) ExportSchedule(ctx context.Context, scheduleID string) (*bytes.Buffer, string, error) {
	view, err := s.dutyService.GetCalendarView(ctx, scheduleID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeCalendarSheet(f, view); err != nil {
		return nil, "", fmt.Errorf("failed to render calendar sheet: %w", err)
	}
	if err := writeWeeklySheet(f, view); err != nil {
		return nil, "", fmt.Errorf("failed to render weekly sheet: %w", err)
	}
	if err := writeMonthlySheet(f, view); err != nil {
		return nil, "", fmt.Errorf("failed to render monthly sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	idx, err := f.GetSheetIndex(sheetCalendar)
	if err == nil {
		f.SetActiveSheet(idx)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("duty-schedule_%s_%s.xlsx",
		sanitizeFilePart(view.Schedule.Department), view.Schedule.PeriodStart)
	return buf, filename, nil
}

// writeCalendarSheet lays the month out one date per row: the day
// column, then one row per group member with label and time range.
func writeCalendarSheet(f *excelize.File, view duty.CalendarViewResponse) error {
	if _, err := f.NewSheet(sheetCalendar); err != nil {
		return err
	}

	f.SetColWidth(sheetCalendar, "A", "A", 14)
	f.SetColWidth(sheetCalendar, "B", "B", 24)
	f.SetColWidth(sheetCalendar, "C", "C", 28)
	f.SetColWidth(sheetCalendar, "D", "D", 24)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	redDayStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#C00000"},
	})
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s Duty Schedule (%s to %s)",
		view.Schedule.Department, view.Schedule.PeriodStart, view.Schedule.PeriodEnd)
	f.SetCellValue(sheetCalendar, "A1", title)
	f.MergeCell(sheetCalendar, "A1", "D1")
	f.SetCellStyle(sheetCalendar, "A1", "D1", headerStyle)

	row := 2
	f.SetCellValue(sheetCalendar, cell("A", row), "Date")
	f.SetCellValue(sheetCalendar, cell("B", row), "Assignment")
	f.SetCellValue(sheetCalendar, cell("C", row), "Employee")
	f.SetCellValue(sheetCalendar, cell("D", row), "Time / Remarks")
	f.SetCellStyle(sheetCalendar, cell("A", row), cell("D", row), headerStyle)

	row = 3
	for _, day := range view.Days {
		dayStart := row
		dayText := day.Day.Datestamp
		if day.Day.HolidayLabel != "" {
			dayText += "\n" + day.Day.HolidayLabel
		}
		f.SetCellValue(sheetCalendar, cell("A", row), dayText)
		if day.Day.MarkRed {
			f.SetCellStyle(sheetCalendar, cell("A", row), cell("A", row), redDayStyle)
		}

		if len(day.Groups) == 0 {
			row++
			continue
		}

		for _, group := range day.Groups {
			for _, member := range group.Members {
				f.SetCellValue(sheetCalendar, cell("B", row), group.Label)
				f.SetCellValue(sheetCalendar, cell("C", row), member.DisplayName)
				f.SetCellValue(sheetCalendar, cell("D", row), memberDetailText(member))
				row++
			}
		}
		if row-1 > dayStart {
			f.MergeCell(sheetCalendar, cell("A", dayStart), cell("A", row-1))
		}
	}
	return nil
}

func memberDetailText(member duty.GroupMember) string {
	parts := []string{}
	if member.TimeRangeText != "" {
		parts = append(parts, member.TimeRangeText)
	}
	if member.Category == duty.CategoryLeave && member.LeaveAbbrev != "" {
		parts = append(parts, member.LeaveAbbrev)
	}
	if member.Remarks != nil && *member.Remarks != "" {
		parts = append(parts, *member.Remarks)
	}
	return strings.Join(parts, " / ")
}

// writeWeeklySheet renders one block per 7-day band: day headers across,
// one row per employee, hour cells matching the on-screen summary.
func writeWeeklySheet(f *excelize.File, view duty.CalendarViewResponse) error {
	if _, err := f.NewSheet(sheetWeekly); err != nil {
		return err
	}

	f.SetColWidth(sheetWeekly, "A", "A", 26)
	f.SetColWidth(sheetWeekly, "B", "I", 12)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	row := 1
	for weekIdx, week := range view.Weekly.Weeks {
		f.SetCellValue(sheetWeekly, cell("A", row), fmt.Sprintf("Week %d", weekIdx+1))
		f.SetCellStyle(sheetWeekly, cell("A", row), cell("A", row), headerStyle)
		for i, day := range week.Days {
			col := colName(2 + i)
			if day != nil {
				f.SetCellValue(sheetWeekly, cell(col, row), day.Datestamp)
			}
			f.SetCellStyle(sheetWeekly, cell(col, row), cell(col, row), headerStyle)
		}
		totalCol := colName(2 + len(week.Days))
		f.SetCellValue(sheetWeekly, cell(totalCol, row), "Total")
		f.SetCellStyle(sheetWeekly, cell(totalCol, row), cell(totalCol, row), headerStyle)
		row++

		for _, employeeRow := range week.Rows {
			f.SetCellValue(sheetWeekly, cell("A", row), employeeRow.DisplayName)
			for i, hourCell := range employeeRow.Cells {
				col := colName(2 + i)
				if hourCell.Numeric {
					f.SetCellValue(sheetWeekly, cell(col, row), hourCell.Hours)
				} else if hourCell.Text != "" {
					f.SetCellValue(sheetWeekly, cell(col, row), hourCell.Text)
				}
			}
			f.SetCellValue(sheetWeekly, cell(totalCol, row), employeeRow.TotalText)
			row++
		}
		row++
	}
	return nil
}

func writeMonthlySheet(f *excelize.File, view duty.CalendarViewResponse) error {
	if _, err := f.NewSheet(sheetMonthly); err != nil {
		return err
	}

	f.SetColWidth(sheetMonthly, "A", "A", 26)
	f.SetColWidth(sheetMonthly, "B", "C", 16)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	f.SetCellValue(sheetMonthly, "A1", "Employee")
	f.SetCellValue(sheetMonthly, "B1", "Total Hours")
	f.SetCellValue(sheetMonthly, "C1", "Formatted")
	f.SetCellStyle(sheetMonthly, "A1", "C1", headerStyle)

	row := 2
	for _, monthlyRow := range view.Monthly.Rows {
		f.SetCellValue(sheetMonthly, cell("A", row), monthlyRow.DisplayName)
		f.SetCellValue(sheetMonthly, cell("B", row), monthlyRow.TotalHours)
		f.SetCellValue(sheetMonthly, cell("C", row), monthlyRow.TotalText)
		row++
	}
	return nil
}

func sanitizeFilePart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	return s
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
