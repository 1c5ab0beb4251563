package rules

import (
	"fmt"
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
)

const (
	RuleDue7       = "due.7"
	RuleDue3       = "due.3"
	RuleDueToday   = "due.today"
	RuleDueOverdue = "due.overdue"
)

// DaysUntilCharge returns the number of days from the date of now until
// the next charge on day of the month. The charge day is clamped to the
// length of the month.
//
// If the charge was yesterday, it returns -1.
func DaysUntilCharge(now time.Time, day int) int {
	now = now.In(time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	yesterday := today.AddDate(0, 0, -1)
	if types.MonthOf(yesterday).Day(day).Equal(yesterday) {
		return -1
	}

	month := types.MonthOf(today)
	due := month.Day(day)
	if due.Before(today) {
		due = month.AddDate(0, 1).Day(day)
	}

	return int(due.Sub(today) / (24 * time.Hour))
}

// DueDates reminds of active recurring expenses 7 days and 3 days before
// they are charged, on the day and one day after.
func (e Evaluator) DueDates(s Snapshot) []models.Notification {
	var out []models.Notification

	for _, r := range s.RecurringExpenses {
		if !r.Active {
			continue
		}

		what := fmt.Sprintf("%s (%s)", r.Name, e.amount(r.Amount))

		switch days := DaysUntilCharge(s.Now, r.ChargeDay); days {
		case 7, 3:
			severity, rule := models.SeverityInfo, RuleDue7
			if days == 3 {
				severity, rule = models.SeverityWarning, RuleDue3
			}

			due := s.Now.In(time.UTC).AddDate(0, 0, days)
			out = append(out, draft(rule, severity, fmt.Sprintf("Payment due in %d days", days),
				fmt.Sprintf("%s will be charged on %s", what, due.Format(time.DateOnly)), r.DefaultModel))
		case 0:
			out = append(out, draft(RuleDueToday, models.SeverityWarning, "Payment due today",
				fmt.Sprintf("%s will be charged today", what), r.DefaultModel))
		case -1:
			out = append(out, draft(RuleDueOverdue, models.SeverityError, "Payment overdue",
				fmt.Sprintf("%s was due yesterday", what), r.DefaultModel))
		}
	}

	return out
}
