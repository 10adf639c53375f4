package usecase

import (
	"time"

	"cleanmatch/internal/domain/entities"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// scheduleAllows checks a candidate booking against the cleaner's weekly
// schedule. declared is false when the cleaner published no schedule at all,
// in which case the booking is unconstrained. A day missing from a published
// schedule counts as outside the declared hours.
func scheduleAllows(c entities.Cleaner, date, startTime, endTime string) (within bool, declared bool, err error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return false, false, ErrMissingFields
	}
	start, err := time.Parse(timeLayout, startTime)
	if err != nil {
		return false, false, ErrInvalidTimeRange
	}
	end, err := time.Parse(timeLayout, endTime)
	if err != nil {
		return false, false, ErrInvalidTimeRange
	}
	if !start.Before(end) {
		return false, false, ErrInvalidTimeRange
	}

	if len(c.Schedule) == 0 {
		return true, false, nil
	}

	window, ok := c.Schedule[day.Weekday().String()]
	if !ok {
		return false, true, nil
	}
	winStart, err := time.Parse(timeLayout, window.StartTime)
	if err != nil {
		return false, true, nil
	}
	winEnd, err := time.Parse(timeLayout, window.EndTime)
	if err != nil {
		return false, true, nil
	}

	within = !start.Before(winStart) && !end.After(winEnd)
	return within, true, nil
}
