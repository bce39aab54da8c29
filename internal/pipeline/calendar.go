package pipeline

import (
	"time"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/dataset"
)

// DefaultEpoch is the calendar date that day offset 1 maps to.
var DefaultEpoch = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateFromDay converts a 1-based day offset to a calendar date.
// Day 1 is the epoch itself. Pure calendar arithmetic in UTC, no
// timezone handling.
func DateFromDay(epoch time.Time, day int) time.Time {
	return epoch.AddDate(0, 0, day-1)
}

// weekdayNumber returns the day of week counting Monday as 0 through
// Sunday as 6.
func weekdayNumber(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// quarterOf returns the calendar quarter, 1 through 4.
func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// CampaignWindow is a campaign description with its day-offset window
// normalized to calendar dates.
type CampaignWindow struct {
	Campaign    int64     `json:"CAMPAIGN"`
	Description string    `json:"DESCRIPTION"`
	StartDay    int       `json:"START_DAY"`
	EndDay      int       `json:"END_DAY"`
	StartDate   time.Time `json:"START_DATE"`
	EndDate     time.Time `json:"END_DATE"`
}

// CampaignWindows normalizes every campaign description, preserving
// source order.
func CampaignWindows(descs []dataset.CampaignDesc, epoch time.Time) []CampaignWindow {
	out := make([]CampaignWindow, len(descs))
	for i, d := range descs {
		out[i] = CampaignWindow{
			Campaign:    d.Campaign,
			Description: d.Description,
			StartDay:    d.StartDay,
			EndDay:      d.EndDay,
			StartDate:   DateFromDay(epoch, d.StartDay),
			EndDate:     DateFromDay(epoch, d.EndDay),
		}
	}
	return out
}
