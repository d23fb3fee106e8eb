package dateutil

import "time"

const DateLayout = "2006-01-02"

// Date returns the UTC calendar date of t formatted as YYYY-MM-DD.
func Date(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// PreviousDate returns the calendar date before the given one. It fails only
// if date is malformed.
func PreviousDate(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}

	return t.AddDate(0, 0, -1).Format(DateLayout), nil
}
