package util

import (
	"strings"
	"time"
)

// LocalDateTime is a wall-clock timestamp in the studio's timezone. It accepts
// both the bare local layout and RFC3339 strings written by older app versions.
type LocalDateTime struct {
	time.Time
}

const layout = "2006-01-02T15:04:05"

var saoPauloLocation *time.Location

func init() {
	var err error
	saoPauloLocation, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		saoPauloLocation = time.FixedZone("BRT", -3*60*60)
	}
}

func Location() *time.Location {
	return saoPauloLocation
}

func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t.In(saoPauloLocation)}
}

func ToTimePtr(ldt *LocalDateTime) *time.Time {
	if ldt == nil {
		return nil
	}
	t := ldt.Time
	return &t
}

func (ldt *LocalDateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(layout, s, saoPauloLocation)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
		t = t.In(saoPauloLocation)
	}
	ldt.Time = t
	return nil
}

func (ldt LocalDateTime) MarshalJSON() ([]byte, error) {
	if ldt.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ldt.In(saoPauloLocation).Format(layout) + `"`), nil
}

func (ldt LocalDateTime) Equal(other LocalDateTime) bool {
	return ldt.Time.Equal(other.Time)
}

// AddMonth advances by one calendar month with Go's AddDate normalization
// (Jan 31 rolls into early March), matching the behavior users already rely on.
func (ldt LocalDateTime) AddMonth() LocalDateTime {
	return LocalDateTime{Time: ldt.Time.AddDate(0, 1, 0)}
}

// StartOfDay truncates to midnight in the studio timezone.
func StartOfDay(t time.Time) time.Time {
	t = t.In(saoPauloLocation)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, saoPauloLocation)
}
