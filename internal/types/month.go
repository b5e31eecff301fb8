// Package types implements special types for the pocketledger backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month in a specific year. It is the granularity
// at which envelope funding is tracked.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, t.Location()))
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
// The month is rendered as a "YYYY-MM" string.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month is expected as a "YYYY-MM" string.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// Scan reads the value from the database.
func (m *Month) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*m = MonthOf(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "date"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Year() == time.Time(n).Year() && time.Time(m).Month() == time.Time(n).Month()
}

// Sub returns the number of whole calendar months from n to m.
// The result is negative when m is before n.
func (m Month) Sub(n Month) int {
	mt, nt := time.Time(m), time.Time(n)
	return (mt.Year()-nt.Year())*12 + int(mt.Month()) - int(nt.Month())
}
