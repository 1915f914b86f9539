package date

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// daysPerYear is the ACT/365 day count convention used for all year fractions.
const daysPerYear = 365.0

// Date represents a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, d int) Date {
	t := Date{year, month, d}
	t.y, t.m, t.d = t.time().Date()
	return t
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// YearsTo returns the year fraction from d to x using the ACT/365 convention.
// It is negative when x is before d.
func (d Date) YearsTo(x Date) float64 {
	return x.time().Sub(d.time()).Hours() / (24 * daysPerYear)
}

// String formats the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// A Tenor is a calendar offset from an anchor date, like "30d", "6m" or "2y",
// or a plain decimal count of years like "1.5".
type Tenor struct {
	n     int
	unit  byte    // 'd', 'w', 'm' or 'y'; 0 for fractional years
	years float64 // set when unit is 0
}

// Years returns a tenor of a fractional number of years.
func Years(years float64) Tenor { return Tenor{years: years} }

// ParseTenor parses a tenor string. Accepted forms are an integer followed by
// a unit ("7d", "2w", "6m", "10y", case-insensitive), or a plain decimal
// number interpreted as a count of years ("1", "0.5", "1.5").
func ParseTenor(str string) (Tenor, error) {
	if str == "" {
		return Tenor{}, fmt.Errorf("empty tenor")
	}
	if years, err := strconv.ParseFloat(str, 64); err == nil {
		return Tenor{years: years}, nil
	}
	unit := str[len(str)-1]
	switch unit {
	case 'D', 'W', 'M', 'Y':
		unit += 'a' - 'A'
		fallthrough
	case 'd', 'w', 'm', 'y':
		n, err := strconv.Atoi(str[:len(str)-1])
		if err != nil {
			return Tenor{}, fmt.Errorf("invalid tenor %q: %w", str, err)
		}
		return Tenor{n: n, unit: unit}, nil
	default:
		return Tenor{}, fmt.Errorf("invalid tenor %q: unknown unit %q", str, string(unit))
	}
}

// From returns the date obtained by adding the tenor to the anchor date.
// Fractional years are converted to days using the ACT/365 convention.
func (t Tenor) From(d Date) Date {
	switch t.unit {
	case 'd':
		return d.Add(t.n)
	case 'w':
		return d.Add(7 * t.n)
	case 'm':
		return New(d.y, d.m+time.Month(t.n), d.d)
	case 'y':
		return New(d.y+t.n, d.m, d.d)
	default:
		return d.Add(int(t.years*daysPerYear + 0.5))
	}
}

// String formats the tenor in its parseable form.
func (t Tenor) String() string {
	if t.unit == 0 {
		return strconv.FormatFloat(t.years, 'g', -1, 64)
	}
	return fmt.Sprintf("%d%s", t.n, string(t.unit))
}
