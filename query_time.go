package reql

// Dates and times.  Time values are server-side pseudo-types; the
// commands below construct and take them apart.

// Now returns the time the query was first evaluated at.
//
// Example usage:
//
//	r.Table("users").Insert(r.Map{"name": "John", "subscribed": r.Now()})
func Now() Term {
	return newTerm(TermNow)
}

// Time builds a time from a date, an optional time of day, and a
// timezone offset string, given last.
//
// Example usage:
//
//	r.Time(1986, 11, 3, "Z")
//	r.Time(1986, 11, 3, 12, 30, 15, "Z")
func Time(args ...interface{}) Term {
	return newTerm(TermTime).withLiteralArgs(args...)
}

// EpochTime builds a time from seconds since the UNIX epoch.
func EpochTime(seconds interface{}) Term {
	return newTerm(TermEpochTime).withLiteralArgs(seconds)
}

// ISO8601 parses an ISO 8601 timestamp into a time.
func ISO8601(timestamp interface{}) Term {
	return newTerm(TermISO8601).withLiteralArgs(timestamp)
}

// InTimezone returns the same time with a different timezone.
func (t Term) InTimezone(timezone interface{}) Term {
	return newTerm(TermInTimezone).withLiteralArgs(timezone).withParent(t)
}

// Timezone returns the timezone of a time.
func (t Term) Timezone() Term {
	return newTerm(TermTimezone).withParent(t)
}

// During tests whether a time falls between two other times.
//
// Example usage:
//
//	r.Row.G("posted").During(r.Time(2023, 1, 1, "Z"), r.Now())
func (t Term) During(start, end interface{}, opts ...interface{}) Term {
	cmd := newTerm(TermDuring).withLiteralArgs(start, end)
	for _, o := range opts {
		cmd = cmd.withOptArg(o)
	}
	return cmd.withParent(t)
}

// Date strips the time of day, leaving the day.
func (t Term) Date() Term {
	return newTerm(TermDate).withParent(t)
}

// TimeOfDay returns the seconds elapsed since the start of the day.
func (t Term) TimeOfDay() Term {
	return newTerm(TermTimeOfDay).withParent(t)
}

// Year returns the year of a time.
func (t Term) Year() Term {
	return newTerm(TermYear).withParent(t)
}

// Month returns the month of a time, from 1 to 12.
func (t Term) Month() Term {
	return newTerm(TermMonth).withParent(t)
}

// Day returns the day of the month of a time.
func (t Term) Day() Term {
	return newTerm(TermDay).withParent(t)
}

// DayOfWeek returns the weekday of a time, from 1 (Monday) to 7
// (Sunday); compare against the weekday constants.
func (t Term) DayOfWeek() Term {
	return newTerm(TermDayOfWeek).withParent(t)
}

// DayOfYear returns the day of the year of a time.
func (t Term) DayOfYear() Term {
	return newTerm(TermDayOfYear).withParent(t)
}

// Hours returns the hour of a time.
func (t Term) Hours() Term {
	return newTerm(TermHours).withParent(t)
}

// Minutes returns the minute of a time.
func (t Term) Minutes() Term {
	return newTerm(TermMinutes).withParent(t)
}

// Seconds returns the second of a time, including fractions.
func (t Term) Seconds() Term {
	return newTerm(TermSeconds).withParent(t)
}

// ToEpochTime converts a time to seconds since the UNIX epoch.
func (t Term) ToEpochTime() Term {
	return newTerm(TermToEpochTime).withParent(t)
}

// ToISO8601 formats a time as an ISO 8601 string.
func (t Term) ToISO8601() Term {
	return newTerm(TermToISO8601).withParent(t)
}

// Weekday and month constants, for comparing against DayOfWeek and
// Month.
var (
	Monday    = Term{typ: TermMonday}
	Tuesday   = Term{typ: TermTuesday}
	Wednesday = Term{typ: TermWednesday}
	Thursday  = Term{typ: TermThursday}
	Friday    = Term{typ: TermFriday}
	Saturday  = Term{typ: TermSaturday}
	Sunday    = Term{typ: TermSunday}

	January   = Term{typ: TermJanuary}
	February  = Term{typ: TermFebruary}
	March     = Term{typ: TermMarch}
	April     = Term{typ: TermApril}
	May       = Term{typ: TermMay}
	June      = Term{typ: TermJune}
	July      = Term{typ: TermJuly}
	August    = Term{typ: TermAugust}
	September = Term{typ: TermSeptember}
	October   = Term{typ: TermOctober}
	November  = Term{typ: TermNovember}
	December  = Term{typ: TermDecember}
)
