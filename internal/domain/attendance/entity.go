package attendance

import (
	"time"
)

type DayStatus string

const (
	DayStatusPresent DayStatus = "present"
	DayStatusAbsent  DayStatus = "absent"
	DayStatusHoliday DayStatus = "holiday"
	DayStatusLeave   DayStatus = "leave"
)

// DayRecord is one employee-day produced by the attendance capture pipeline.
// The payroll engine reads it as a finished aggregate; clock events, proof
// photos and device integration live outside this service.
type DayRecord struct {
	ID                string
	EmployeeID        string
	CompanyID         string
	Date              time.Time
	Status            DayStatus
	WorkMinutes       int
	LateMinutes       int
	UndertimeMinutes  int
	OvertimeMinutes   int
	OvertimeApproved  bool
	OvertimeRequestID *string
	NightDiffMinutes  int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OvertimeRequest caps how many of a day's recorded overtime minutes are
// payable. Unapproved or request-less overtime pays nothing.
type OvertimeRequest struct {
	ID              string
	EmployeeID      string
	Date            time.Time
	ExpectedMinutes int
}

type HolidayType string

const (
	HolidaySpecial HolidayType = "special"
	HolidayRegular HolidayType = "regular"
	HolidayDouble  HolidayType = "double"
)

type Holiday struct {
	ID             string
	CompanyID      string
	Name           string
	Date           time.Time
	Type           HolidayType
	IsNational     bool
	WorkLocationID *string
}
