package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID             string
	CompanyID      string
	EmployeeCode   string
	FullName       string
	WorkLocationID *string
	HireDate       time.Time
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	Compensation *CompensationProfile
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type PayType string

const (
	PayTypeMonthly     PayType = "monthly"
	PayTypeSemiMonthly PayType = "semi_monthly"
	PayTypeWeekly      PayType = "weekly"
	PayTypeDaily       PayType = "daily"
)

// CompensationProfile is the employee's pay configuration. It is read as an
// immutable snapshot for the duration of a payroll computation run.
type CompensationProfile struct {
	ID            string
	EmployeeID    string
	BasicPay      decimal.Decimal
	PayType       PayType
	Currency      string
	EffectiveDate time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
