package contribution

import (
	"time"

	"github.com/shopspring/decimal"
)

type SchemeCode string

const (
	SchemeSSS        SchemeCode = "sss"
	SchemePhilHealth SchemeCode = "philhealth"
	SchemePagIbig    SchemeCode = "pagibig"
)

// Share is a scheme's monthly employee/employer split for one salary bracket.
type Share struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
	TableID  string
}

// TaxDue is the progressive withholding result for one taxable income.
type TaxDue struct {
	Amount  decimal.Decimal
	TableID string
}

// ContributionTable is a regulatory bracket table in effect from a date.
// The bracket data itself is externally supplied; this service only walks it.
type ContributionTable struct {
	ID            string
	Scheme        SchemeCode
	EffectiveFrom time.Time
	Brackets      []Bracket
}

// Bracket matches a monthly salary range. A share is the fixed amount plus
// the rate applied to the salary, so fixed-amount tables (SSS style) set
// rates to zero and percentage tables (PhilHealth/Pag-IBIG style) set
// amounts to zero.
type Bracket struct {
	SalaryFrom     decimal.Decimal
	SalaryTo       *decimal.Decimal // nil = open-ended top bracket
	EmployeeAmount decimal.Decimal
	EmployerAmount decimal.Decimal
	EmployeeRate   decimal.Decimal
	EmployerRate   decimal.Decimal
}

// TaxSchedule is a progressive withholding table in effect from a date.
type TaxSchedule struct {
	ID            string
	EffectiveFrom time.Time
	Brackets      []TaxBracket
}

// TaxBracket: due = BaseTax + (income - IncomeFrom) * Rate for the bracket
// containing the income.
type TaxBracket struct {
	IncomeFrom decimal.Decimal
	IncomeTo   *decimal.Decimal // nil = open-ended top bracket
	BaseTax    decimal.Decimal
	Rate       decimal.Decimal
}
