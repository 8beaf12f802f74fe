package loan

type LoanResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	Name             string `json:"name"`
	TotalAmount      string `json:"total_amount"`
	TermMonths       int    `json:"term_months"`
	MonthlyDeduction string `json:"monthly_deduction"`
	TotalPaid        string `json:"total_paid"`
	RemainingBalance string `json:"remaining_balance"`
	StartDate        string `json:"start_date"`
	Status           string `json:"status"`
}
