package adjustment

type AdjustmentResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Category   string `json:"category"`
	TypeCode   string `json:"type_code"`
	TypeName   string `json:"type_name"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`

	TargetPeriodID *string `json:"target_period_id,omitempty"`
	RecurringStart *string `json:"recurring_start,omitempty"`
	RecurringEnd   *string `json:"recurring_end,omitempty"`
	Interval       string  `json:"interval,omitempty"`

	TotalAmount      *string `json:"total_amount,omitempty"`
	TotalApplied     *string `json:"total_applied,omitempty"`
	RemainingBalance *string `json:"remaining_balance,omitempty"`
}
