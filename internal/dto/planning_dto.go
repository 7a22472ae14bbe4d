package dto

type BudgetItemRequest struct {
	Category      string   `json:"category" validate:"required,max=100"`
	Description   string   `json:"description" validate:"required,max=500"`
	EstimatedCost *float64 `json:"estimatedCost" validate:"omitempty,gte=0"`
	ActualCost    *float64 `json:"actualCost" validate:"omitempty,gte=0"`
	IsPaid        bool     `json:"isPaid"`
	Notes         string   `json:"notes"`
}

type UpdateBudgetItemRequest struct {
	Category      *string  `json:"category" validate:"omitempty,min=1,max=100"`
	Description   *string  `json:"description" validate:"omitempty,min=1,max=500"`
	EstimatedCost *float64 `json:"estimatedCost" validate:"omitempty,gte=0"`
	ActualCost    *float64 `json:"actualCost" validate:"omitempty,gte=0"`
	IsPaid        *bool    `json:"isPaid"`
	Notes         *string  `json:"notes"`
}

type BudgetSummary struct {
	TotalBudget    *float64 `json:"totalBudget,omitempty"`
	EstimatedTotal float64  `json:"estimatedTotal"`
	ActualTotal    float64  `json:"actualTotal"`
	PaidTotal      float64  `json:"paidTotal"`
	Remaining      *float64 `json:"remaining,omitempty"`
	ItemCount      int      `json:"itemCount"`
}

type TimelineItemRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	DueDate     *Date  `json:"dueDate"`
	Category    string `json:"category" validate:"max=100"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	IsCompleted bool   `json:"isCompleted"`
}

type UpdateTimelineItemRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description  *string `json:"description"`
	DueDate      *Date   `json:"dueDate"`
	ClearDueDate bool    `json:"clearDueDate"`
	Category     *string `json:"category" validate:"omitempty,max=100"`
	Priority     *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	IsCompleted  *bool   `json:"isCompleted"`
}
