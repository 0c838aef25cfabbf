package api

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// CaseSearchRequest is the body shared by all seven search endpoints
type CaseSearchRequest struct {
	State       string `json:"state" binding:"required"`
	Commission  string `json:"commission" binding:"required"`
	SearchValue string `json:"search_value" binding:"required"`
	FromDate    string `json:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate      string `json:"to_date" binding:"omitempty,datetime=2006-01-02"`
}

// RegisterValidations installs the date-ordering rule on gin's validator
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterStructValidation(caseSearchDateOrder, CaseSearchRequest{})
	}
}

// caseSearchDateOrder rejects to_date earlier than from_date. Equal dates
// are allowed. Format errors are left to the field-level datetime tags.
func caseSearchDateOrder(sl validator.StructLevel) {
	req := sl.Current().Interface().(CaseSearchRequest)
	if req.FromDate == "" || req.ToDate == "" {
		return
	}

	from, err := time.Parse(dateLayout, req.FromDate)
	if err != nil {
		return
	}
	to, err := time.Parse(dateLayout, req.ToDate)
	if err != nil {
		return
	}

	if to.Before(from) {
		sl.ReportError(req.ToDate, "to_date", "ToDate", "gtefield", "from_date")
	}
}

// StateCommission is one state entry in the /states response
type StateCommission struct {
	CommissionID   int    `json:"commission_id"`
	Name           string `json:"name"`
	Active         bool   `json:"active"`
	IsCircuitBench bool   `json:"is_circuit_bench"`
}

// StatesResponse is the /states response body
type StatesResponse struct {
	States     []StateCommission `json:"states"`
	TotalCount int               `json:"total_count"`
}

// DistrictCommission is one district entry in the /commissions response
type DistrictCommission struct {
	CommissionID int    `json:"commission_id"`
	Name         string `json:"name"`
	Active       bool   `json:"active"`
}

// DistrictCommissionsResponse is the /commissions/:state_id response body
type DistrictCommissionsResponse struct {
	Commissions []DistrictCommission `json:"commissions"`
	StateID     int                  `json:"state_id"`
	StateName   string               `json:"state_name"`
	TotalCount  int                  `json:"total_count"`
}

// ErrorResponse is the body returned for all error outcomes
type ErrorResponse struct {
	Detail string `json:"detail"`
}
