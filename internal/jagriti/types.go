package jagriti

import "encoding/json"

// Jagriti API endpoint paths
const (
	statesPath     = "/services/report/report/getStateCommissionAndCircuitBench"
	districtsPath  = "/services/report/report/getDistrictCommissionByCommissionId"
	caseSearchPath = "/services/case/caseFilingService/v2/getCaseDetailsBySearchType"
)

// envelope is the common response wrapper used by all Jagriti endpoints
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Status  int             `json:"status"`
}

// Commission is one entry of the state or district commission directory.
// The same shape is returned by both directory endpoints.
type Commission struct {
	CommissionID             int    `json:"commissionId"`
	CommissionNameEn         string `json:"commissionNameEn"`
	CircuitAdditionBenchFlag bool   `json:"circuitAdditionBenchStatus"`
	ActiveStatus             bool   `json:"activeStatus"`
}

// CaseSearchPayload is the request body for the case search endpoint.
// Field names, including the upstream "serch" spelling, are the wire contract.
type CaseSearchPayload struct {
	CommissionID    int    `json:"commissionId"`
	DateRequestType int    `json:"dateRequestType"`
	FromDate        string `json:"fromDate"`
	ToDate          string `json:"toDate"`
	JudgeID         string `json:"judgeId"`
	OrderType       int    `json:"orderType"`
	SerchType       int    `json:"serchType"`
	SerchTypeValue  string `json:"serchTypeValue"`
}

// CaseDetail is one raw case record as returned by the search endpoint.
// Optional fields come back as empty strings when upstream has no value.
type CaseDetail struct {
	CaseNumber              string `json:"caseNumber"`
	ComplainantName         string `json:"complainantName"`
	ComplainantAdvocateName string `json:"complainantAdvocateName"`
	RespondentName          string `json:"respondentName"`
	RespondentAdvocateName  string `json:"respondentAdvocateName"`
	CaseFilingDate          string `json:"caseFilingDate"`
	OrderDocumentPath       string `json:"orderDocumentPath"`
	CaseStageName           string `json:"caseStageName"`
}
