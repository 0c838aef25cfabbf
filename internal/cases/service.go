// Package cases runs consumer-court case searches end to end: name
// resolution, payload construction, upstream search, and result reshaping.
package cases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JustJay7/jagriti-case-api/internal/config"
	"github.com/JustJay7/jagriti-case-api/internal/directory"
	"github.com/JustJay7/jagriti-case-api/internal/jagriti"
	"github.com/JustJay7/jagriti-case-api/pkg/logger"
)

// SearchType selects one of the seven search dimensions. The numeric values
// are the portal's serchType discriminants.
type SearchType int

const (
	SearchByCaseNumber SearchType = iota + 1
	SearchByComplainant
	SearchByRespondent
	SearchByComplainantAdvocate
	SearchByRespondentAdvocate
	SearchByIndustryType
	SearchByJudge
)

func (t SearchType) String() string {
	switch t {
	case SearchByCaseNumber:
		return "case_number"
	case SearchByComplainant:
		return "complainant"
	case SearchByRespondent:
		return "respondent"
	case SearchByComplainantAdvocate:
		return "complainant_advocate"
	case SearchByRespondentAdvocate:
		return "respondent_advocate"
	case SearchByIndustryType:
		return "industry_type"
	case SearchByJudge:
		return "judge"
	default:
		return "unknown"
	}
}

// Fixed payload constants: searches run against the case filing date over
// daily orders only, with no judge filter. Judge-name searches go through
// the generic search value, not the judgeId field.
const (
	dateRequestTypeFilingDate = 1
	orderTypeDailyOrders      = 1
	judgeIDAll                = ""
)

// SearchRequest is one validated search, independent of search type
type SearchRequest struct {
	State       string
	Commission  string
	SearchValue string
	FromDate    string
	ToDate      string
}

// Case is one matched case in the simplified output schema
type Case struct {
	CaseNumber          string  `json:"case_number"`
	CaseStage           string  `json:"case_stage"`
	FilingDate          string  `json:"filing_date"`
	Complainant         string  `json:"complainant"`
	ComplainantAdvocate *string `json:"complainant_advocate"`
	Respondent          string  `json:"respondent"`
	RespondentAdvocate  *string `json:"respondent_advocate"`
	DocumentLink        *string `json:"document_link"`
}

// SearchCriteria echoes the resolved search parameters for traceability
type SearchCriteria struct {
	State                string `json:"state"`
	Commission           string `json:"commission"`
	SearchValue          string `json:"search_value"`
	SearchType           int    `json:"search_type"`
	FromDate             string `json:"from_date"`
	ToDate               string `json:"to_date"`
	StateCommissionID    int    `json:"state_commission_id"`
	DistrictCommissionID int    `json:"district_commission_id"`
}

// SearchResult is the outcome of one search, cases in upstream order
type SearchResult struct {
	Cases          []Case         `json:"cases"`
	TotalCount     int            `json:"total_count"`
	SearchCriteria SearchCriteria `json:"search_criteria"`
}

// Service orchestrates case searches against the Jagriti portal
type Service struct {
	client   *jagriti.Client
	resolver *directory.Resolver
	cfg      *config.Config
	logger   *logger.Logger
}

// NewService creates a case search service
func NewService(client *jagriti.Client, resolver *directory.Resolver, cfg *config.Config, log *logger.Logger) *Service {
	return &Service{
		client:   client,
		resolver: resolver,
		cfg:      cfg,
		logger:   log,
	}
}

// Search executes one search of the given type. Any step failure aborts the
// whole operation; partial results are never returned.
func (s *Service) Search(ctx context.Context, req SearchRequest, searchType SearchType) (*SearchResult, error) {
	req.State = strings.ToUpper(req.State)
	if req.FromDate == "" {
		req.FromDate = s.cfg.DefaultFromDate
	}
	if req.ToDate == "" {
		req.ToDate = s.cfg.DefaultToDate
	}

	stateID, err := s.resolver.ResolveState(ctx, req.State)
	if err != nil {
		return nil, s.classify("failed to resolve state", err)
	}

	districtID, err := s.resolver.ResolveDistrict(ctx, stateID, req.Commission)
	if err != nil {
		return nil, s.classify("failed to resolve commission", err)
	}

	payload := buildPayload(districtID, req, searchType)

	s.logger.Info("Searching cases",
		"search_type", searchType.String(),
		"state", req.State,
		"commission", req.Commission,
		"district_commission_id", districtID,
	)

	details, err := s.client.SearchCases(ctx, payload)
	if err != nil {
		return nil, s.classify("case search failed", err)
	}

	result := &SearchResult{
		Cases:      make([]Case, 0, len(details)),
		TotalCount: len(details),
		SearchCriteria: SearchCriteria{
			State:                req.State,
			Commission:           req.Commission,
			SearchValue:          req.SearchValue,
			SearchType:           int(searchType),
			FromDate:             req.FromDate,
			ToDate:               req.ToDate,
			StateCommissionID:    stateID,
			DistrictCommissionID: districtID,
		},
	}
	for _, d := range details {
		result.Cases = append(result.Cases, s.transformCase(d))
	}

	s.logger.Info("Case search completed",
		"search_type", searchType.String(),
		"total_count", result.TotalCount,
	)
	return result, nil
}

// buildPayload assembles the upstream search request body
func buildPayload(districtCommissionID int, req SearchRequest, searchType SearchType) jagriti.CaseSearchPayload {
	return jagriti.CaseSearchPayload{
		CommissionID:    districtCommissionID,
		DateRequestType: dateRequestTypeFilingDate,
		FromDate:        req.FromDate,
		ToDate:          req.ToDate,
		JudgeID:         judgeIDAll,
		OrderType:       orderTypeDailyOrders,
		SerchType:       int(searchType),
		SerchTypeValue:  req.SearchValue,
	}
}

// transformCase maps a raw upstream record onto the simplified schema.
// Empty upstream values become null; a document link is built only when the
// record carries an order document path.
func (s *Service) transformCase(d jagriti.CaseDetail) Case {
	c := Case{
		CaseNumber:  d.CaseNumber,
		CaseStage:   d.CaseStageName,
		FilingDate:  d.CaseFilingDate,
		Complainant: d.ComplainantName,
		Respondent:  d.RespondentName,
	}
	if d.ComplainantAdvocateName != "" {
		c.ComplainantAdvocate = &d.ComplainantAdvocateName
	}
	if d.RespondentAdvocateName != "" {
		c.RespondentAdvocate = &d.RespondentAdvocateName
	}
	if d.OrderDocumentPath != "" {
		link := s.client.BaseURL() + d.OrderDocumentPath
		c.DocumentLink = &link
	}
	return c
}

// classify keeps taxonomy errors intact and wraps anything else as a
// generic search failure so no raw fault reaches the caller unlabelled.
func (s *Service) classify(msg string, err error) error {
	var notFound *directory.NotFoundError
	var apiErr *jagriti.APIError
	if errors.As(err, &notFound) || errors.As(err, &apiErr) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
