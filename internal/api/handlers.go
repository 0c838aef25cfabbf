package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JustJay7/jagriti-case-api/internal/cases"
	"github.com/JustJay7/jagriti-case-api/internal/directory"
	"github.com/JustJay7/jagriti-case-api/pkg/logger"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	service  *cases.Service
	resolver *directory.Resolver
	logger   *logger.Logger
}

// NewHandlers creates a new handlers instance
func NewHandlers(service *cases.Service, resolver *directory.Resolver, logger *logger.Logger) *Handlers {
	return &Handlers{
		service:  service,
		resolver: resolver,
		logger:   logger,
	}
}

// Root returns the API info banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "Welcome to Jagriti Consumer Court API",
		"version":     "1.0.0",
		"description": "API to search District Consumer Court cases from the Jagriti portal",
	})
}

// HealthCheck returns the service health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "jagriti-api",
		"time":    time.Now().Unix(),
	})
}

// CasesHealth returns the health status of the case search endpoints
func (h *Handlers) CasesHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"module": "case-search",
		"endpoints": []string{
			"/cases/by-case-number",
			"/cases/by-complainant",
			"/cases/by-respondent",
			"/cases/by-complainant-advocate",
			"/cases/by-respondent-advocate",
			"/cases/by-industry-type",
			"/cases/by-judge",
		},
	})
}

// SearchCases builds a handler for one search type. All seven endpoints
// share the same request contract and pipeline.
func (h *Handlers) SearchCases(searchType cases.SearchType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CaseSearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request: " + err.Error()})
			return
		}

		result, err := h.service.Search(c.Request.Context(), cases.SearchRequest{
			State:       req.State,
			Commission:  req.Commission,
			SearchValue: req.SearchValue,
			FromDate:    req.FromDate,
			ToDate:      req.ToDate,
		}, searchType)
		if err != nil {
			h.respondSearchError(c, searchType, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// respondSearchError maps pipeline failures onto HTTP outcomes: resolution
// misses are 404, everything else is a 500 with the classified message
func (h *Handlers) respondSearchError(c *gin.Context, searchType cases.SearchType, err error) {
	var notFound *directory.NotFoundError
	if errors.As(err, &notFound) {
		h.logger.Warn("Search target not found", "search_type", searchType.String(), "error", err)
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})
		return
	}

	h.logger.Error("Case search failed", "search_type", searchType.String(), "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
}

// GetStates lists active, non-circuit-bench states sorted by name
func (h *Handlers) GetStates(c *gin.Context) {
	entries, err := h.resolver.States(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to fetch states", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch states from external API"})
		return
	}

	states := make([]StateCommission, 0, len(entries))
	for _, e := range entries {
		states = append(states, StateCommission{
			CommissionID:   e.CommissionID,
			Name:           e.CommissionNameEn,
			Active:         e.ActiveStatus,
			IsCircuitBench: e.CircuitAdditionBenchFlag,
		})
	}

	c.JSON(http.StatusOK, StatesResponse{
		States:     states,
		TotalCount: len(states),
	})
}

// GetDistrictCommissions lists a state's active district commissions sorted
// by name, paired with the resolved state name
func (h *Handlers) GetDistrictCommissions(c *gin.Context) {
	stateID, err := strconv.Atoi(c.Param("state_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid state commission ID"})
		return
	}

	ctx := c.Request.Context()

	stateName, err := h.resolver.StateNameByID(ctx, stateID)
	if err != nil {
		var notFound *directory.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "State with commission ID " + strconv.Itoa(stateID) + " not found"})
			return
		}
		h.logger.Error("Failed to verify state", "state_id", stateID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch district commissions from external API"})
		return
	}

	entries, err := h.resolver.Districts(ctx, stateID)
	if err != nil {
		h.logger.Error("Failed to fetch district commissions", "state_id", stateID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Failed to fetch district commissions from external API"})
		return
	}

	commissions := make([]DistrictCommission, 0, len(entries))
	for _, e := range entries {
		commissions = append(commissions, DistrictCommission{
			CommissionID: e.CommissionID,
			Name:         e.CommissionNameEn,
			Active:       e.ActiveStatus,
		})
	}

	c.JSON(http.StatusOK, DistrictCommissionsResponse{
		Commissions: commissions,
		StateID:     stateID,
		StateName:   stateName,
		TotalCount:  len(commissions),
	})
}
