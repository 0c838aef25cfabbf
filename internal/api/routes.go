package api

import (
	"github.com/gin-gonic/gin"

	"github.com/JustJay7/jagriti-case-api/internal/cases"
	"github.com/JustJay7/jagriti-case-api/internal/directory"
	"github.com/JustJay7/jagriti-case-api/pkg/logger"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, service *cases.Service, resolver *directory.Resolver, logger *logger.Logger) {
	RegisterValidations()

	h := NewHandlers(service, resolver, logger)

	router.GET("/", h.Root)
	router.GET("/health", h.HealthCheck)

	// Directory endpoints
	router.GET("/states", h.GetStates)
	router.GET("/commissions/:state_id", h.GetDistrictCommissions)

	// Case search endpoints
	caseRoutes := router.Group("/cases")
	{
		caseRoutes.GET("/health", h.CasesHealth)
		caseRoutes.POST("/by-case-number", h.SearchCases(cases.SearchByCaseNumber))
		caseRoutes.POST("/by-complainant", h.SearchCases(cases.SearchByComplainant))
		caseRoutes.POST("/by-respondent", h.SearchCases(cases.SearchByRespondent))
		caseRoutes.POST("/by-complainant-advocate", h.SearchCases(cases.SearchByComplainantAdvocate))
		caseRoutes.POST("/by-respondent-advocate", h.SearchCases(cases.SearchByRespondentAdvocate))
		caseRoutes.POST("/by-industry-type", h.SearchCases(cases.SearchByIndustryType))
		caseRoutes.POST("/by-judge", h.SearchCases(cases.SearchByJudge))
	}
}
