package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	tariffdomain "github.com/rentora/rentora/internal/tariff/domain"
)

type computeUtilityBillRequest struct {
	UnitID      string `json:"unit_id"`
	UtilityType string `json:"utility_type"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (s *Server) ComputeUtilityBill(c *gin.Context) {
	if s.tariffSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	ownerID, err := ownerIDFromRequest(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req computeUtilityBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	unitID, err := snowflake.ParseString(strings.TrimSpace(req.UnitID))
	if err != nil || unitID == 0 {
		AbortWithError(c, newValidationError("unit_id", "invalid_unit_id", "invalid unit id"))
		return
	}

	periodStart, err := parseBillingTime(req.PeriodStart)
	if err != nil {
		AbortWithError(c, newValidationError("period_start", "invalid_time", "invalid period start"))
		return
	}
	periodEnd, err := parseBillingTime(req.PeriodEnd)
	if err != nil {
		AbortWithError(c, newValidationError("period_end", "invalid_time", "invalid period end"))
		return
	}

	bill, err := s.tariffSvc.ComputeUtilityBill(c.Request.Context(), tariffdomain.ComputeBillRequest{
		OwnerID:     ownerID,
		UnitID:      unitID,
		UtilityType: strings.ToLower(strings.TrimSpace(req.UtilityType)),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, bill)
}

func parseBillingTime(value string) (time.Time, error) {
	t, err := parseOptionalTime(value)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, &apiError{Status: http.StatusBadRequest, Code: "required", Message: "time is required"}
	}
	return *t, nil
}
