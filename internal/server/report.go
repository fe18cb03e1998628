package server

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	reportdomain "github.com/rentora/rentora/internal/report/domain"
)

func (s *Server) GetReportOverview(c *gin.Context) {
	if s.financeSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	ownerID, err := ownerIDFromRequest(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filter, err := parseReportFilter(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.financeSvc.Overview(c.Request.Context(), ownerID, filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		writeCSV(c, "overview.csv", resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetReportDistribution(c *gin.Context) {
	if s.distributionSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	ownerID, err := ownerIDFromRequest(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filter, err := parseReportFilter(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.distributionSvc.Distribution(c.Request.Context(), ownerID, filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		writeCSV(c, "distribution.csv", resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ownerIDFromRequest resolves the acting owner from the X-Owner-Id header,
// falling back to the owner_id query parameter.
func ownerIDFromRequest(c *gin.Context) (snowflake.ID, error) {
	raw := strings.TrimSpace(c.GetHeader("X-Owner-Id"))
	if raw == "" {
		raw = strings.TrimSpace(c.Query("owner_id"))
	}
	if raw == "" {
		return 0, newValidationError("owner_id", "required", "owner id is required")
	}
	id, err := snowflake.ParseString(raw)
	if err != nil || id == 0 {
		return 0, newValidationError("owner_id", "invalid_owner_id", "invalid owner id")
	}
	return id, nil
}

func parseReportFilter(c *gin.Context) (reportdomain.Filter, error) {
	start, err := parseOptionalTime(c.Query("start"))
	if err != nil {
		return reportdomain.Filter{}, newValidationError("start", "invalid_time", "invalid start time")
	}
	end, err := parseOptionalTime(c.Query("end"))
	if err != nil {
		return reportdomain.Filter{}, newValidationError("end", "invalid_time", "invalid end time")
	}
	fallback, err := parseOptionalBool(c.Query("fallback"))
	if err != nil {
		return reportdomain.Filter{}, newValidationError("fallback", "invalid_fallback", "invalid fallback flag")
	}

	return reportdomain.Filter{
		Period:       strings.ToLower(strings.TrimSpace(c.Query("period"))),
		StartDate:    start,
		EndDate:      end,
		PropertyType: strings.TrimSpace(c.Query("property_type")),
		Currency:     strings.ToUpper(strings.TrimSpace(c.Query("currency"))),
		Fallback:     fallback,
	}, nil
}

func writeCSV(c *gin.Context, filename string, data interface{}) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	switch v := data.(type) {
	case *reportdomain.OverviewResponse:
		_ = writer.Write([]string{"Bucket", "Income", "Expense", "Profit"})
		for i, label := range v.Chart.Labels {
			_ = writer.Write([]string{
				label,
				fmt.Sprintf("%d", v.Chart.Income[i]),
				fmt.Sprintf("%d", v.Chart.Expense[i]),
				fmt.Sprintf("%d", v.Chart.Profit[i]),
			})
		}
		_ = writer.Write([]string{"Total", fmt.Sprintf("%d", v.TotalRevenueCents), fmt.Sprintf("%d", v.TotalExpenseCents), fmt.Sprintf("%d", v.NetProfitCents)})
	case *reportdomain.DistributionResponse:
		_ = writer.Write([]string{"Property", "Revenue", "Expense", "Profit", "Percentage", "Units"})
		for _, item := range v.Items {
			_ = writer.Write([]string{
				item.Name,
				fmt.Sprintf("%d", item.RevenueCents),
				fmt.Sprintf("%d", item.ExpenseCents),
				fmt.Sprintf("%d", item.ProfitCents),
				fmt.Sprintf("%.1f", item.Percentage),
				fmt.Sprintf("%d", item.UnitCount),
			})
		}
	default:
		// Unknown payloads produce an empty CSV body.
	}
}
