package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tenantdomain "github.com/rentora/rentora/internal/tenant/domain"
	"github.com/rentora/rentora/pkg/db/pagination"
)

type createTenantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (s *Server) CreateTenant(c *gin.Context) {
	if s.tenantSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	ownerID, err := ownerIDFromRequest(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req createTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	tenant, err := s.tenantSvc.Create(c.Request.Context(), tenantdomain.CreateTenantRequest{
		OwnerID: ownerID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

func (s *Server) ListTenants(c *gin.Context) {
	if s.tenantSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	ownerID, err := ownerIDFromRequest(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var page pagination.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.tenantSvc.List(c.Request.Context(), tenantdomain.ListTenantsRequest{
		OwnerID:    ownerID,
		Pagination: page,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
