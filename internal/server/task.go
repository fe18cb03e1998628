package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	taskdomain "github.com/rentora/rentora/internal/task/domain"
)

func (s *Server) ListPendingTasks(c *gin.Context) {
	if s.taskSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	ownerID, err := ownerIDFromRequest(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var filter taskdomain.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.taskSvc.ListPending(c.Request.Context(), ownerID, filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
