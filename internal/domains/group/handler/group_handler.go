package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog-backend/internal/domains/group/service"
	"microblog-backend/internal/shared/response"
)

type GroupHandler struct {
	groupService service.ServiceInterface
}

func NewGroupHandler(groupService service.ServiceInterface) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// List handles GET /groups/
func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.groupService.ListGroups(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list groups")
		return
	}

	response.Success(c, http.StatusOK, groups)
}
