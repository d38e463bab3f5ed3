package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillx/skillx-api/internal/core/ports"
)

type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type overviewResponse struct {
	Users    int64 `json:"users"`
	Sessions int64 `json:"sessions"`
	Messages int64 `json:"messages"`
}

// Overview returns platform-wide counts. Admin role required.
//
// @Summary      Admin overview counts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  overviewResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/overview [get]
func (h *AdminHandler) Overview(c echo.Context) error {
	counts, err := h.adminService.Overview(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, overviewResponse{
		Users:    counts.Users,
		Sessions: counts.Sessions,
		Messages: counts.Messages,
	})
}
