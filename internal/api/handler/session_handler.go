package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skillx/skillx-api/internal/core/ports"
)

type SessionHandler struct {
	sessionService ports.SessionService
}

func NewSessionHandler(sessionService ports.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type bookSessionRequest struct {
	TeacherID   string    `json:"teacher_id"   validate:"required"`
	LearnerID   string    `json:"learner_id"   validate:"required"`
	SkillID     string    `json:"skill_id"     validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

type sessionItemResponse struct {
	ID          string    `json:"id"`
	TeacherID   string    `json:"teacher_id"`
	LearnerID   string    `json:"learner_id"`
	SkillID     string    `json:"skill_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
}

// Book creates a pending session.
//
// @Summary      Book a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookSessionRequest  true  "Session details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/sessions [post]
func (h *SessionHandler) Book(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	var req bookSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.sessionService.Book(c.Request().Context(), ports.BookSessionInput{
		TeacherID:   req.TeacherID,
		LearnerID:   req.LearnerID,
		SkillID:     req.SkillID,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "session created"})
}

// List returns the caller's sessions, most recently scheduled first.
//
// @Summary      List my sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   sessionItemResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/sessions [get]
func (h *SessionHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	sessions, err := h.sessionService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]sessionItemResponse, len(sessions))
	for i, s := range sessions {
		out[i] = sessionItemResponse{
			ID:          s.ID,
			TeacherID:   s.TeacherID,
			LearnerID:   s.LearnerID,
			SkillID:     s.SkillID,
			ScheduledAt: s.ScheduledAt.UTC(),
			Status:      string(s.Status),
		}
	}
	return c.JSON(http.StatusOK, out)
}
