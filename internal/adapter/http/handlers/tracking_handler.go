package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase"
)

// transparentGIF is a 1x1 transparent GIF.
var transparentGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

// StaffDetector reports whether the request carries a valid staff session.
type StaffDetector func(c *gin.Context) bool

type TrackingHandler struct {
	usecase usecase.ITrackingUseCase
	isStaff StaffDetector
}

// NewTrackingHandler accepts a nil isStaff, in which case every hit counts.
func NewTrackingHandler(uc usecase.ITrackingUseCase, isStaff StaffDetector) *TrackingHandler {
	return &TrackingHandler{usecase: uc, isStaff: isStaff}
}

// Pixel godoc
// @Summary  Tracking pixel
// @Tags     tracking
// @Produce  image/gif
// @Param    type    query string true  "proposal, questionnaire or portal"
// @Param    id      query string true  "Tracked entity id"
// @Param    event   query string false "Event name, defaults to open"
// @Param    section query string false "Portal section"
// @Success  200
// @Router   /pixel [get]
func (h *TrackingHandler) Pixel(c *gin.Context) {
	ev := entities.TrackingEvent{
		Type:      entities.TrackingTarget(c.Query("type")),
		ID:        c.Query("id"),
		Event:     c.Query("event"),
		Section:   c.Query("section"),
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
	}
	if h.isStaff != nil {
		ev.Internal = h.isStaff(c)
	}
	h.usecase.Record(c.Request.Context(), ev)

	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Data(http.StatusOK, "image/gif", transparentGIF)
}

func (h *TrackingHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context(), entities.TrackingTarget(c.Param("type")), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
