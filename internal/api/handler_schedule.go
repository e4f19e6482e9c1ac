package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eventplanner-backend/internal/schedule"
	"eventplanner-backend/internal/timekey"
)

// ScheduleEntryResponse is the flattened per-entry structure in the schedule
// view.
type ScheduleEntryResponse struct {
	ID                 string `json:"id"`
	Kind               string `json:"kind"`
	Title              string `json:"title"`
	Subtitle           string `json:"subtitle,omitempty"`
	Time               string `json:"time,omitempty"`
	Instant            string `json:"instant,omitempty"`
	Ready              bool   `json:"ready"`
	MissingCoordinates bool   `json:"missing_coordinates,omitempty"`
	Highlighted        bool   `json:"highlighted,omitempty"`
}

// DayBucketResponse is one day section of the schedule view.
type DayBucketResponse struct {
	Key     string                  `json:"key"`
	Label   string                  `json:"label"`
	Entries []ScheduleEntryResponse `json:"entries"`
}

// ScheduleResponse is the full schedule view for one event.
type ScheduleResponse struct {
	EventID  int64               `json:"event_id"`
	Loading  bool                `json:"loading"`
	Error    string              `json:"error,omitempty"`
	Dragging string              `json:"dragging,omitempty"`
	Buckets  []DayBucketResponse `json:"buckets"`
}

func (h *Handler) session(c *gin.Context) (*schedule.Session, int64, bool) {
	eventID, err := strconv.ParseInt(c.Param("event_id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return nil, 0, false
	}

	s, err := h.sessions.Session(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "event not found"})
		} else {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedule"})
		}
		return nil, 0, false
	}
	return s, eventID, true
}

// GetSchedule handles GET /api/events/{event_id}/schedule.
func (h *Handler) GetSchedule(c *gin.Context) {
	s, eventID, ok := h.session(c)
	if !ok {
		return
	}

	view := s.View()
	highlighted := make(map[string]bool, len(view.Highlighted))
	for _, id := range view.Highlighted {
		highlighted[id] = true
	}

	resp := ScheduleResponse{
		EventID:  eventID,
		Loading:  view.Loading,
		Error:    view.Error,
		Dragging: view.Dragging,
		Buckets:  make([]DayBucketResponse, 0, len(view.Buckets)),
	}
	for i := range view.Buckets {
		b := &view.Buckets[i]
		ordered := b.Ordered()
		entries := make([]ScheduleEntryResponse, 0, len(ordered))
		for _, e := range ordered {
			entries = append(entries, ScheduleEntryResponse{
				ID:                 e.ID.String(),
				Kind:               string(e.ID.Kind),
				Title:              e.Title,
				Subtitle:           e.Subtitle,
				Time:               timekey.FormatClock(e.SortValue),
				Instant:            e.Schedule,
				Ready:              e.Ready,
				MissingCoordinates: e.MissingCoordinates,
				Highlighted:        highlighted[e.ID.String()],
			})
		}
		resp.Buckets = append(resp.Buckets, DayBucketResponse{Key: b.Key, Label: b.Label, Entries: entries})
	}
	c.JSON(http.StatusOK, resp)
}

// ReloadSchedule handles POST /api/events/{event_id}/schedule/reload: a
// quiet refresh that leaves the visible loading flag alone.
func (h *Handler) ReloadSchedule(c *gin.Context) {
	s, _, ok := h.session(c)
	if !ok {
		return
	}
	go s.ReloadQuiet()
	c.Status(http.StatusAccepted)
}

type startDragRequest struct {
	EntryID string `json:"entry_id" binding:"required"`
}

// StartDrag handles POST /api/events/{event_id}/schedule/drag.
func (h *Handler) StartDrag(c *gin.Context) {
	s, _, ok := h.session(c)
	if !ok {
		return
	}
	var req startDragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := schedule.ParseEntryID(req.EntryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.StartDrag(id); err != nil {
		abortSessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type dropRequest struct {
	Bucket string `json:"bucket" binding:"required"`
	Index  *int   `json:"index" binding:"required"`
}

// HoverDrag handles POST /api/events/{event_id}/schedule/drag/hover.
func (h *Handler) HoverDrag(c *gin.Context) {
	s, _, ok := h.session(c)
	if !ok {
		return
	}
	var req dropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Hover(req.Bucket, *req.Index); err != nil {
		abortSessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DropDrag handles POST /api/events/{event_id}/schedule/drag/drop.
func (h *Handler) DropDrag(c *gin.Context) {
	s, _, ok := h.session(c)
	if !ok {
		return
	}
	var req dropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Drop(c.Request.Context(), req.Bucket, *req.Index); err != nil {
		abortSessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CancelDrag handles POST /api/events/{event_id}/schedule/drag/cancel.
func (h *Handler) CancelDrag(c *gin.Context) {
	s, _, ok := h.session(c)
	if !ok {
		return
	}
	s.CancelDrag()
	c.Status(http.StatusNoContent)
}

type openPickerRequest struct {
	EntryID string `json:"entry_id" binding:"required"`
}

// OpenPicker handles POST /api/events/{event_id}/schedule/picker.
func (h *Handler) OpenPicker(c *gin.Context) {
	s, _, ok := h.session(c)
	if !ok {
		return
	}
	var req openPickerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := schedule.ParseEntryID(req.EntryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.OpenPicker(id); err != nil {
		abortSessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type savePickerRequest struct {
	// Instant is the chosen wall-clock instant; null clears the schedule.
	Instant *string `json:"instant"`
}

// SavePicker handles POST /api/events/{event_id}/schedule/picker/save.
func (h *Handler) SavePicker(c *gin.Context) {
	s, _, ok := h.session(c)
	if !ok {
		return
	}
	var req savePickerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	instant := ""
	if req.Instant != nil {
		instant = *req.Instant
	}
	if err := s.SavePicker(c.Request.Context(), instant); err != nil {
		abortSessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CancelPicker handles POST /api/events/{event_id}/schedule/picker/cancel.
func (h *Handler) CancelPicker(c *gin.Context) {
	s, _, ok := h.session(c)
	if !ok {
		return
	}
	s.CancelPicker()
	c.Status(http.StatusNoContent)
}

func abortSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrUnknownEntry):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, schedule.ErrNoDrag), errors.Is(err, schedule.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
