package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventplanner-backend/internal/model"
)

// SeasonResponse represents the API response for a single season.
type SeasonResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Year   int    `json:"year"`
	Events int64  `json:"events"`
}

// GetSeasons handles the GET /api/seasons request.
func (h *Handler) GetSeasons(c *gin.Context) {
	seasons, err := h.store.ListSeasons(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve seasons"})
		return
	}

	type aggRow struct {
		SeasonID int64
		Events   int64
	}
	var aggs []aggRow
	if err := h.store.DB().
		Model(&model.Event{}).
		Select("season_id as season_id, COUNT(*) as events").
		Group("season_id").
		Scan(&aggs).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate events"})
		return
	}
	aggMap := make(map[int64]int64, len(aggs))
	for _, a := range aggs {
		aggMap[a.SeasonID] = a.Events
	}

	responses := make([]SeasonResponse, 0, len(seasons))
	for _, s := range seasons {
		responses = append(responses, SeasonResponse{
			ID: s.ID, Name: s.Name, Year: s.Year, Events: aggMap[s.ID],
		})
	}
	c.JSON(http.StatusOK, responses)
}

// EventResponse represents the API response for a single event.
type EventResponse struct {
	ID           int64   `json:"id"`
	SeasonID     int64   `json:"season_id"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Slots        int     `json:"slots"`
	Status       string  `json:"status"`
	Start        string  `json:"start"`
	End          string  `json:"end,omitempty"`
	Participants []int64 `json:"participants"`
}

func toEventResponse(ev model.Event) EventResponse {
	participants := make([]int64, 0, len(ev.Participants))
	for _, p := range ev.Participants {
		participants = append(participants, p.ID)
	}
	return EventResponse{
		ID:           ev.ID,
		SeasonID:     ev.SeasonID,
		Name:         ev.Name,
		Location:     ev.Location,
		Slots:        ev.Slots,
		Status:       ev.Status,
		Start:        ev.Start,
		End:          ev.End,
		Participants: participants,
	}
}

// GetEvents handles the GET /api/events request, optionally filtered by
// season_id.
func (h *Handler) GetEvents(c *gin.Context) {
	var seasonID int64
	if raw := c.Query("season_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid season ID"})
			return
		}
		seasonID = parsed
	}

	events, err := h.store.ListEvents(c.Request.Context(), seasonID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve events"})
		return
	}

	responses := make([]EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, toEventResponse(ev))
	}
	c.JSON(http.StatusOK, responses)
}

// VehicleResponse represents the API response for a fleet vehicle.
type VehicleResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Driver string `json:"driver,omitempty"`
	Seats  int    `json:"seats"`
}

// GetVehicles handles the GET /api/vehicles request.
func (h *Handler) GetVehicles(c *gin.Context) {
	vehicles, err := h.store.ListVehicles(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vehicles"})
		return
	}
	responses := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		responses = append(responses, VehicleResponse{ID: v.ID, Name: v.Name, Driver: v.Driver, Seats: v.Seats})
	}
	c.JSON(http.StatusOK, responses)
}

// AirfieldResponse represents the API response for an airfield.
type AirfieldResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ICAO        string `json:"icao,omitempty"`
	Coordinates string `json:"coordinates,omitempty"`
}

// GetAirfields handles the GET /api/airfields request.
func (h *Handler) GetAirfields(c *gin.Context) {
	airfields, err := h.store.ListAirfields(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve airfields"})
		return
	}
	responses := make([]AirfieldResponse, 0, len(airfields))
	for _, a := range airfields {
		responses = append(responses, AirfieldResponse{ID: a.ID, Name: a.Name, ICAO: a.ICAO, Coordinates: a.Coordinates})
	}
	c.JSON(http.StatusOK, responses)
}
