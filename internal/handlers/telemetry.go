package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"smart_hub/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK       = "ok"
	welcomeMessage = "Welcome to the Simple Smart Hub API! (v2.0.0)"

	errGraphSize = "size must be an integer between 1 and the history capacity"
	errGraph     = "failed to load readings"
)

// deviceStateRequest mirrors the device message; temperature may be null.
type deviceStateRequest struct {
	Temperature *float64 `json:"temperature"`
	Presence    *bool    `json:"presence" binding:"required"`
}

// DeviceStateRequest documents the POST /device_state_update payload.
type DeviceStateRequest struct {
	// Celsius, null when the sensor failed
	Temperature *float64 `json:"temperature" example:"26.5"`
	Presence    bool     `json:"presence" example:"true"`
}

// @Summary      Welcome
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": welcomeMessage})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Report device state
// @Description  Stores the reading and returns the light and fan command.
// @Tags         telemetry
// @Accept       json
// @Produce      json
// @Param        body  body      DeviceStateRequest  true  "Sensor reading"
// @Success      200   {object}  models.ActuatorCommand
// @Failure      400   {object}  map[string]string
// @Router       /device_state_update [post]
func (h *Handler) deviceStateUpdate(c *gin.Context) {
	var req deviceStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	cmd := h.services.Telemetry.Ingest(c.Request.Context(), service.ReadingParams{
		TemperatureC: req.Temperature,
		Presence:     *req.Presence,
	})
	c.JSON(http.StatusOK, cmd)
}

// @Summary      Recent readings
// @Tags         telemetry
// @Produce      json
// @Param        size  query     int  false  "Number of readings (1..100)"  default(10)
// @Success      200   {array}   models.SensorReading
// @Failure      400   {object}  map[string]string
// @Router       /graph [get]
func (h *Handler) graph(c *gin.Context) {
	size := service.DefaultGraphSize
	if qs := c.Query("size"); qs != "" {
		n, err := strconv.Atoi(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errGraphSize})
			return
		}
		size = n
	}
	readings, err := h.services.Telemetry.Graph(size)
	if err != nil {
		if errors.Is(err, service.ErrInvalidGraphSize) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGraph, "graph_failed", err, "size", size)
		return
	}
	c.JSON(http.StatusOK, readings)
}

// @Summary      Debug snapshot
// @Tags         system
// @Produce      json
// @Success      200  {object}  service.DebugInfo
// @Router       /debug_info [get]
func (h *Handler) debugInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Telemetry.DebugInfo())
}
