package handlers

import (
	"errors"
	"net/http"

	"smart_hub/internal/models"
	"smart_hub/internal/schedule"
	"smart_hub/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidBodyPref = "invalid body: "
	errUpdateSettings  = "failed to update settings"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// settingsRequest uses pointers so that zero values still satisfy "required".
type settingsRequest struct {
	UserTemp      *float64 `json:"user_temp" binding:"required"`
	UserLight     string   `json:"user_light" binding:"required"`
	LightDuration string   `json:"light_duration" binding:"required"`
}

// SettingsRequest documents the PUT /settings payload.
type SettingsRequest struct {
	// Fan threshold in Celsius
	UserTemp float64 `json:"user_temp" example:"25"`
	// "HH:MM:SS" (UTC) or "sunset"
	UserLight string `json:"user_light" example:"sunset"`
	// Light on duration, e.g. "2h", "1h30m", "45m10s"
	LightDuration string `json:"light_duration" example:"4h"`
}

// SettingsResponse is returned after a successful update.
type SettingsResponse struct {
	ID           string           `json:"_id" example:"default_settings_id_123"`
	UserTemp     float64          `json:"user_temp" example:"25"`
	UserLight    models.TimeOfDay `json:"user_light" swaggertype:"string" example:"18:00:00"`
	LightTimeOff models.TimeOfDay `json:"light_time_off" swaggertype:"string" example:"22:00:00"`
}

func isScheduleInputError(err error) bool {
	return errors.Is(err, schedule.ErrInvalidFormat) ||
		errors.Is(err, schedule.ErrInvalidTimeFormat) ||
		errors.Is(err, schedule.ErrInvalidDuration)
}

// @Summary      Get settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  models.Settings
// @Router       /settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Settings.Current())
}

// @Summary      Update settings
// @Description  user_light is a UTC time of day or "sunset"; the response carries the resolved on time.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      SettingsRequest  true  "Settings payload"
// @Success      200   {object}  SettingsResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /settings [put]
func (h *Handler) updateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	updated, err := h.services.Settings.Update(c.Request.Context(), service.SettingsParams{
		UserTempC:     *req.UserTemp,
		UserLight:     req.UserLight,
		LightDuration: req.LightDuration,
	})
	if err != nil {
		if isScheduleInputError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateSettings, "settings_update_failed", err,
			"user_light", req.UserLight, "light_duration", req.LightDuration)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{
		ID:           updated.ID,
		UserTemp:     updated.UserTempC,
		UserLight:    updated.LightOnUTC,
		LightTimeOff: updated.LightOffUTC,
	})
}
