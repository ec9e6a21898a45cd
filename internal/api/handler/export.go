package handler

import (
	"bytes"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/albapepper/nhl-stats-export/internal/api/respond"
	"github.com/albapepper/nhl-stats-export/internal/export"
	"github.com/albapepper/nhl-stats-export/internal/season"
	"github.com/albapepper/nhl-stats-export/internal/sheet"
)

// Export builds the multi-season spreadsheet and returns it as a download.
// @Summary Export multi-season player stats
// @Description Fetches season summaries for every season in range, enriches the leading skaters and goalies with last-5, last-10, hit rate and last game from their game logs, and returns an .xlsx workbook.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param duration query int false "Number of seasons, clamped to 1..10" default(7)
// @Param threshold query number false "Hit rate threshold on points (skaters) or saves (goalies)" default(0.5)
// @Param all_time query bool false "Every season since 1917-1918; ignores duration"
// @Success 200 {file} file
// @Failure 500 {object} respond.ErrorResponse
// @Router /export [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	req := h.parseRequest(r.URL.Query())

	res, err := h.exporter.Run(r.Context(), req)
	if err != nil {
		h.logger.Error("Export failed", "duration", req.Duration, "threshold", req.Threshold, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to export")
		return
	}

	var buf bytes.Buffer
	if err := sheet.Write(&buf, res.Rows); err != nil {
		h.logger.Error("Export write failed", "run_id", res.RunID, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to export")
		return
	}

	w.Header().Set("X-Export-ID", res.RunID)
	respond.WriteAttachment(w, sheet.ContentType, sheet.Filename(req.Duration), buf.Bytes())
}

// Seasons lists the seasons an export with the same parameters would cover.
// @Summary Season range preview
// @Description Returns the season identifiers, oldest first, for a duration.
// @Tags export
// @Produce json
// @Param duration query int false "Number of seasons, clamped to 1..10" default(7)
// @Param all_time query bool false "Every season since 1917-1918; ignores duration"
// @Success 200 {object} map[string]interface{}
// @Router /seasons [get]
func (h *Handler) Seasons(w http.ResponseWriter, r *http.Request) {
	req := h.parseRequest(r.URL.Query())
	now := h.now()
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"duration": req.Duration,
		"current":  season.Current(now),
		"seasons":  season.NewRange(now, req.Duration).Strings(),
	})
}

// parseRequest reads duration, threshold and all_time. Unparseable values
// fall back to the configured defaults.
func (h *Handler) parseRequest(q url.Values) export.Request {
	duration := h.cfg.DefaultDuration
	if v := q.Get("duration"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			duration = n
		}
	}
	duration = season.Clamp(duration, 1, h.cfg.MaxDuration)

	if allTime, _ := strconv.ParseBool(q.Get("all_time")); allTime {
		duration = season.AllTime(h.now())
	}

	threshold := h.cfg.DefaultThreshold
	if v := q.Get("threshold"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) {
			threshold = f
		}
	}

	return export.Request{Duration: duration, Threshold: threshold}
}
