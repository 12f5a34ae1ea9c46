package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type (
	summaryResponse struct {
		Success        bool    `json:"success"`
		Total          float64 `json:"total"`
		LastHourBurned float64 `json:"lastHourBurned"`
		Block          uint64  `json:"block"`
		BlockTime      float64 `json:"blockTime"`
	}
	point struct {
		X     int64   `json:"x"`
		Y     float64 `json:"y"`
		Block uint64  `json:"block"`
		Title string  `json:"title"`
	}
	seriesResponse struct {
		Success    bool             `json:"success"`
		Resolution model.Resolution `json:"resolution"`
		Burned     []point          `json:"burned"`
		Meta       model.SeriesMeta `json:"meta"`
	}
	resolutionRequest struct {
		Resolution model.Resolution `json:"resolution"`
	}
	resolutionResponse struct {
		Success    bool             `json:"success"`
		Resolution model.Resolution `json:"resolution"`
	}
	errorResponse struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
)

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) burned(w http.ResponseWriter, r *http.Request) {
	summary, err := s.summaries.Summary(r.Context(), s.now())
	if err != nil {
		s.logger.Warn("summary failed", zap.Error(err))
		s.writeError(w, http.StatusBadGateway, err)
		return
	}

	setCacheControl(w, summaryMaxAge)
	s.writeJSON(w, http.StatusOK, summaryResponse{
		Success:        true,
		Total:          summary.Total.InexactFloat64(),
		LastHourBurned: summary.LastHourBurned.InexactFloat64(),
		Block:          summary.Block,
		BlockTime:      summary.BlockTime,
	})
}

func (s *Server) recentBlocks(w http.ResponseWriter, r *http.Request) {
	s.writeSeries(w, r, model.Block, recentBlocksMaxAge)
}

func (s *Server) recentlyBurned(w http.ResponseWriter, r *http.Request) {
	res := model.Resolution(mux.Vars(r)["period"])
	cfg, err := s.registry.Lookup(res)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeSeries(w, r, res, cfg.CacheMaxAge)
}

func (s *Server) resolution(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, resolutionResponse{Success: true, Resolution: s.charts.Resolution()})
}

func (s *Server) setResolution(w http.ResponseWriter, r *http.Request) {
	var req resolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode resolution request: %w", err))
		return
	}
	if err := s.charts.SetResolution(r.Context(), req.Resolution); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resolutionResponse{Success: true, Resolution: req.Resolution})
}

// writeSeries serves the cached series. When nothing is cached for res yet it asks the adapter to refresh it.
func (s *Server) writeSeries(w http.ResponseWriter, r *http.Request, res model.Resolution, maxAge time.Duration) {
	update, err := s.charts.Snapshot(res)
	if err == nil && len(update.Series) == 0 {
		update, err = s.charts.Refresh(r.Context(), res)
	}
	switch {
	case errors.Is(err, model.ErrUnknownResolution):
		s.writeError(w, http.StatusNotFound, err)
		return
	case err != nil:
		s.logger.Warn("series read failed", zap.String("resolution", string(res)), zap.Error(err))
		s.writeError(w, http.StatusBadGateway, err)
		return
	}

	cfg, err := s.registry.Lookup(res)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}

	points := make([]point, 0, len(update.Series))
	for _, d := range update.Series {
		points = append(points, point{
			X:     d.X,
			Y:     d.Y.InexactFloat64(),
			Block: d.Block,
			Title: cfg.FormatTooltipTitle(d),
		})
	}

	setCacheControl(w, maxAge)
	s.writeJSON(w, http.StatusOK, seriesResponse{
		Success:    true,
		Resolution: res,
		Burned:     points,
		Meta:       update.Meta,
	})
}

func setCacheControl(w http.ResponseWriter, maxAge time.Duration) {
	w.Header().Set("Cache-Control",
		fmt.Sprintf("max-age=0, s-maxage=%d, stale-while-revalidate", int64(maxAge.Seconds())))
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Debug("write response failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, err error) {
	s.writeJSON(w, code, errorResponse{Success: false, Error: err.Error()})
}
