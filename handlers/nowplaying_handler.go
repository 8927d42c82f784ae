package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/naolatam/SN-radio-sub000/config"
	"github.com/naolatam/SN-radio-sub000/helper"
	"github.com/naolatam/SN-radio-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NowPlayingHandler proxies the stream server's Icecast-style status JSON
// into the stable shape the player polls. Upstream failures degrade to an
// off-air payload with 200 so the polling loop never error-spirals.
type NowPlayingHandler struct {
	cfg    config.StreamConfig
	client *http.Client
	log    zerolog.Logger
	Helper *helper.HTTPHelper
}

func NewNowPlayingHandler(cfg config.StreamConfig, log zerolog.Logger) *NowPlayingHandler {
	return &NowPlayingHandler{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
		Helper: &helper.HTTPHelper{},
	}
}

// icecastStatus mirrors the subset of /status-json.xsl we read.
type icecastStatus struct {
	Icestats struct {
		Source json.RawMessage `json:"source"`
	} `json:"icestats"`
}

type icecastSource struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Listeners int    `json:"listeners"`
}

func (h *NowPlayingHandler) GetNowPlaying(c *gin.Context) {
	offAir := models.NowPlaying{Live: false, StreamURL: h.cfg.StreamURL}

	if h.cfg.StatusURL == "" {
		h.Helper.SendSuccess(c, offAir)
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, h.cfg.StatusURL, nil)
	if err != nil {
		h.Helper.SendSuccess(c, offAir)
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Warn().Err(err).Msg("stream status unreachable")
		h.Helper.SendSuccess(c, offAir)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.log.Warn().Int("status", resp.StatusCode).Msg("stream status returned non-200")
		h.Helper.SendSuccess(c, offAir)
		return
	}

	var status icecastStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		h.log.Warn().Err(err).Msg("stream status unparsable")
		h.Helper.SendSuccess(c, offAir)
		return
	}

	source, ok := firstSource(status.Icestats.Source)
	if !ok {
		h.Helper.SendSuccess(c, offAir)
		return
	}

	h.Helper.SendSuccess(c, models.NowPlaying{
		Live:      true,
		Title:     source.Title,
		Artist:    source.Artist,
		Listeners: source.Listeners,
		StreamURL: h.cfg.StreamURL,
	})
}

// firstSource handles Icecast's quirk of encoding a single mount as an
// object and multiple mounts as an array.
func firstSource(raw json.RawMessage) (icecastSource, bool) {
	if len(raw) == 0 {
		return icecastSource{}, false
	}

	var single icecastSource
	if err := json.Unmarshal(raw, &single); err == nil {
		return single, true
	}

	var many []icecastSource
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
		return many[0], true
	}

	return icecastSource{}, false
}
