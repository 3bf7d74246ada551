package http

import (
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-search-keeper/internal/app"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/models"
)

// usageResponse acknowledges an accepted usage log.
type usageResponse struct {
	Status string `json:"status"`
}

// submitUsage accepts one usage log carried in query parameters. Only
// requests with log=true are recorded.
func (h *Handler) submitUsage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	if query.Get("log") != "true" {
		log.Warn().Str("func", "*Handler.submitUsage").Msg("usage request without log flag")
		http.Error(w, app.MsgMissingLogFlag, http.StatusBadRequest)
		return
	}

	var submitTime time.Time
	if raw := query.Get("handset_submit_time"); raw != "" {
		parsed, err := time.ParseInLocation(models.UsageTimeLayout, raw, time.Local)
		if err != nil {
			log.Err(err).Str("func", "*Handler.submitUsage").Msg("invalid handset_submit_time")
			http.Error(w, app.MsgInvalidSubmitTime, http.StatusBadRequest)
			return
		}
		submitTime = parsed
	}

	report := models.UsageReport{
		Log: models.UsageLog{
			SubmitTime:    submitTime,
			IntervieweeID: query.Get("interviewee_id"),
			Keyword:       query.Get("keyword"),
		},
		Context: models.UsageContext{
			HandsetID: query.Get("handset_id"),
			Location:  query.Get("location"),
		},
		Received:  time.Now(),
		RequestIP: remoteIP(r),
	}

	if err := h.services.UsageReportService.Submit(r.Context(), report); err != nil {
		log.Err(err).Str("func", "*Handler.submitUsage").Msg("error storing usage log")
		http.Error(w, app.MsgUsageLogNotStored, statusFromError(err))
		return
	}

	writeJSON(w, usageResponse{Status: app.MsgUsageLogStored}, http.StatusOK)
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
