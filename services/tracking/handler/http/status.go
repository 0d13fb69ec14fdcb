package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/saferoute/internal/pkg/apperrors"
	"github.com/piresc/saferoute/internal/pkg/circuitbreaker"
	"github.com/piresc/saferoute/internal/pkg/metrics"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/internal/pkg/poller"
	"github.com/piresc/saferoute/internal/utils"
	"github.com/piresc/saferoute/services/location"
	"github.com/piresc/saferoute/services/sos"
	"github.com/piresc/saferoute/services/tracking"
	"github.com/piresc/saferoute/services/trips"
)

// Deps are the components the status surface reports on. Any of them may be
// nil when the running mode does not use it.
type Deps struct {
	Mode       string
	TripUC     trips.TripUC
	Provider   location.LocationProvider
	SOSUC      sos.SOSUC
	Rider      tracking.RiderView
	Dispatcher tracking.DispatcherView
	Metrics    *metrics.Collector
	Breakers   *circuitbreaker.Manager
}

// StatusHandler serves the local status and action endpoints
type StatusHandler struct {
	deps Deps
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(deps Deps) *StatusHandler {
	return &StatusHandler{deps: deps}
}

// RegisterRoutes registers the status routes
func (h *StatusHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/status", h.Status)
	if h.deps.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.deps.Metrics.Handler()))
	}

	if h.deps.TripUC != nil {
		e.POST("/trips/:tripID/advance", h.AdvanceTrip)
	}
	if h.deps.SOSUC != nil {
		e.POST("/sos", h.TriggerSOS)
	}
	if h.deps.Dispatcher != nil {
		alerts := e.Group("/alerts")
		alerts.POST("/:alertID/acknowledge", h.AcknowledgeAlert)
		alerts.POST("/:alertID/resolve", h.ResolveAlert)
	}
}

// DispatcherStatus summarises the dispatcher view
type DispatcherStatus struct {
	ActiveAlerts int                         `json:"active_alerts"`
	BoardDrivers int                         `json:"board_drivers"`
	Snapshot     tracking.DispatcherSnapshot `json:"snapshot"`
}

// StatusResponse is the /status body
type StatusResponse struct {
	Mode       string                                        `json:"mode"`
	ActiveTrip *models.Trip                                  `json:"active_trip,omitempty"`
	Streaming  bool                                          `json:"streaming"`
	LastFix    *models.Position                              `json:"last_fix,omitempty"`
	Rider      *tracking.RiderSnapshot                       `json:"rider,omitempty"`
	Dispatcher *DispatcherStatus                             `json:"dispatcher,omitempty"`
	Tasks      []poller.Stats                                `json:"tasks,omitempty"`
	Breakers   map[string]circuitbreaker.CircuitBreakerStats `json:"breakers,omitempty"`
}

// Status reports the live state of every wired component
func (h *StatusHandler) Status(c echo.Context) error {
	resp := StatusResponse{Mode: h.deps.Mode}

	if h.deps.TripUC != nil {
		resp.ActiveTrip = h.deps.TripUC.ActiveTrip()
	}
	if h.deps.Provider != nil {
		resp.Streaming = h.deps.Provider.Streaming()
		resp.LastFix = h.deps.Provider.LastFix()
	}
	if h.deps.Rider != nil {
		snap := h.deps.Rider.Snapshot()
		resp.Rider = &snap
		resp.Tasks = append(resp.Tasks, h.deps.Rider.Tasks()...)
	}
	if h.deps.Dispatcher != nil {
		snap := h.deps.Dispatcher.Snapshot()
		resp.Dispatcher = &DispatcherStatus{
			ActiveAlerts: len(snap.Alerts),
			BoardDrivers: len(snap.Board),
			Snapshot:     snap,
		}
		resp.Tasks = append(resp.Tasks, h.deps.Dispatcher.Tasks()...)
	}
	if h.deps.Breakers != nil {
		resp.Breakers = h.deps.Breakers.GetStats()
	}

	return c.JSON(http.StatusOK, resp)
}

// AdvanceTrip moves a trip to its next lifecycle status
func (h *StatusHandler) AdvanceTrip(c echo.Context) error {
	tripID, err := strconv.ParseInt(c.Param("tripID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.deps.TripUC.RefreshTrip(c.Request().Context(), tripID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return utils.NotFoundResponse(c, "Trip not found")
	}
	if err != nil {
		return utils.ActionErrorResponse(c, err)
	}

	next, ok := trip.Status.Next()
	if !ok {
		return utils.ErrorResponseHandler(c, http.StatusPreconditionFailed, "Trip is already "+string(trip.Status))
	}

	updated, err := h.deps.TripUC.Transition(c.Request().Context(), *trip, next)
	if err != nil {
		return utils.ActionErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip moved to "+string(updated.Status), updated)
}

// SOSRequest is the body of POST /sos
type SOSRequest struct {
	Note string `json:"note"`
}

// TriggerSOS raises an alert, attached to the active trip when there is one
func (h *StatusHandler) TriggerSOS(c echo.Context) error {
	var req SOSRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	var tripID *int64
	if h.deps.TripUC != nil {
		if active := h.deps.TripUC.ActiveTrip(); active != nil {
			id := active.ID
			tripID = &id
		}
	}

	alert, err := h.deps.SOSUC.Trigger(c.Request().Context(), tripID, req.Note)
	if err != nil {
		return utils.ActionErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "SOS sent", alert)
}

// ResolveRequest is the body of POST /alerts/:alertID/resolve
type ResolveRequest struct {
	Notes string `json:"notes"`
}

// AcknowledgeAlert acknowledges an SOS alert
func (h *StatusHandler) AcknowledgeAlert(c echo.Context) error {
	alertID, err := strconv.ParseInt(c.Param("alertID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid alert ID")
	}

	alert, err := h.deps.Dispatcher.Acknowledge(c.Request().Context(), alertID)
	if err != nil {
		return utils.ActionErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Alert acknowledged", alert)
}

// ResolveAlert resolves an SOS alert
func (h *StatusHandler) ResolveAlert(c echo.Context) error {
	alertID, err := strconv.ParseInt(c.Param("alertID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid alert ID")
	}

	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	alert, err := h.deps.Dispatcher.Resolve(c.Request().Context(), alertID, req.Notes)
	if err != nil {
		return utils.ActionErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Alert resolved", alert)
}
