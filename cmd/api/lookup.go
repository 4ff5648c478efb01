package main

import (
	"errors"
	"net/http"

	"city-lookup/internal/lookup"
	"city-lookup/internal/registry"
	"city-lookup/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie       = "city_lookup_session"
	sessionCookieMaxAge = 24 * 60 * 60
)

// SubmitLookupInput is the body of a form submission
type SubmitLookupInput struct {
	City string `json:"city" form:"city" binding:"required" example:"berlin"` // City name as typed
}

// CitiesResponse lists the supported cities
type CitiesResponse struct {
	Cities []string `json:"cities" example:"berlin,london"`
}

// ErrorDialog is what the error dialog shows
type ErrorDialog struct {
	City    string `json:"city" example:"Tokyo"`
	Message string `json:"message" example:"No data available for Tokyo"`
}

// OutcomeResponse is the JSON form of a lookup outcome
type OutcomeResponse struct {
	Status string       `json:"status" example:"success" enums:"success,unknown_city,transport_failure,pending"`
	City   *types.City  `json:"city,omitempty"`
	Error  *ErrorDialog `json:"error,omitempty"`
}

// SubmitLookupResponse is returned by the form submit endpoint
type SubmitLookupResponse struct {
	OutcomeResponse
	Current bool `json:"current" example:"true"` // false when a newer submission superseded this one
}

func newOutcomeResponse(o lookup.Outcome) OutcomeResponse {
	resp := OutcomeResponse{Status: string(o.Status)}
	if o.OK() {
		resp.City = o.City
		return resp
	}
	resp.Error = &ErrorDialog{City: o.Name, Message: o.Message()}
	return resp
}

// outcomeHTTPStatus maps an outcome to a status code for the stateless endpoint
func outcomeHTTPStatus(o lookup.Outcome) int {
	switch o.Status {
	case lookup.StatusSuccess:
		return http.StatusOK
	case lookup.StatusUnknownCity:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// handleListCities godoc
// @Summary List supported cities
// @Description Return the city names the lookup accepts, in sorted order
// @Tags cities
// @Produce json
// @Success 200 {object} CitiesResponse
// @Router /api/v1/cities [get]
func (app *App) handleListCities(c *gin.Context) {
	c.JSON(http.StatusOK, CitiesResponse{Cities: registry.Names()})
}

// handleGetCity godoc
// @Summary Look up a city
// @Description Resolve a supported city to its postal data without touching any form session
// @Tags cities
// @Produce json
// @Param city path string true "City name" example(berlin)
// @Success 200 {object} OutcomeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} OutcomeResponse
// @Failure 502 {object} OutcomeResponse
// @Router /api/v1/cities/{city} [get]
func (app *App) handleGetCity(c *gin.Context) {
	outcome, err := app.lookupService.Resolve(c.Request.Context(), c.Param("city"))
	if err != nil {
		if errors.Is(err, lookup.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("failed to resolve city", "city", c.Param("city"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve city"})
		return
	}

	c.JSON(outcomeHTTPStatus(outcome), newOutcomeResponse(outcome))
}

// handleSubmitLookup godoc
// @Summary Submit the lookup form
// @Description Resolve a city and store the outcome as the current result of the caller's form session
// @Tags form
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param input body SubmitLookupInput true "Form input"
// @Success 200 {object} SubmitLookupResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/lookup [post]
func (app *App) handleSubmitLookup(c *gin.Context) {
	var input SubmitLookupInput

	// Bind and validate the form
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := app.sessionID(c)

	outcome, current, err := app.form.Submit(c.Request.Context(), sessionID, input.City)
	if err != nil {
		if errors.Is(err, lookup.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		app.logger.Error("failed to submit lookup", "session_id", sessionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit lookup"})
		return
	}

	c.JSON(http.StatusOK, SubmitLookupResponse{
		OutcomeResponse: newOutcomeResponse(outcome),
		Current:         current,
	})
}

// handleGetCurrentLookup godoc
// @Summary Current form result
// @Description Return the latest settled outcome of the caller's form session
// @Tags form
// @Produce json
// @Success 200 {object} OutcomeResponse
// @Success 202 {object} OutcomeResponse "A submission is still in flight"
// @Success 204 "Nothing submitted yet"
// @Router /api/v1/lookup/current [get]
func (app *App) handleGetCurrentLookup(c *gin.Context) {
	sessionID, err := c.Cookie(sessionCookie)
	if err != nil || sessionID == "" {
		c.Status(http.StatusNoContent)
		return
	}

	state := app.form.Current(sessionID)
	switch {
	case state.Pending:
		c.JSON(http.StatusAccepted, OutcomeResponse{Status: "pending"})
	case state.Outcome == nil:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, newOutcomeResponse(*state.Outcome))
	}
}

// sessionID returns the caller's form session, issuing a cookie for new callers
func (app *App) sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, sessionCookieMaxAge, "/", "", false, true)
	return id
}
