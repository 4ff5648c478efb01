package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"city-lookup/internal/config"
	"city-lookup/internal/lookup"
	"city-lookup/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLookupService struct {
	mock.Mock
}

func (m *mockLookupService) Resolve(ctx context.Context, query string) (lookup.Outcome, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(lookup.Outcome), args.Error(1)
}

func mitte() types.City {
	return types.City{
		CountryAbb: "DE",
		PostCode:   "10115",
		Country:    "Germany",
		Places: []types.Place{
			{PlaceName: "Mitte", Longitude: "13.3833", Latitude: "52.5167", State: "Berlin", StateAbb: "BE"},
		},
	}
}

func newTestApp(t *testing.T, svc lookup.Service) *App {
	t.Helper()
	cfg := &config.Config{Server: config.ServerConfig{Port: 8080, GinMode: "test"}}
	app, err := newApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), svc)
	require.NoError(t, err)
	return app
}

func serve(app *App, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHandlePing(t *testing.T) {
	app := newTestApp(t, &mockLookupService{})

	w := serve(app, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decode[PingResponse](t, w).Message)
}

func TestHandleReady(t *testing.T) {
	app := newTestApp(t, &mockLookupService{})

	w := serve(app, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[ReadyResponse](t, w)
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, 7, resp.Cities)
}

func TestHandleListCities(t *testing.T) {
	app := newTestApp(t, &mockLookupService{})

	w := serve(app, httptest.NewRequest(http.MethodGet, "/api/v1/cities", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		[]string{"berlin", "cairo", "london", "madrid", "new-delhi", "paris", "rome"},
		decode[CitiesResponse](t, w).Cities,
	)
}

func TestHandleGetCity(t *testing.T) {
	tests := []struct {
		name       string
		city       string
		outcome    lookup.Outcome
		err        error
		wantStatus int
		validate   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:       "success",
			city:       "berlin",
			outcome:    lookup.Success(mitte()),
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"status":"success","city":{"countryAbb":"DE","postCode":"10115","country":"Germany","places":[{"placeName":"Mitte","longitude":"13.3833","latitude":"52.5167","state":"Berlin","stateAbb":"BE"}]}}`, w.Body.String())
			},
		},
		{
			name:       "unknown city",
			city:       "Tokyo",
			outcome:    lookup.UnknownCity("Tokyo"),
			wantStatus: http.StatusNotFound,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"status":"unknown_city","error":{"city":"Tokyo","message":"No data available for Tokyo"}}`, w.Body.String())
			},
		},
		{
			name:       "transport failure",
			city:       "berlin",
			outcome:    lookup.TransportFailure("Berlin", assert.AnError),
			wantStatus: http.StatusBadGateway,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decode[OutcomeResponse](t, w)
				assert.Equal(t, "transport_failure", resp.Status)
				require.NotNil(t, resp.Error)
				assert.Equal(t, "Berlin", resp.Error.City)
				assert.NotContains(t, w.Body.String(), assert.AnError.Error())
			},
		},
		{
			name:       "blank city",
			city:       "%20",
			err:        lookup.ErrEmptyQuery,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockLookupService{}
			query, _ := url.PathUnescape(tt.city)
			svc.On("Resolve", mock.Anything, query).Return(tt.outcome, tt.err)
			app := newTestApp(t, svc)

			w := serve(app, httptest.NewRequest(http.MethodGet, "/api/v1/cities/"+tt.city, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.validate != nil {
				tt.validate(t, w)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleSubmitLookup_SessionFlow(t *testing.T) {
	svc := &mockLookupService{}
	svc.On("Resolve", mock.Anything, "berlin").Return(lookup.Success(mitte()), nil)
	svc.On("Resolve", mock.Anything, "Tokyo").Return(lookup.UnknownCity("Tokyo"), nil)
	app := newTestApp(t, svc)

	// Nothing submitted yet
	w := serve(app, httptest.NewRequest(http.MethodGet, "/api/v1/lookup/current", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	// First submission issues a session cookie
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lookup", strings.NewReader(`{"city":"berlin"}`))
	req.Header.Set("Content-Type", "application/json")
	w = serve(app, req)
	require.Equal(t, http.StatusOK, w.Code)

	submitted := decode[SubmitLookupResponse](t, w)
	assert.Equal(t, "success", submitted.Status)
	assert.True(t, submitted.Current)
	require.NotNil(t, submitted.City)
	assert.Equal(t, "10115", submitted.City.PostCode)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	session := cookies[0]
	assert.Equal(t, sessionCookie, session.Name)

	// Renderer sees the stored outcome
	req = httptest.NewRequest(http.MethodGet, "/api/v1/lookup/current", nil)
	req.AddCookie(session)
	w = serve(app, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", decode[OutcomeResponse](t, w).Status)

	// A form-encoded resubmission replaces it
	req = httptest.NewRequest(http.MethodPost, "/api/v1/lookup", strings.NewReader(url.Values{"city": {"Tokyo"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(session)
	w = serve(app, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Result().Cookies(), "existing session must be reused")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/lookup/current", nil)
	req.AddCookie(session)
	w = serve(app, req)
	require.Equal(t, http.StatusOK, w.Code)
	current := decode[OutcomeResponse](t, w)
	assert.Equal(t, "unknown_city", current.Status)
	assert.Nil(t, current.City)
	require.NotNil(t, current.Error)
	assert.Equal(t, "No data available for Tokyo", current.Error.Message)

	svc.AssertExpectations(t)
}

func TestHandleSubmitLookup_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing city", `{}`},
		{"empty city", `{"city":""}`},
		{"blank city", `{"city":"   "}`},
		{"invalid json", `{"city":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockLookupService{}
			app := newTestApp(t, svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/lookup", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := serve(app, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleGetCurrentLookup_UnknownSession(t *testing.T) {
	app := newTestApp(t, &mockLookupService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lookup/current", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "never-seen"})
	w := serve(app, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, &mockLookupService{})

	serve(app, httptest.NewRequest(http.MethodGet, "/ping", nil))
	w := serve(app, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "city_lookup_http_requests_total")
}

func TestSwaggerDoc(t *testing.T) {
	app := newTestApp(t, &mockLookupService{})

	w := serve(app, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "City Lookup API")
	assert.Contains(t, w.Body.String(), "/api/v1/lookup/current")
}
