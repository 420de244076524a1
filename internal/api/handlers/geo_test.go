package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"geo-calc-service/internal/api"
	"geo-calc-service/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	return api.NewRouter(
		services.NewDistanceCalculator(nil, nil, nil),
		services.NewAzimuthCalculator(nil, nil, nil),
		nil,
		nil,
	)
}

func get(t *testing.T, h http.Handler, path string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	target := path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func coords(startLat, startLong, endLat, endLong string) map[string]string {
	return map[string]string{
		"start_lat":  startLat,
		"start_long": startLong,
		"end_lat":    endLat,
		"end_long":   endLong,
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body=%s", rec.Body.String())
	return body
}

func TestHaversineDistanceEndpoint(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name string
		unit string
		want float64
	}{
		{name: "default unit is km", unit: "", want: 10007.543},
		{name: "explicit km", unit: "km", want: 10007.543},
		{name: "upper case km", unit: "KM", want: 10007.543},
		{name: "meters", unit: "m", want: 10007543.398},
		{name: "upper case meters", unit: "M", want: 10007543.398},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := coords("0", "0", "0", "90")
			if tt.unit != "" {
				params["unit_measure"] = tt.unit
			}

			rec := get(t, h, "/haversine_distance/", params)
			require.Equal(t, http.StatusOK, rec.Code, "body=%s", rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.InDelta(t, tt.want, decode(t, rec)["distance"], 1e-6)
		})
	}
}

func TestHaversineDistanceInvalidUnit(t *testing.T) {
	h := newTestServer(t)

	for _, unit := range []string{"mi", "", "kilometers"} {
		params := coords("51.5", "-0.1", "48.85", "2.35")
		params["unit_measure"] = unit

		rec := get(t, h, "/haversine_distance/", params)
		assert.Equal(t, http.StatusNotFound, rec.Code, "unit=%q", unit)
		assert.Equal(t, "Invalid unit_measure.", decode(t, rec)["detail"], "unit=%q", unit)
	}
}

func TestHaversineDistanceValidationComesBeforeUnit(t *testing.T) {
	h := newTestServer(t)

	params := coords("95", "0", "0", "0")
	params["unit_measure"] = "mi"

	rec := get(t, h, "/haversine_distance/", params)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCoordinateValidation(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name     string
		params   map[string]string
		wantLoc  string
		wantType string
	}{
		{
			name:     "missing end_long",
			params:   map[string]string{"start_lat": "0", "start_long": "0", "end_lat": "0"},
			wantLoc:  "end_long",
			wantType: "missing",
		},
		{
			name:     "non numeric start_lat",
			params:   coords("north", "0", "0", "0"),
			wantLoc:  "start_lat",
			wantType: "float_parsing",
		},
		{
			name:     "latitude below range",
			params:   coords("0", "0", "-90.5", "0"),
			wantLoc:  "end_lat",
			wantType: "greater_than_equal",
		},
		{
			name:     "longitude above range",
			params:   coords("0", "180.01", "0", "0"),
			wantLoc:  "start_long",
			wantType: "less_than_equal",
		},
	}

	for _, path := range []string{"/haversine_distance/", "/azimuth_angle/"} {
		for _, tt := range tests {
			t.Run(path+" "+tt.name, func(t *testing.T) {
				rec := get(t, h, path, tt.params)
				require.Equal(t, http.StatusUnprocessableEntity, rec.Code, "body=%s", rec.Body.String())

				detail, ok := decode(t, rec)["detail"].([]any)
				require.True(t, ok)
				require.Len(t, detail, 1)

				issue := detail[0].(map[string]any)
				assert.Equal(t, tt.wantType, issue["type"])
				assert.Equal(t, []any{"query", tt.wantLoc}, issue["loc"])
				assert.NotEmpty(t, issue["msg"])
			})
		}
	}
}

func TestCoordinateValidationReportsEveryParameter(t *testing.T) {
	h := newTestServer(t)

	rec := get(t, h, "/azimuth_angle/", map[string]string{"start_lat": "100", "end_long": "x"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	detail := decode(t, rec)["detail"].([]any)
	locs := map[string]string{}
	for _, d := range detail {
		issue := d.(map[string]any)
		loc := issue["loc"].([]any)
		locs[loc[1].(string)] = issue["type"].(string)
	}

	assert.Equal(t, map[string]string{
		"start_lat":  "less_than_equal",
		"start_long": "missing",
		"end_lat":    "missing",
		"end_long":   "float_parsing",
	}, locs)
}

func TestAzimuthAngleEndpoint(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name    string
		params  map[string]string
		convert string
		want    float64
	}{
		{name: "due east", params: coords("0", "0", "0", "90"), want: 90.0},
		{name: "due west raw", params: coords("0", "0", "0", "-90"), want: -90.0},
		{name: "due west converted", params: coords("0", "0", "0", "-90"), convert: "true", want: 270.0},
		{name: "converted with on", params: coords("0", "0", "0", "-90"), convert: "on", want: 270.0},
		{name: "explicitly not converted", params: coords("0", "0", "0", "-90"), convert: "0", want: -90.0},
		{name: "positive angle unchanged by conversion", params: coords("51.5", "-0.1", "48.85", "2.35"), convert: "True", want: 148.4},
		{name: "same point", params: coords("12.5", "-45", "12.5", "-45"), want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.convert != "" {
				tt.params["convert_negative_angle"] = tt.convert
			}

			rec := get(t, h, "/azimuth_angle/", tt.params)
			require.Equal(t, http.StatusOK, rec.Code, "body=%s", rec.Body.String())
			assert.InDelta(t, tt.want, decode(t, rec)["azimuth_angle"], 1e-9)
		})
	}
}

func TestAzimuthAngleInvalidBool(t *testing.T) {
	h := newTestServer(t)

	params := coords("0", "0", "0", "-90")
	params["convert_negative_angle"] = "maybe"

	rec := get(t, h, "/azimuth_angle/", params)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	issue := decode(t, rec)["detail"].([]any)[0].(map[string]any)
	assert.Equal(t, "bool_parsing", issue["type"])
	assert.Equal(t, "maybe", issue["input"])
}

func TestLastQueryValueWins(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	target := "/haversine_distance/?start_lat=0&start_long=0&end_lat=0&end_long=0&end_long=90&unit_measure=mi&unit_measure=km"
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 10007.543, decode(t, rec)["distance"], 1e-6)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/haversine_distance/", "/azimuth_angle/", "/health"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
		assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"), path)
	}
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestUnknownPath(t *testing.T) {
	rec := get(t, newTestServer(t), "/haversine_distance/extra", coords("0", "0", "0", "0"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
