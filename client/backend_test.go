package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"BIOSECURE/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_FetchStatistics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/statistics/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"total_personnel":7,"personnel_this_month":2,"personnel_yesterday":1,
			"month_change_percentage":-33.3,"database_status":"Connected",
			"department_breakdown":[{"department":"hr","count":7}]}`))
	}))
	t.Cleanup(server.Close)

	snap, err := New(server.URL+"/", time.Second).FetchStatistics(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 7, snap.TotalPersonnel)
	assert.Equal(t, -33.3, snap.MonthChangePercentage)
	assert.Equal(t, "Connected", snap.DatabaseStatus)
	assert.Equal(t, []models.DepartmentCount{{Department: "hr", Count: 7}}, snap.DepartmentBreakdown)
}

func TestBackend_ListPersonnel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/personnel/", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`[{"id":1,"name":"Jane Doe","department":"sales","face_encoding":[0.1,0.2],
			"created_at":"2026-10-01T08:00:00Z","updated_at":"2026-10-01T08:00:00Z"}]`))
	}))
	t.Cleanup(server.Close)

	records, err := New(server.URL, time.Second).ListPersonnel(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].Id)
	assert.Equal(t, "Jane Doe", records[0].Name)
	assert.Equal(t, []float64{0.1, 0.2}, records[0].FaceEncoding)
	assert.Equal(t, time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC), records[0].CreatedAt.UTC())
}

func TestBackend_CreatePersonnel(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42,"name":"Jane Doe","department":"hr","face_encoding":[0.5]}`))
	}))
	t.Cleanup(server.Close)

	created, err := New(server.URL, time.Second).CreatePersonnel(context.Background(), models.NewPersonnel{
		Name:         "Jane Doe",
		Department:   "hr",
		FaceEncoding: "[0.5]",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.Id)
	assert.Equal(t, map[string]any{"name": "Jane Doe", "department": "hr", "face_encoding": "[0.5]"}, got)
}

func TestBackend_Errors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"name":["This field is required."]}`))
		}))
		t.Cleanup(server.Close)

		_, err := New(server.URL, time.Second).CreatePersonnel(context.Background(), models.NewPersonnel{})
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadRequest, statusErr.Code)
	})

	t.Run("malformed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>not json</html>`))
		}))
		t.Cleanup(server.Close)

		_, err := New(server.URL, time.Second).ListPersonnel(context.Background())
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("null body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("null\n"))
		}))
		t.Cleanup(server.Close)

		backend := New(server.URL, time.Second)
		_, err := backend.FetchStatistics(context.Background())
		assert.ErrorIs(t, err, ErrMalformedResponse)

		_, err = backend.ListPersonnel(context.Background())
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := New(url, time.Second).FetchStatistics(context.Background())
		require.Error(t, err)
		var statusErr *StatusError
		assert.False(t, errors.As(err, &statusErr))
		assert.False(t, errors.Is(err, ErrMalformedResponse))
	})
}
