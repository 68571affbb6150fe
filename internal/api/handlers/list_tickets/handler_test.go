package list_tickets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
	"github.com/m04kA/DriveTail-Dashboard/pkg/logger"
	"github.com/m04kA/DriveTail-Dashboard/pkg/ptr"
)

type fakeClient struct {
	query url.Values
}

func (c *fakeClient) ListTickets(_ context.Context, _ string, query url.Values) (*backend.TicketsPage, error) {
	c.query = query
	return &backend.TicketsPage{Tickets: sampleTickets(), Total: 120}, nil
}

func sampleTickets() []domain.Ticket {
	open := &domain.Ref{ID: 1, Nombre: "Abierto"}
	closed := &domain.Ref{ID: 3, Nombre: "Cerrado"}
	high := &domain.Ref{ID: 2, Nombre: "Alta"}
	return []domain.Ticket{
		{ID: 1, Nombre: "Cambio de aceite", IDEstado: 1, Estado: open, Importancia: high, IDServicio: 4, Desde: ptr.Ptr("2025-03-02T10:00:00.000Z"), Hasta: ptr.Ptr("2025-03-02T12:00:00.000Z")},
		{ID: 2, Nombre: "Revisión de frenos", IDEstado: 3, Estado: closed, IDServicio: 5, IDUser: ptr.Ptr("u7"), Desde: ptr.Ptr("2025-03-10")},
		{ID: 3, Nombre: "Alineación", IDEstado: 1, Estado: open, IDServicio: 5, Description: ptr.Ptr("cliente pide aceite sintético")},
	}
}

func get(t *testing.T, client *fakeClient, target string) ([]domain.Ticket, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.AddCookie(&http.Cookie{Name: domain.CookieAuthToken, Value: "tok"})
	rec := httptest.NewRecorder()
	NewHandler(client, logger.NewNop()).Handle(rec, req)

	var tickets []domain.Ticket
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tickets))
	}
	return tickets, rec
}

func ids(tickets []domain.Ticket) []int64 {
	out := make([]int64, len(tickets))
	for i, t := range tickets {
		out[i] = t.ID
	}
	return out
}

func TestHandle_Filters(t *testing.T) {
	cases := []struct {
		query string
		want  []int64
	}{
		{"", []int64{1, 2, 3}},
		{"?search=ACEITE", []int64{1, 3}},
		{"?status=1", []int64{1, 3}},
		{"?status=1,3&service=5", []int64{2, 3}},
		{"?importance=2", []int64{1}},
		{"?user=u7", []int64{2}},
		{"?dateFrom=2025-03-05", []int64{2}},
		{"?dateTo=2025-03-02", []int64{1}},
		{"?service=4&service=5&search=frenos", []int64{2}},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			tickets, rec := get(t, &fakeClient{}, "/api/ticket"+tc.query)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.want, ids(tickets))
			assert.Equal(t, "120", rec.Header().Get("X-Total-Count"))
			assert.Equal(t, len(tc.want), mustAtoi(t, rec.Header().Get("X-Filtered-Count")))
		})
	}
}

func TestHandle_ForwardsNonFilterParams(t *testing.T) {
	client := &fakeClient{}
	_, rec := get(t, client, "/api/ticket?page=3&limit=25&status=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", client.query.Get("page"))
	assert.Equal(t, "25", client.query.Get("limit"))
	assert.Empty(t, client.query.Get("status"))
}

func TestHandle_InvalidFilter(t *testing.T) {
	_, rec := get(t, &fakeClient{}, "/api/ticket?status=abierto")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, rec = get(t, &fakeClient{}, "/api/ticket?dateFrom=yesterday")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	var n int
	require.NoError(t, json.Unmarshal([]byte(s), &n))
	return n
}
