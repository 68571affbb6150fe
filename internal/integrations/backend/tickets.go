package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

// ListTickets получает тикеты; Total берется из X-Total-Count, иначе равен длине списка
func (c *Client) ListTickets(ctx context.Context, token string, query url.Values) (*TicketsPage, error) {
	resp, err := c.Do(ctx, &Request{Method: http.MethodGet, Path: "/api/ticket", Query: query, Token: token})
	if err != nil {
		return nil, err
	}
	if err := resp.AsError("Failed to fetch tickets"); err != nil {
		return nil, err
	}

	var tickets []domain.Ticket
	if err := decodeBody(resp, &tickets); err != nil {
		return nil, fmt.Errorf("ListTickets: %w", err)
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}

	total, ok := resp.TotalCount()
	if !ok {
		total = len(tickets)
	}

	return &TicketsPage{Tickets: tickets, Total: total}, nil
}

// ListTicketStatuses получает упорядоченный список статусов (колонки доски)
func (c *Client) ListTicketStatuses(ctx context.Context, token string) ([]domain.TicketStatus, error) {
	var statuses []domain.TicketStatus
	if _, err := c.doJSON(ctx, http.MethodGet, "/api/estado-ticket", token, nil, &statuses, "Failed to fetch ticket statuses"); err != nil {
		return nil, err
	}
	if statuses == nil {
		statuses = []domain.TicketStatus{}
	}
	return statuses, nil
}

// UpdateTicketStatus меняет статус тикета (PATCH {"id_estado": N})
func (c *Client) UpdateTicketStatus(ctx context.Context, token string, ticketID, statusID int64) error {
	path := fmt.Sprintf("/api/ticket/%d", ticketID)
	_, err := c.doJSON(ctx, http.MethodPatch, path, token, domain.TicketStatusUpdate{IDEstado: statusID}, nil, "Failed to update ticket")
	return err
}
