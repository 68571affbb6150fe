package backend

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

// TokenClient клиент, привязанный к токену одного администратора
type TokenClient struct {
	client *Client
	token  string
}

// WithToken привязывает клиент к токену
func (c *Client) WithToken(token string) *TokenClient {
	return &TokenClient{client: c, token: token}
}

func (t *TokenClient) ListTickets(ctx context.Context, query url.Values) (*TicketsPage, error) {
	return t.client.ListTickets(ctx, t.token, query)
}

func (t *TokenClient) ListTicketStatuses(ctx context.Context) ([]domain.TicketStatus, error) {
	return t.client.ListTicketStatuses(ctx, t.token)
}

func (t *TokenClient) UpdateTicketStatus(ctx context.Context, ticketID, statusID int64) error {
	return t.client.UpdateTicketStatus(ctx, t.token, ticketID, statusID)
}

func (t *TokenClient) CreateSlotBatch(ctx context.Context, batch domain.SlotBatch) (json.RawMessage, error) {
	return t.client.CreateSlotBatch(ctx, t.token, batch)
}
