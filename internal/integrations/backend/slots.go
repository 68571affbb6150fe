package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

// CreateSlotBatch отправляет один запрос на создание пакета слотов.
// Возвращает тело ответа бэкенда без изменений.
func (c *Client) CreateSlotBatch(ctx context.Context, token string, batch domain.SlotBatch) (json.RawMessage, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/slot.batch", token, batch, nil, "Failed to create slot batch")
	if err != nil {
		return nil, err
	}
	if len(resp.Body) == 0 {
		return json.RawMessage("null"), nil
	}
	return json.RawMessage(resp.Body), nil
}
