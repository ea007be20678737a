package ledgerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/catalog"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/ledger/models"
)

// Client HTTP-клиент API бронирований
// Повторяет контракт ledger.Service, поэтому взаимозаменяем с ним
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
// Таймаут запроса - единственный таймаут на стороне клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateReservation POST /reservations
func (c *Client) CreateReservation(ctx context.Context, dateKey domain.DateKey, slotID, professionalID string, adminID int64) (*domain.Reservation, error) {
	body := models.CreateReservationRequest{
		DateKey:        dateKey.String(),
		TimeSlotID:     slotID,
		AdminID:        adminID,
		ProfessionalID: professionalID,
	}

	var resp models.ReservationResponse
	if err := c.do(ctx, http.MethodPost, "/reservations", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.ToDomain(), nil
}

// ListReservations GET /reservations
func (c *Client) ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	var resp []models.ReservationResponse
	if err := c.do(ctx, http.MethodGet, "/reservations", filterQuery(filter.DateKey, filter.ProfessionalID, filter.AdminID), nil, &resp); err != nil {
		return nil, err
	}

	out := make([]*domain.Reservation, len(resp))
	for i := range resp {
		out[i] = resp[i].ToDomain()
	}
	return out, nil
}

// DeleteReservation DELETE /reservations/{id}
func (c *Client) DeleteReservation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/reservations/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// CreateBlock POST /blocks
func (c *Client) CreateBlock(ctx context.Context, dateKey domain.DateKey, slotID *string, professionalID string, adminID int64) (*domain.Block, error) {
	body := models.CreateBlockRequest{
		DateKey:        dateKey.String(),
		TimeSlotID:     slotID,
		AdminID:        adminID,
		ProfessionalID: professionalID,
	}

	var resp models.BlockResponse
	if err := c.do(ctx, http.MethodPost, "/blocks", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.ToDomain(), nil
}

// ListBlocks GET /blocks
func (c *Client) ListBlocks(ctx context.Context, filter domain.BlockFilter) ([]*domain.Block, error) {
	var resp []models.BlockResponse
	if err := c.do(ctx, http.MethodGet, "/blocks", filterQuery(filter.DateKey, filter.ProfessionalID, filter.AdminID), nil, &resp); err != nil {
		return nil, err
	}

	out := make([]*domain.Block, len(resp))
	for i := range resp {
		out[i] = resp[i].ToDomain()
	}
	return out, nil
}

// DeleteBlock DELETE /blocks/{id}
func (c *Client) DeleteBlock(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/blocks/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// GetCatalog GET /catalog
func (c *Client) GetCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var resp models.CatalogResponse
	if err := c.do(ctx, http.MethodGet, "/catalog", nil, nil, &resp); err != nil {
		return nil, err
	}

	cat, err := catalog.New(resp.ToDomain())
	if err != nil {
		return nil, fmt.Errorf("%w: catalog: %v", ErrInvalidResponse, err)
	}
	return cat, nil
}

// do выполняет запрос и отображает HTTP-статус на ошибки ledger
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("ledgerclient: %s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, readError(resp.Body))
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, readError(resp.Body))
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidInput, readError(resp.Body))
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		c.log.Warn("ledgerclient: %s %s returned status %d", method, path, resp.StatusCode)
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, readError(resp.Body))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func filterQuery(dateKey *domain.DateKey, professionalID *string, adminID *int64) url.Values {
	q := url.Values{}
	if dateKey != nil {
		q.Set("dateKey", dateKey.String())
	}
	if professionalID != nil {
		q.Set("professionalId", *professionalID)
	}
	if adminID != nil {
		q.Set("adminId", strconv.FormatInt(*adminID, 10))
	}
	return q
}

// readError достает сообщение из тела ответа с ошибкой
func readError(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, 4096))
	var e models.ErrorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}
