package petservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с PetService (карточки собак и владельцев)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PetService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetDog получает карточку собаки по ID
func (c *Client) GetDog(ctx context.Context, dogID int64) (*Dog, error) {
	url := fmt.Sprintf("%s/internal/dogs/%d", c.baseURL, dogID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid dog ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrDogNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var dog Dog
	if err := json.NewDecoder(resp.Body).Decode(&dog); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &dog, nil
}

// GetDogs получает карточки набора собак
// Делает по запросу на собаку; любая ошибка прерывает всю выборку (fail-closed),
// чтобы не отдавать наружу частично собранную сетку недели
func (c *Client) GetDogs(ctx context.Context, dogIDs []int64) (map[int64]*Dog, error) {
	result := make(map[int64]*Dog, len(dogIDs))

	for _, id := range dogIDs {
		if _, ok := result[id]; ok {
			continue
		}
		dog, err := c.GetDog(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch dog id=%d: %w", id, err)
		}
		result[id] = dog
	}

	return result, nil
}
