package scheduleservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fitlane/GMS-AppointmentService/internal/domain"
	"github.com/fitlane/GMS-AppointmentService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// conflictResponse модель ответа проверки занятости
type conflictResponse struct {
	HasConflict bool `json:"has_conflict"`
}

// Client клиент для работы со ScheduleService
// Проверка пересечений с другими записями тренера полностью делегирована
// этому сервису - локально алгоритм не дублируется
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ScheduleService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CheckTrainerConflict проверяет, свободен ли тренер в указанный интервал
// Возвращает nil, если слот свободен, и ErrConflictingBooking, если занят
func (c *Client) CheckTrainerConflict(
	ctx context.Context,
	trainerID string,
	date time.Time,
	startTime, endTime types.TimeString,
) error {
	reqURL := fmt.Sprintf("%s/internal/trainers/%s/conflicts", c.baseURL, url.PathEscape(trainerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	q := req.URL.Query()
	q.Set("date", date.Format(domain.DateFormat))
	q.Set("startTime", startTime.String())
	q.Set("endTime", endTime.String())
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusConflict:
		return ErrConflictingBooking
	case http.StatusNotFound:
		return ErrTrainerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var result conflictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.HasConflict {
		return ErrConflictingBooking
	}

	return nil
}
