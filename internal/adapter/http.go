package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-thread-chat/internal/config"
	"github.com/MKhiriev/go-thread-chat/internal/logger"
	"github.com/MKhiriev/go-thread-chat/internal/utils"
	"github.com/MKhiriev/go-thread-chat/models"
)

const idempotencyKeyHeader = "Idempotency-Key"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. When the body has no
// user_id, the token subject is used instead.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Account, error) {
	var found loginResponseDTO

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(loginRequestDTO{Login: creds.Login, Password: creds.Password}).
		SetResult(&found).
		Post("/api/auth/login")
	if err != nil {
		return models.Account{}, mapTransportError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	rawToken, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Account{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	account := models.Account{
		UserID: found.UserID,
		Login:  found.Login,
		Name:   found.Name,
		Token:  rawToken,
	}
	if account.Login == "" {
		account.Login = creds.Login
	}
	if account.UserID == "" {
		token, err := utils.ParseToken(rawToken)
		if err != nil {
			return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
		if account.UserID, err = token.GetUserID(); err != nil {
			return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
	}

	h.SetToken(rawToken)
	h.logger.Debug().Str("login", account.Login).Msg("logged in")
	return account, nil
}

// ListThreads implements [ServerAdapter]. GET /api/threads.
func (h *httpServerAdapter) ListThreads(ctx context.Context) ([]models.ThreadSummary, error) {
	resp, err := h.authedRequest(ctx).Get("/api/threads")
	if err != nil {
		return nil, mapTransportError("list threads", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var dtos []threadSummaryDTO
	if err = json.Unmarshal(resp.Body(), &dtos); err != nil {
		return nil, fmt.Errorf("decode threads response: %w: %w", ErrInvalidResponse, err)
	}

	summaries := make([]models.ThreadSummary, 0, len(dtos))
	for _, dto := range dtos {
		summaries = append(summaries, dto.toModel())
	}
	return summaries, nil
}

// GetThread implements [ServerAdapter]. GET /api/threads/{id}.
func (h *httpServerAdapter) GetThread(ctx context.Context, threadID string) (models.Thread, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("threadID", threadID).
		Get("/api/threads/{threadID}")
	if err != nil {
		return models.Thread{}, mapTransportError("get thread", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Thread{}, err
	}

	var dto threadDTO
	if err = json.Unmarshal(resp.Body(), &dto); err != nil {
		return models.Thread{}, fmt.Errorf("decode thread response: %w: %w", ErrInvalidResponse, err)
	}

	thread := dto.toModel()
	if thread.ID == "" {
		thread.ID = threadID
	}
	return thread, nil
}

// SendMessage implements [ServerAdapter]. POST /api/threads/{id}/messages.
func (h *httpServerAdapter) SendMessage(ctx context.Context, threadID, text, idempotencyKey string) error {
	req := h.authedRequest(ctx).
		SetPathParam("threadID", threadID).
		SetBody(sendMessageRequestDTO{Text: text})
	if idempotencyKey != "" {
		req.SetHeader(idempotencyKeyHeader, idempotencyKey)
	}

	resp, err := req.Post("/api/threads/{threadID}/messages")
	if err != nil {
		return mapTransportError("send message", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
