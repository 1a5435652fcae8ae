package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-console/internal/api/dto"
	"github.com/spec-kit/ticket-console/internal/auth"
	"github.com/spec-kit/ticket-console/internal/config"
	apperrors "github.com/spec-kit/ticket-console/pkg/util"
)

// Client talks to the ticketing backend. The backend is an external
// collaborator reached only through its REST/multipart contracts.
type Client struct {
	baseURL string
	session *auth.Session
	timeout time.Duration
	logger  *zap.Logger
}

// New constructs a backend client.
func New(cfg config.APIConfig, session *auth.Session, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		session: session,
		timeout: cfg.RequestTimeout(),
		logger:  logger,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	uri := c.baseURL + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}
	return c.do(ctx, fiber.MethodGet, uri, "", nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return apperrors.NewNetworkError(err)
	}
	return c.do(ctx, fiber.MethodPost, c.baseURL+path, fiber.MIMEApplicationJSON, encoded, out)
}

func (c *Client) putJSON(ctx context.Context, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return apperrors.NewNetworkError(err)
	}
	return c.do(ctx, fiber.MethodPut, c.baseURL+path, fiber.MIMEApplicationJSON, encoded, out)
}

func (c *Client) postMultipart(ctx context.Context, path string, payload *MultipartPayload, out any) error {
	body, contentType, err := payload.Encode()
	if err != nil {
		return apperrors.NewNetworkError(err)
	}
	return c.do(ctx, fiber.MethodPost, c.baseURL+path, contentType, body, out)
}

// do performs one request via the fiber agent. Mutations are
// fire-and-forget with respect to dialog lifecycle: callers discard the
// result when their session token no longer matches, the request itself
// is never cancelled mid-flight.
func (c *Client) do(ctx context.Context, method, uri, contentType string, body []byte, out any) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewNetworkError(err)
	}

	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if header := c.session.BearerHeader(); header != "" {
		req.Header.Set(fiber.HeaderAuthorization, header)
	}
	if contentType != "" {
		req.Header.SetContentType(contentType)
	}
	if body != nil {
		req.SetBody(body)
	}

	if err := agent.Parse(); err != nil {
		return apperrors.NewNetworkError(err)
	}
	if c.timeout > 0 {
		agent.Timeout(c.timeout)
	}

	code, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		c.logger.Warn("request failed", zap.String("uri", uri), zap.Errors("errs", errs))
		return apperrors.NewNetworkError(errs[0])
	}
	if code >= fiber.StatusBadRequest {
		return decodeError(code, respBody)
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return apperrors.NewNetworkError(err)
		}
	}
	return nil
}

// decodeError surfaces the backend's structured message verbatim when
// present.
func decodeError(code int, body []byte) error {
	var envelope dto.ErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return apperrors.NewServerError(envelope.Error.Message)
	}
	return apperrors.NewServerError(fmt.Sprintf("request failed with status %d", code))
}
