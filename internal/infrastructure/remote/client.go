package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog"

	"github.com/jhoicas/wms-sync-agent/internal/application/dto"
	"github.com/jhoicas/wms-sync-agent/internal/domain"
	"github.com/jhoicas/wms-sync-agent/pkg/config"
)

// Cabeceras enviadas al servidor.
const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderDeviceID       = "X-Device-ID"
	// HeaderReplayed la envía el servidor cuando la clave de idempotencia ya se había procesado.
	HeaderReplayed = "Idempotent-Replayed"
)

// TokenSource entrega el token de la sesión activa.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client cliente REST de la autoridad remota del WMS.
type Client struct {
	baseURL  string
	timeout  time.Duration
	deviceID string
	tokens   TokenSource
	log      zerolog.Logger
}

// NewClient construye el cliente. tokens puede ser nil solo si únicamente se usará Login.
func NewClient(cfg config.RemoteConfig, deviceID string, tokens TokenSource, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		timeout:  timeout,
		deviceID: deviceID,
		tokens:   tokens,
		log:      log,
	}
}

type call struct {
	method  string
	path    string
	body    any
	out     any
	auth    bool
	headers map[string]string
}

type result struct {
	status   int
	replayed bool
}

// do ejecuta la llamada y traduce el resultado a errores de dominio:
// transporte → ErrOffline, 401 → ErrUnauthorized, 403 → ErrForbidden, 404 → ErrNotFound,
// 409 → ErrConflict, 408/429/5xx → error transitorio, resto de 4xx → *domain.RejectionError.
func (c *Client) do(ctx context.Context, in call) (result, error) {
	if err := ctx.Err(); err != nil {
		return result{}, err
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(in.method)
	req.SetRequestURI(c.baseURL + in.path)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if c.deviceID != "" {
		req.Header.Set(HeaderDeviceID, c.deviceID)
	}
	for k, v := range in.headers {
		req.Header.Set(k, v)
	}
	if in.auth {
		if c.tokens == nil {
			fiber.ReleaseAgent(a)
			return result{}, domain.ErrUnauthorized
		}
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			fiber.ReleaseAgent(a)
			return result{}, err
		}
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if in.body != nil {
		a.JSON(in.body)
	}
	a.Timeout(c.timeoutFor(ctx))

	resp := fiber.AcquireResponse()
	defer fiber.ReleaseResponse(resp)
	a.SetResponse(resp)

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return result{}, fmt.Errorf("%s %s: %w", in.method, in.path, err)
	}
	start := time.Now()
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		c.log.Debug().Err(errs[0]).Str("method", in.method).Str("path", in.path).Msg("servidor inalcanzable")
		return result{}, fmt.Errorf("%w: %s %s: %v", domain.ErrOffline, in.method, in.path, errors.Join(errs...))
	}
	res := result{status: code, replayed: strings.EqualFold(string(resp.Header.Peek(HeaderReplayed)), "true")}

	c.log.Debug().
		Str("method", in.method).
		Str("path", in.path).
		Int("status", code).
		Dur("latency", time.Since(start)).
		Msg("llamada remota")

	if err := statusError(code, body); err != nil {
		return res, fmt.Errorf("%s %s: %w", in.method, in.path, err)
	}
	if in.out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, in.out); err != nil {
			return res, fmt.Errorf("%s %s: respuesta inválida: %w", in.method, in.path, err)
		}
	}
	return res, nil
}

func (c *Client) timeoutFor(ctx context.Context) time.Duration {
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < c.timeout {
			if left <= 0 {
				return time.Millisecond
			}
			return left
		}
	}
	return c.timeout
}

// TransientError falla del servidor que amerita reintento.
type TransientError struct {
	Status  int
	Message string
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("servidor respondió %d: %s", e.Status, e.Message)
}

func statusError(code int, body []byte) error {
	if code >= 200 && code < 300 {
		return nil
	}
	msg, errCode := errorMessage(code, body)
	switch {
	case code == fiber.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, msg)
	case code == fiber.StatusRequestTimeout, code == fiber.StatusTooManyRequests, code >= 500:
		return &TransientError{Status: code, Message: msg}
	case code == fiber.StatusForbidden:
		return &wrappedRejection{sentinel: domain.ErrForbidden, rej: &domain.RejectionError{Status: code, Code: errCode, Message: msg}}
	case code == fiber.StatusNotFound:
		return &wrappedRejection{sentinel: domain.ErrNotFound, rej: &domain.RejectionError{Status: code, Code: errCode, Message: msg}}
	case code == fiber.StatusConflict:
		return &wrappedRejection{sentinel: domain.ErrConflict, rej: &domain.RejectionError{Status: code, Code: errCode, Message: msg}}
	case code >= 400:
		return &domain.RejectionError{Status: code, Code: errCode, Message: msg}
	}
	return &TransientError{Status: code, Message: msg}
}

// wrappedRejection permite errors.Is contra el centinela y errors.As contra *domain.RejectionError.
type wrappedRejection struct {
	sentinel error
	rej      *domain.RejectionError
}

func (e *wrappedRejection) Error() string { return e.rej.Error() }

func (e *wrappedRejection) Unwrap() []error { return []error{e.sentinel, e.rej} }

func errorMessage(code int, body []byte) (msg, errCode string) {
	var er dto.ErrorResponse
	if len(body) > 0 && json.Unmarshal(body, &er) == nil && er.Message != "" {
		return er.Message, er.Code
	}
	if text := strings.TrimSpace(string(body)); text != "" && len(text) < 512 {
		return text, ""
	}
	return utils.StatusMessage(code), ""
}
