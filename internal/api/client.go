package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mensaje genérico cuando la llamada ni siquiera llega al servidor
// (timeout, DNS, red caída). Nunca se propaga como excepción al caller.
const ConnectionErrorMessage = "Error de conexión"

// TokenSource entrega el bearer token vigente; cadena vacía significa
// llamada sin autenticar.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *zap.Logger
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// do ejecuta una llamada y la normaliza al sobre Response[T]. Toda falla
// de transporte o de parseo termina en Success=false con mensaje; jamás
// devuelve un error de Go hacia arriba.
func do[T any](c *Client, ctx context.Context, method, path string, body any) Response[T] {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			c.log.Error("request marshal failed", zap.String("path", path), zap.Error(err))
			return failure[T](ConnectionErrorMessage)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return failure[T](ConnectionErrorMessage)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return failure[T](ConnectionErrorMessage)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure[T](ConnectionErrorMessage)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	var out Response[T]
	out.Success = ok

	if len(bytes.TrimSpace(raw)) == 0 {
		if !ok {
			out.Message = fmt.Sprintf("Error: %d", resp.StatusCode)
		}
		return out
	}

	// message propio del cuerpo, si el servidor envió alguno
	var probe struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &probe)

	if !ok {
		out.Message = probe.Message
		if out.Message == "" {
			out.Message = fmt.Sprintf("Error: %d", resp.StatusCode)
		}
		// cuerpo de error adjunto solo si coincide con T
		_ = json.Unmarshal(raw, &out.Data)
		return out
	}

	if err := json.Unmarshal(raw, &out.Data); err != nil {
		c.log.Warn("response parse failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return failure[T](ConnectionErrorMessage)
	}

	out.Message = probe.Message
	return out
}
