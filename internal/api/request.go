package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	http "github.com/bogdanfinn/fhttp"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	apierrors "github.com/wastenot/wastenot/internal/errors"
	"github.com/wastenot/wastenot/internal/models"
)

// doJSON sends one request and returns the body of a 2xx response. payload
// is marshalled as the JSON body when non-nil. Non-2xx answers become
// APIError, transport failures NetworkError or TimeoutError.
func (c *Client) doJSON(ctx context.Context, method, endpoint, operation string, payload any) ([]byte, error) {
	if c.IsClosed() {
		return nil, apierrors.ErrClientClosed
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, method+" "+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("wastenot.endpoint", endpoint),
			attribute.String("wastenot.request_id", requestID),
		),
	)
	defer span.End()

	log := c.logger.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("endpoint", endpoint),
	)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "rate limiter")
			return nil, apierrors.ClassifyTransportError(operation, endpoint, err)
		}
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", operation, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpointURL(endpoint), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		classified := apierrors.ClassifyTransportError(operation, endpoint, err)
		log.Warn("request failed", zap.Duration("elapsed", elapsed), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, classified.Error())
		c.countRequest(ctx, endpoint, "error")
		return nil, classified
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.countRequest(ctx, endpoint, fmt.Sprintf("%dxx", resp.StatusCode/100))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Warn("unexpected status",
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", elapsed),
		)
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
		return nil, apierrors.NewAPIErrorWithBody(resp.StatusCode, endpoint, operation+" failed", string(errorBody))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return nil, apierrors.ClassifyTransportError(operation, endpoint, err)
	}

	log.Debug("request completed",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed),
		zap.Int("bytes", len(data)),
	)
	return data, nil
}

func (c *Client) countRequest(ctx context.Context, endpoint, outcome string) {
	if c.requests == nil {
		return
	}
	c.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("outcome", outcome),
	))
}
