package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"nobelproxy/internal/nobelapi"
)

// ErrInvalidInput is returned when a laureate identifier is missing or not numeric.
var ErrInvalidInput = errors.New("invalid laureate ID")

// Error kinds as they appear in diagnostic logs.
const (
	KindInvalidInput  = "invalid_input"
	KindUpstreamError = "upstream_error"
	KindFetchFailure  = "fetch_failure"
)

// NobelService defines the read-only queries proxied to the Nobel Prize API.
type NobelService interface {
	// FetchPrizeList returns the upstream prize sequence, sorted ascending.
	FetchPrizeList(ctx context.Context) (json.RawMessage, error)

	// FetchLaureateByID returns a laureate body as-is, or [] when the upstream has none.
	// The id must be present and numeric; otherwise ErrInvalidInput is returned
	// without contacting the upstream.
	FetchLaureateByID(ctx context.Context, id string) (json.RawMessage, error)
}

type nobelService struct {
	api    nobelapi.API
	log    *slog.Logger
	tracer trace.Tracer
}

// NewNobelService constructs a NobelService. Failures are logged to log.
func NewNobelService(api nobelapi.API, log *slog.Logger) NobelService {
	return &nobelService{
		api:    api,
		log:    log,
		tracer: otel.Tracer("nobelproxy/internal/service"),
	}
}

func (s *nobelService) FetchPrizeList(ctx context.Context) (json.RawMessage, error) {
	ctx, span := s.tracer.Start(ctx, "NobelService.FetchPrizeList")
	defer span.End()

	prizes, err := s.api.NobelPrizes(ctx)
	if err != nil {
		s.fail(span, "error fetching Nobel Prizes", err)
		return nil, fmt.Errorf("fetch nobel prizes: %w", err)
	}
	return prizes, nil
}

func (s *nobelService) FetchLaureateByID(ctx context.Context, id string) (json.RawMessage, error) {
	ctx, span := s.tracer.Start(ctx, "NobelService.FetchLaureateByID",
		trace.WithAttributes(attribute.String("laureate.id", id)))
	defer span.End()

	if !IsNumericID(id) {
		s.fail(span, "error fetching laureate", ErrInvalidInput, slog.String("laureate_id", id))
		return nil, ErrInvalidInput
	}

	laureate, err := s.api.Laureate(ctx, id)
	if err != nil {
		s.fail(span, "error fetching laureate", err, slog.String("laureate_id", id))
		return nil, fmt.Errorf("fetch laureate %s: %w", id, err)
	}
	return laureate, nil
}

func (s *nobelService) fail(span trace.Span, msg string, err error, attrs ...slog.Attr) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	if s.log == nil {
		return
	}
	attrs = append(attrs,
		slog.String("kind", Kind(err)),
		slog.Any("error", err),
	)
	s.log.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

// Kind classifies err into one of the Kind* constants.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case nobelapi.IsUpstreamError(err):
		return KindUpstreamError
	default:
		return KindFetchFailure
	}
}

// IsNumericID reports whether id is non-empty and parses as a finite number.
// Only such ids are interpolated into upstream paths.
func IsNumericID(id string) bool {
	if id == "" {
		return false
	}
	f, err := strconv.ParseFloat(id, 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
