package weather

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Service runs the lookup pipeline: build the query, fetch and parse the
// response, validate its shape, transform it into a Report.
type Service struct {
	client *Client
	logger *slog.Logger
	tracer trace.Tracer
}

// NewService creates a weather service. A nil client gets the default
// feed client; a nil logger falls back to slog.Default.
func NewService(client *Client, logger *slog.Logger) *Service {
	if client == nil {
		client = NewClient()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client: client,
		logger: logger,
		tracer: otel.GetTracerProvider().Tracer("gweather"),
	}
}

// GetWeather performs one synchronous fetch-and-transform cycle for the
// location. It returns *FetchError when the feed cannot be reached or its
// body cannot be parsed, and *ValidationError when the document is missing
// required sections. No retries, no partial results: the pipeline stops at
// the first unmet precondition.
func (s *Service) GetWeather(ctx context.Context, location string, settings Settings) (*Report, error) {
	settings = settings.normalized()

	ctx, span := s.tracer.Start(ctx, "get-weather")
	defer span.End()
	span.SetAttributes(
		attribute.String("location", strings.TrimSpace(location)),
		attribute.String("unit", string(settings.Unit)),
	)

	requestURL := s.client.BuildQuery(location, settings)

	doc, err := s.client.FetchDocument(ctx, requestURL)
	if err != nil {
		s.logger.Warn("weather fetch failed", "location", location, "error", err)
		span.RecordError(err)
		return nil, err
	}

	sec, err := validateDocument(doc)
	if err != nil {
		s.logger.Warn("weather response failed validation", "location", location, "error", err)
		span.RecordError(err)
		return nil, err
	}

	report := transformSections(sec, settings)
	s.logger.Debug("weather lookup complete",
		"location", location,
		"city", report.Info.City,
		"forecastDays", len(report.Forecast),
	)
	return report, nil
}

// Lookup is the fail-soft convenience wrapper around GetWeather for
// callers that only care whether data came back.
func (s *Service) Lookup(ctx context.Context, location string, settings Settings) (*Report, bool) {
	report, err := s.GetWeather(ctx, location, settings)
	return report, err == nil
}
