package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cargofunds/internal/metrics"
	"cargofunds/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Option customizes a service.
type Option func(*options)

type options struct {
	now           func() time.Time
	metrics       *metrics.Metrics
	nextReference func() string
}

// WithClock overrides the time source. Returned times are normalized to UTC.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = func() time.Time { return now().UTC() }
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithReferenceGenerator overrides how transaction reference numbers are drawn.
func WithReferenceGenerator(gen func() string) Option {
	return func(o *options) {
		o.nextReference = gen
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:           func() time.Time { return time.Now().UTC() },
		nextReference: newReferenceNumber,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// --- Helpers ---

func parseID(entity, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Invalidf("Invalid %s id: %s", strings.ToLower(entity), raw)
	}
	return id, nil
}

// lookupErr turns a missing row into NotFound and wraps any other storage failure.
func lookupErr(err error, entity, field string, value any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(entity, field, value)
	}
	return fmt.Errorf("failed to load %s: %w", strings.ToLower(entity), err)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(DateLayout)
	return &s
}
