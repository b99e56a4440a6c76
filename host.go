package intlbridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/pitabwire/util"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pitabwire/intlbridge/intl"
)

const instrumentationName = "github.com/pitabwire/intlbridge"

// Span attribute keys used across the bridge.
//
//nolint:gochecknoglobals // OpenTelemetry attribute keys must be global for reuse
var (
	attrSubAPIKey = attribute.Key("intlbridge_sub_api")
	attrMethodKey = attribute.Key("intlbridge_method")
)

// ErrUnknownSubAPI is raised internally when a request names a sub-API the
// registry does not hold. Like every other failure it never crosses the
// wire; it only shows up in logs and trace events.
var ErrUnknownSubAPI = errors.New("intlbridge: unknown sub api")

// Host is the receiving side of the bridge. It holds the registry of sub-API
// constructors, built once at creation, and evaluates request strings against
// it. An instance is scoped to stay for the lifetime of the application and
// is safe for concurrent use: each request constructs a fresh sub-API
// instance and shares no mutable state with any other.
type Host struct {
	id            string
	name          string
	logger        *util.LogEntry
	tracer        trace.Tracer
	constructors  map[string]intl.Constructor
	configuration any
}

// Option configures a Host during construction.
type Option func(ctx context.Context, h *Host)

// NewHost creates a host with the built-in internationalization sub-APIs
// registered and applies the supplied options.
func NewHost(ctx context.Context, opts ...Option) *Host {
	h := &Host{
		id:           xid.New().String(),
		name:         "intlbridge",
		logger:       util.Log(ctx),
		tracer:       otel.Tracer(instrumentationName),
		constructors: intl.Constructors(),
	}

	for _, opt := range opts {
		opt(ctx, h)
	}

	return h
}

// Name gets the name of the host service.
func (h *Host) Name() string {
	return h.name
}

// ID gets the generated identifier of this host instance, present on every
// log line it emits.
func (h *Host) ID() string {
	return h.id
}

// Config obtains the configuration object supplied via WithConfig.
func (h *Host) Config() any {
	return h.configuration
}

// Log obtains a logger entry scoped to this host instance.
func (h *Host) Log(ctx context.Context) *util.LogEntry {
	return h.logger.WithContext(ctx).WithField("service", h.name).WithField("bridge_id", h.id)
}

// Lookup evaluates a request string: parse, resolve the sub-API, construct it
// with the constructor arguments and invoke the method with the method
// arguments. Every failure mode, panics included, collapses to ("", false);
// Lookup never raises. Each request is independent: nothing is memoized and
// nothing is validated ahead of dispatch.
func (h *Host) Lookup(ctx context.Context, key string) (result string, ok bool) {
	ctx, span := h.tracer.Start(ctx, "Host.Lookup")
	defer span.End()

	defer func() {
		if p := recover(); p != nil {
			h.contain(ctx, span, fmt.Errorf("panic during dispatch: %v", p))
			result, ok = "", false
		}
	}()

	req, err := DecodeRequest(key)
	if err != nil {
		h.contain(ctx, span, err)
		return "", false
	}

	span.SetAttributes(attrSubAPIKey.String(req.SubAPI), attrMethodKey.String(req.Method))

	ctor, found := h.constructors[req.SubAPI]
	if !found {
		h.contain(ctx, span, fmt.Errorf("%w: %q", ErrUnknownSubAPI, req.SubAPI))
		return "", false
	}

	instance, err := ctor(ctx, req.CtorArgs)
	if err != nil {
		h.contain(ctx, span, err)
		return "", false
	}

	result, err = instance.Invoke(ctx, req.Method, req.MethodArgs)
	if err != nil {
		h.contain(ctx, span, err)
		return "", false
	}

	span.SetStatus(codes.Ok, "")

	return result, true
}

// contain records a failure on the host's own telemetry; the caller only ever
// sees an absent response.
func (h *Host) contain(ctx context.Context, span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	h.Log(ctx).WithError(err).Debug("Lookup -- request could not be evaluated")
}
