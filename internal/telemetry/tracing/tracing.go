package tracing

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("adaptfitness-engine")

// PgxOtelTracer opens one span per SQL query. It satisfies pgx.QueryTracer.
type PgxOtelTracer struct {
	tracer         trace.Tracer
	tracingEnabled bool
}

func NewPgxOtelTracer(tracingEnabled bool, tracer trace.Tracer) *PgxOtelTracer {
	return &PgxOtelTracer{
		tracingEnabled: tracingEnabled,
		tracer:         tracer,
	}
}

func (t *PgxOtelTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	if !t.tracingEnabled {
		return ctx
	}

	ctx, span := t.tracer.Start(ctx, "db.query")
	span.SetAttributes(attribute.String("sql", data.SQL))
	return ctx
}

func (t *PgxOtelTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	if !t.tracingEnabled {
		return
	}

	span := trace.SpanFromContext(ctx)
	defer span.End()

	if data.Err != nil {
		span.SetStatus(codes.Error, data.Err.Error())
		span.RecordError(data.Err)
		return
	}
	span.SetAttributes(attribute.String("command_tag", data.CommandTag.String()))
}
