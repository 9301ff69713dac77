// Package telemetry records the access-control domain counters on an OpenTelemetry meter.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// MeterName is the instrumentation scope of the domain counters.
const MeterName = "org-access-control"

// Recorder receives lifecycle events from the services. Implementations must be safe for concurrent use.
type Recorder interface {
	OrganizationCreated(ctx context.Context)
	InvitationIssued(ctx context.Context, role string)
	InvitationAccepted(ctx context.Context, alreadyMember bool)
}

// Metrics is a Recorder backed by OTel Int64Counters.
type Metrics struct {
	orgsCreated         metric.Int64Counter
	invitationsIssued   metric.Int64Counter
	invitationsAccepted metric.Int64Counter
}

// NewMetrics creates the counters on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	orgs, err := meter.Int64Counter("organizations_created",
		metric.WithDescription("Organizations created"))
	if err != nil {
		return nil, err
	}
	issued, err := meter.Int64Counter("invitations_issued",
		metric.WithDescription("Invitations issued, by role"))
	if err != nil {
		return nil, err
	}
	accepted, err := meter.Int64Counter("invitations_accepted",
		metric.WithDescription("Invitation acceptances, by whether the user was already a member"))
	if err != nil {
		return nil, err
	}
	return &Metrics{orgsCreated: orgs, invitationsIssued: issued, invitationsAccepted: accepted}, nil
}

// Noop returns a Recorder that drops everything.
func Noop() *Metrics {
	m, _ := NewMetrics(noop.NewMeterProvider().Meter(MeterName))
	return m
}

func (m *Metrics) OrganizationCreated(ctx context.Context) {
	m.orgsCreated.Add(ctx, 1)
}

func (m *Metrics) InvitationIssued(ctx context.Context, role string) {
	m.invitationsIssued.Add(ctx, 1, metric.WithAttributes(attribute.String("role", role)))
}

func (m *Metrics) InvitationAccepted(ctx context.Context, alreadyMember bool) {
	m.invitationsAccepted.Add(ctx, 1, metric.WithAttributes(attribute.Bool("already_member", alreadyMember)))
}
