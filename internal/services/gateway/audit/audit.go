// Package audit emits the gateway's own trail of create-request outcomes.
//
// Audit events are published on the same topic as the movie service's domain
// events but are independent of them: one successful creation is expected to
// appear twice on the topic, once as MOVIE_CREATED from the owning service
// and once as a GATEWAY_* record from here.
package audit

import (
	"context"
	"log"
	"time"

	"screencat/internal/event"
)

const publishTimeout = 2 * time.Second

// Recorder publishes gateway audit envelopes best-effort. A nil Recorder is
// a valid no-op.
type Recorder struct {
	events event.Publisher
	logf   func(format string, args ...any)
}

// NewRecorder creates a recorder over the given publisher.
func NewRecorder(events event.Publisher) *Recorder {
	return &Recorder{events: events, logf: log.Printf}
}

// CreateProcessed records that a create RPC completed and the movie exists.
func (r *Recorder) CreateProcessed(ctx context.Context, data event.MovieSnapshot) {
	r.publish(ctx, event.GatewayCreateProcessed(data))
}

// CreateFailed records that a create RPC failed, echoing the client input.
func (r *Recorder) CreateFailed(ctx context.Context, cause string, in event.CreateMovieInput) {
	r.publish(ctx, event.GatewayCreateFailed(cause, in))
}

// publish never fails the request that produced the record: the response to
// the client is already decided, so bus trouble degrades to a warning and a
// client disconnect does not suppress the record.
func (r *Recorder) publish(ctx context.Context, env event.Envelope) {
	if r == nil || r.events == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := r.events.Publish(pubCtx, env); err != nil && r.logf != nil {
		r.logf("publish %s: %v", env.Type, err)
	}
}
