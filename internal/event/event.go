// Package event defines the envelope published on the shared movie topic.
//
// The movie service and the gateway both produce onto one topic; consumers
// must treat type plus movie id as an idempotency key because delivery is
// at-least-once and no partition key is derived from the id, so relative
// order across partitions is undefined.
package event

import (
	"context"
	"time"
)

// Event types on the shared topic. The GATEWAY_* values are audit records
// emitted by the gateway after a create RPC completes; they are independent
// of (and expected in addition to) the movie service's own domain event.
const (
	TypeMovieCreated        = "MOVIE_CREATED"
	TypeMovieCreationFailed = "MOVIE_CREATION_FAILED"

	TypeGatewayCreateProcessed = "GATEWAY_MOVIE_CREATION_REQUEST_PROCESSED"
	TypeGatewayCreateFailed    = "GATEWAY_MOVIE_CREATION_FAILED"
)

// MovieSnapshot is the persisted state carried inside success envelopes.
type MovieSnapshot struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateMovieInput echoes the request that triggered a failure envelope.
type CreateMovieInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Envelope is the flat JSON message written to the topic. Envelopes are
// immutable once published.
type Envelope struct {
	Type        string            `json:"type"`
	Data        *MovieSnapshot    `json:"data,omitempty"`
	Error       string            `json:"error,omitempty"`
	RequestData *CreateMovieInput `json:"requestData,omitempty"`
}

// MovieCreated builds the domain event for a persisted movie.
func MovieCreated(data MovieSnapshot) Envelope {
	return Envelope{Type: TypeMovieCreated, Data: &data}
}

// MovieCreationFailed builds the audit signal for a failed persistence
// attempt. It is a notification, not a retry mechanism.
func MovieCreationFailed(cause string, in CreateMovieInput) Envelope {
	return Envelope{Type: TypeMovieCreationFailed, Error: cause, RequestData: &in}
}

// GatewayCreateProcessed builds the gateway audit event for a successful
// create RPC.
func GatewayCreateProcessed(data MovieSnapshot) Envelope {
	return Envelope{Type: TypeGatewayCreateProcessed, Data: &data}
}

// GatewayCreateFailed builds the gateway audit event for a failed create RPC.
func GatewayCreateFailed(cause string, in CreateMovieInput) Envelope {
	return Envelope{Type: TypeGatewayCreateFailed, Error: cause, RequestData: &in}
}

// Publisher emits envelopes onto the shared topic. Publish failures must
// never fail the operation that produced the envelope; callers degrade to a
// logged warning.
type Publisher interface {
	Publish(ctx context.Context, env Envelope) error
}
