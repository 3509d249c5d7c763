package lexoffice

import (
	"context"

	"github.com/pinpt/lexoffice/sdk"
)

// EventSubscriptionDeleted is returned as data after a successful delete
const EventSubscriptionDeleted = "Event Subscription deleted successfully."

// EventSubscription is the payload to register a webhook
type EventSubscription struct {
	EventType   string `json:"eventType"`
	CallbackURL string `json:"callbackUrl"`
}

// EventSubscriptions manages webhook registrations
type EventSubscriptions struct {
	*resource
}

var (
	_ Creator = (*EventSubscriptions)(nil)
	_ Finder  = (*EventSubscriptions)(nil)
	_ Lister  = (*EventSubscriptions)(nil)
	_ Deleter = (*EventSubscriptions)(nil)
)

// Create a subscription. The payload is usually an EventSubscription.
func (m *EventSubscriptions) Create(ctx context.Context, subscription interface{}) sdk.Result {
	return m.create(ctx, subscription, false)
}

// Find a subscription
func (m *EventSubscriptions) Find(ctx context.Context, id string) sdk.Result {
	return m.find(ctx, id)
}

// All subscriptions of the organization
func (m *EventSubscriptions) All(ctx context.Context) sdk.Result {
	return m.all(ctx, nil)
}

// Delete a subscription
func (m *EventSubscriptions) Delete(ctx context.Context, id string) sdk.Result {
	return m.remove(ctx, id, EventSubscriptionDeleted)
}
