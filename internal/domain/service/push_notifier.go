package service

import "context"

// PushNotifier delivers push notifications to every device subscribed to a
// household topic. Implementations are best-effort; callers must not fail a
// mutation because a push could not be delivered.
type PushNotifier interface {
	// SendHouseholdPush sends a push message to the topic of one household.
	SendHouseholdPush(ctx context.Context, householdID, title, body string, data map[string]string) error
}
