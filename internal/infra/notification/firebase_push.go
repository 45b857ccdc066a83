// Package notification delivers best-effort push notifications through
// Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"roomie/config"
	"roomie/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// firebasePushNotifier implements service.PushNotifier over FCM topics.
// Every household has one topic; clients subscribe on login.
type firebasePushNotifier struct {
	client *messaging.Client
	logger *slog.Logger
}

// noopPushNotifier is used when Firebase is not configured.
type noopPushNotifier struct {
	logger *slog.Logger
}

func (n *noopPushNotifier) SendHouseholdPush(ctx context.Context, householdID, title, body string, data map[string]string) error {
	n.logger.Debug("[NoopPush] Push delivery disabled, skipping",
		slog.String("household_id", householdID),
	)

	return nil
}

// NotifierParams holds dependencies for PushNotifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushNotifier creates a PushNotifier based on configuration. Absent
// Firebase configuration degrades push delivery to a no-op rather than
// failing startup.
func NewPushNotifier(params NotifierParams) (service.PushNotifier, error) {
	cfg := params.Config.Firebase
	logger := params.Logger

	if cfg == nil || cfg.CredentialsPath == "" {
		logger.Info("Firebase not configured, using no-op push notifier")

		return &noopPushNotifier{logger: logger}, nil
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	logger.Info("Firebase push notifier initialized",
		slog.String("project_id", cfg.ProjectID),
	)

	return &firebasePushNotifier{
		client: client,
		logger: logger,
	}, nil
}

// SendHouseholdPush sends a push notification to every device subscribed to
// the household topic.
func (s *firebasePushNotifier) SendHouseholdPush(ctx context.Context, householdID, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: HouseholdTopic(householdID),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send household push: %w", err)
	}

	s.logger.Debug("Household push sent",
		slog.String("household_id", householdID),
		slog.String("message_id", messageID),
	)

	return nil
}

// HouseholdTopic returns the FCM topic name for one household.
func HouseholdTopic(householdID string) string {
	return "household-" + householdID
}

// Module provides the push notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushNotifier),
)
