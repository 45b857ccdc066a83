// Package service provides testify doubles for the infra-facing service
// interfaces.
package service

import (
	"context"
	"testing"

	domainsvc "roomie/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock for service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock wired to the test lifecycle.
func NewMockEventPublisher(t *testing.T) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishNudgeEvent(ctx context.Context, event *domainsvc.NudgeEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

// MockPushNotifier is a mock for service.PushNotifier.
type MockPushNotifier struct {
	mock.Mock
}

// NewMockPushNotifier creates a mock wired to the test lifecycle.
func NewMockPushNotifier(t *testing.T) *MockPushNotifier {
	m := &MockPushNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPushNotifier) SendHouseholdPush(ctx context.Context, householdID, title, body string, data map[string]string) error {
	args := m.Called(ctx, householdID, title, body, data)

	return args.Error(0)
}
