package repository

import (
	"context"
	"testing"

	domainrepo "roomie/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock for repository.TransactionManager. Execute
// runs the callback against the factory it was configured with, so services
// under test exercise their real transactional logic.
type MockTransactionManager struct {
	mock.Mock
	Factory domainrepo.RepositoryFactory
}

// NewMockTransactionManager creates a mock wired to the test lifecycle.
func NewMockTransactionManager(t *testing.T, factory domainrepo.RepositoryFactory) *MockTransactionManager {
	m := &MockTransactionManager{Factory: factory}
	m.Mock.Test(t)

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repoFactory domainrepo.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// MockRepositoryFactory is a mock for repository.RepositoryFactory, handing
// out whichever mocks the test installed.
type MockRepositoryFactory struct {
	ChoreRepo        domainrepo.ChoreRepository
	NotificationRepo domainrepo.NotificationRepository
	HouseholdRepo    domainrepo.HouseholdRepository
}

func (f *MockRepositoryFactory) NewChoreRepository() domainrepo.ChoreRepository {
	return f.ChoreRepo
}

func (f *MockRepositoryFactory) NewNotificationRepository() domainrepo.NotificationRepository {
	return f.NotificationRepo
}

func (f *MockRepositoryFactory) NewHouseholdRepository() domainrepo.HouseholdRepository {
	return f.HouseholdRepo
}
