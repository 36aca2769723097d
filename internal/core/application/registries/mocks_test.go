package registries_test

import (
	"context"

	"parceltrack/internal/core/application/registries"
	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/party"
	"parceltrack/internal/core/domain/model/product"
	"parceltrack/internal/core/domain/model/zone"
	"parceltrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type mockStore[T any] struct{ mock.Mock }

func (m *mockStore[T]) Add(ctx context.Context, v T) error    { return m.Called(ctx, v).Error(0) }
func (m *mockStore[T]) Update(ctx context.Context, v T) error { return m.Called(ctx, v).Error(0) }

func (m *mockStore[T]) Get(ctx context.Context, id kernel.UUID) (T, error) {
	args := m.Called(ctx, id)
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *mockStore[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockStore[T]) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) SenderRepository() ports.SenderRepository {
	return m.Called().Get(0).(ports.SenderRepository)
}

func (m *MockUoW) RecipientRepository() ports.RecipientRepository {
	return m.Called().Get(0).(ports.RecipientRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	return m.Called().Get(0).(ports.CourierRepository)
}

func (m *MockUoW) ZoneRepository() ports.ZoneRepository {
	return m.Called().Get(0).(ports.ZoneRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() registries.UoW {
	return m.Called().Get(0).(registries.UoW)
}

var (
	_ ports.SenderRepository    = (*mockStore[*party.Sender])(nil)
	_ ports.RecipientRepository = (*mockStore[*party.Recipient])(nil)
	_ ports.CourierRepository   = (*mockStore[*courier.Courier])(nil)
	_ ports.ZoneRepository      = (*mockStore[*zone.Zone])(nil)
	_ ports.ProductRepository   = (*mockStore[*product.Product])(nil)
)
