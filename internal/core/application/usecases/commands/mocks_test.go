package commands_test

import (
	"context"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/outbox"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/party"
	"parceltrack/internal/core/domain/model/product"
	"parceltrack/internal/core/domain/model/zone"
	"parceltrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) Delete(ctx context.Context, removal parcel.Removal) error {
	return m.Called(ctx, removal).Error(0)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entry *parcel.HistoryEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockHistoryRepository) ListForParcel(ctx context.Context, id kernel.UUID) ([]*parcel.HistoryEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.HistoryEntry), args.Error(1)
}

func (m *MockHistoryRepository) DeleteForParcel(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockParcelProductRepository struct{ mock.Mock }

func (m *MockParcelProductRepository) Save(ctx context.Context, line *parcel.ProductLine) error {
	return m.Called(ctx, line).Error(0)
}

func (m *MockParcelProductRepository) ListForParcel(ctx context.Context, id kernel.UUID) ([]*parcel.ProductLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.ProductLine), args.Error(1)
}

func (m *MockParcelProductRepository) DeleteForParcel(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// mockLookup is the fetch-or-fail half shared by the parent repository mocks.
type mockLookup[T any] struct{ mock.Mock }

func (m *mockLookup[T]) Add(ctx context.Context, v T) error { return m.Called(ctx, v).Error(0) }

func (m *mockLookup[T]) Update(ctx context.Context, v T) error { return m.Called(ctx, v).Error(0) }

func (m *mockLookup[T]) Get(ctx context.Context, id kernel.UUID) (T, error) {
	args := m.Called(ctx, id)
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *mockLookup[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockLookup[T]) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type (
	MockSenderRepository    = mockLookup[*party.Sender]
	MockRecipientRepository = mockLookup[*party.Recipient]
	MockZoneRepository      = mockLookup[*zone.Zone]
	MockCourierRepository   = mockLookup[*courier.Courier]
	MockProductRepository   = mockLookup[*product.Product]
)

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockParcelUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockParcelUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	return m.Called().Get(0).(ports.ParcelRepository)
}

func (m *MockParcelUoW) HistoryRepository() ports.HistoryRepository {
	return m.Called().Get(0).(ports.HistoryRepository)
}

func (m *MockParcelUoW) ParcelProductRepository() ports.ParcelProductRepository {
	return m.Called().Get(0).(ports.ParcelProductRepository)
}

func (m *MockParcelUoW) SenderRepository() ports.SenderRepository {
	return m.Called().Get(0).(ports.SenderRepository)
}

func (m *MockParcelUoW) RecipientRepository() ports.RecipientRepository {
	return m.Called().Get(0).(ports.RecipientRepository)
}

func (m *MockParcelUoW) ZoneRepository() ports.ZoneRepository {
	return m.Called().Get(0).(ports.ZoneRepository)
}

func (m *MockParcelUoW) CourierRepository() ports.CourierRepository {
	return m.Called().Get(0).(ports.CourierRepository)
}

func (m *MockParcelUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	return m.Called().Get(0).(commands.ParcelUoW)
}

type MockCacheInvalidator struct{ mock.Mock }

func (m *MockCacheInvalidator) Invalidate(ctx context.Context, id kernel.UUID) {
	m.Called(ctx, id)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, msg *outbox.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockOutboxRepository) ClaimPending(ctx context.Context, limit int) ([]*outbox.Message, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*outbox.Message), args.Error(1)
}

func (m *MockOutboxRepository) Update(ctx context.Context, msg *outbox.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type MockOutboxUoW struct{ mock.Mock }

func (m *MockOutboxUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockOutboxUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockOutboxUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockOutboxUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	return m.Called().Get(0).(commands.OutboxUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, msg *outbox.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockPublisher) Close() error { return m.Called().Error(0) }
