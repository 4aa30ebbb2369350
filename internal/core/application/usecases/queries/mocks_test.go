package queries_test

import (
	"context"

	"trackview/internal/core/domain/model/courier"
	"trackview/internal/core/domain/model/order"
	"trackview/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/mock"
)

type MockMapViewer struct{ mock.Mock }

func (m *MockMapViewer) View() tracking.View {
	args := m.Called()
	return args.Get(0).(tracking.View)
}

type MockOrderClient struct{ mock.Mock }

func (m *MockOrderClient) Get(ctx context.Context, orderID, credential string) (*order.Order, error) {
	args := m.Called(ctx, orderID, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderClient) List(ctx context.Context, credential string) ([]*order.Order, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderClient) ListCouriers(ctx context.Context, credential string) ([]*courier.Courier, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockOrderClient) AssignCourier(ctx context.Context, orderID, courierID, credential string) error {
	args := m.Called(ctx, orderID, courierID, credential)
	return args.Error(0)
}

func (m *MockOrderClient) Create(ctx context.Context, draft order.Draft, credential string) (*order.Order, error) {
	args := m.Called(ctx, draft, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderClient) Delete(ctx context.Context, orderID, credential string) error {
	args := m.Called(ctx, orderID, credential)
	return args.Error(0)
}

func (m *MockOrderClient) CreateCourier(ctx context.Context, name, credential string) (*courier.Courier, error) {
	args := m.Called(ctx, name, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockAnalyticsClient struct{ mock.Mock }

func (m *MockAnalyticsClient) CourierStats(ctx context.Context, credential string) ([]courier.Stats, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]courier.Stats), args.Error(1)
}
