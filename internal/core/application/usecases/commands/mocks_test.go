package commands_test

import (
	"context"

	"trackview/internal/core/domain/model/courier"
	"trackview/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockTrackingView struct{ mock.Mock }

func (m *MockTrackingView) Select(orderID, credential string) error {
	args := m.Called(orderID, credential)
	return args.Error(0)
}

func (m *MockTrackingView) SelectedOrderID() string {
	args := m.Called()
	return args.String(0)
}

type MockAuthClient struct{ mock.Mock }

func (m *MockAuthClient) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
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
