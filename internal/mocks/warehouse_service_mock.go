// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/warehouse-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockWarehouseService struct {
	mock.Mock
}

func (m *MockWarehouseService) GeneratePickingList(ctx context.Context, date string) ([]model.PickingItem, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PickingItem), args.Error(1)
}

func (m *MockWarehouseService) GeneratePackingList(ctx context.Context, date string) ([]model.PackingOrder, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PackingOrder), args.Error(1)
}

func (m *MockWarehouseService) InvalidateReports(date string) {
	m.Called(date)
}
