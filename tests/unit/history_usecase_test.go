package unit

import (
	"context"
	"testing"
	"time"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	repo "github.com/RafaelReds/EcoMarket/internal/repository"
	"github.com/RafaelReds/EcoMarket/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// JOIN結果の行を注文IDでまとめ直す。行順（fecha降順）を保つ。
func TestHistoryUsecase_List_GroupsRows(t *testing.T) {
	ctx := context.Background()
	reciente := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	antiguo := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	orders := new(MockOrderRepository)
	orders.On("ListHistoryByClient", mock.Anything, cliente.ID).Return([]repo.HistoryRow{
		{PedidoID: 2, Fecha: reciente, Estado: model.StatusPendiente,
			ProductoNombre: "Café", Precio: decimal.NewNullDecimal(decimal.RequireFromString("25.50")), Cantidad: 2},
		{PedidoID: 2, Fecha: reciente, Estado: model.StatusPendiente,
			ProductoNombre: "Miel", Precio: decimal.NewNullDecimal(decimal.RequireFromString("40.00")), Cantidad: 1},
		{PedidoID: 1, Fecha: antiguo, Estado: model.StatusEntregado,
			ProductoNombre: "Queso", Precio: decimal.NullDecimal{}, Cantidad: 3},
	}, nil)

	uc := usecase.NewHistoryUsecase(orders)

	got, err := uc.List(ctx, cliente)
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, model.StatusPendiente, got[0].Estado)
	assert.Len(t, got[0].Productos, 2)
	assert.Equal(t, "Café", got[0].Productos[0].Nombre)

	assert.Equal(t, int64(1), got[1].ID)
	assert.Len(t, got[1].Productos, 1)
	// precioがNULLの行は0
	assert.True(t, got[1].Productos[0].Precio.IsZero())
}

func TestHistoryUsecase_List_Empty(t *testing.T) {
	orders := new(MockOrderRepository)
	orders.On("ListHistoryByClient", mock.Anything, cliente.ID).Return([]repo.HistoryRow{}, nil)

	uc := usecase.NewHistoryUsecase(orders)

	got, err := uc.List(context.Background(), cliente)
	assert.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestHistoryUsecase_List_RepositoryError(t *testing.T) {
	orders := new(MockOrderRepository)
	orders.On("ListHistoryByClient", mock.Anything, cliente.ID).
		Return(nil, assert.AnError)

	uc := usecase.NewHistoryUsecase(orders)

	_, err := uc.List(context.Background(), cliente)
	assertErrContains(t, err, "Error al obtener el historial de compras.")
}
