package unit

import (
	"context"
	"strings"
	"testing"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	repo "github.com/RafaelReds/EcoMarket/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// 共通ヘルパー
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", wantSubstr)
	}
	if !strings.Contains(err.Error(), wantSubstr) {
		t.Fatalf("expected error containing %q, got %q", wantSubstr, err.Error())
	}
}

// =====================
// Mocks
// =====================

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) List(ctx context.Context, categoria string) ([]model.Product, error) {
	args := m.Called(ctx, categoria)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *MockProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]string)
	return items, args.Error(1)
}

func (m *MockProductRepository) ListByProducer(ctx context.Context, productorID int64) ([]model.Product, error) {
	args := m.Called(ctx, productorID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) FindOwned(ctx context.Context, id int64, productorID int64) (model.Product, error) {
	args := m.Called(ctx, id, productorID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *MockProductRepository) UpdateOwned(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteOwned(ctx context.Context, id int64, productorID int64) error {
	args := m.Called(ctx, id, productorID)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID int64, estado model.Status) error {
	args := m.Called(ctx, orderID, estado)
	return args.Error(0)
}

func (m *MockOrderRepository) ListHistoryByClient(ctx context.Context, clienteID int64) ([]repo.HistoryRow, error) {
	args := m.Called(ctx, clienteID)
	rows, _ := args.Get(0).([]repo.HistoryRow)
	return rows, args.Error(1)
}

func (m *MockOrderRepository) ListByProducer(ctx context.Context, productorID int64) ([]repo.ProducerOrderRow, error) {
	args := m.Called(ctx, productorID)
	rows, _ := args.Get(0).([]repo.ProducerOrderRow)
	return rows, args.Error(1)
}

type MockOrderItemRepository struct{ mock.Mock }

func (m *MockOrderItemRepository) CreateBulk(ctx context.Context, pedidoID int64, items []model.OrderItem) error {
	args := m.Called(ctx, pedidoID, items)
	return args.Error(0)
}

func (m *MockOrderItemRepository) DeleteByProduct(ctx context.Context, productoID int64) error {
	args := m.Called(ctx, productoID)
	return args.Error(0)
}

func (m *MockOrderItemRepository) UpdateStatusOwned(ctx context.Context, pedidoID, productoID, productorID int64, estado model.Status) error {
	args := m.Called(ctx, pedidoID, productoID, productorID, estado)
	return args.Error(0)
}

func (m *MockOrderItemRepository) ListStatusesByOrder(ctx context.Context, pedidoID int64) ([]model.Status, error) {
	args := m.Called(ctx, pedidoID)
	estados, _ := args.Get(0).([]model.Status)
	return estados, args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

// =====================
// TxRepos / TransactionManager のスタブ
// fnをそのまま実行する。ロールバック自体はGORM側の責務なので
// ここでは「エラー後に書き込みが続かないこと」を検証する。
// =====================

type txReposStub struct {
	orders     *MockOrderRepository
	orderItems *MockOrderItemRepository
	products   *MockProductRepository
	inventory  *MockInventoryRepository
}

func (r *txReposStub) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposStub) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *txReposStub) Products() repo.ProductRepository     { return r.products }
func (r *txReposStub) Inventory() repo.InventoryRepository  { return r.inventory }

func newTxReposStub() *txReposStub {
	return &txReposStub{
		orders:     new(MockOrderRepository),
		orderItems: new(MockOrderItemRepository),
		products:   new(MockProductRepository),
		inventory:  new(MockInventoryRepository),
	}
}

type txManagerStub struct {
	repos *txReposStub
}

func (tm *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(tm.repos)
}
