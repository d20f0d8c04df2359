package db

import (
	"context"
	"testing"
	"time"

	"github.com/roselab/warehouse/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderRepoTestSuite struct {
	suite.Suite
	db          *gorm.DB
	orderRepo   *OrderRepo
	productRepo *ProductRepo
}

func (suite *OrderRepoTestSuite) SetupSuite() {
	conn := openTestDb(suite.T())

	dbDao := NewDbDao(conn)
	err := dbDao.InitMigrate()
	require.NoError(suite.T(), err)

	suite.db = conn
	suite.orderRepo = NewOrderRepo(dbDao)
	suite.productRepo = NewProductRepo(dbDao)
}

func (suite *OrderRepoTestSuite) SetupTest() {
	cleanTables(suite.db)
}

func (suite *OrderRepoTestSuite) TearDownSuite() {
	if suite.db == nil {
		return
	}
	db, err := suite.db.DB()
	require.NoError(suite.T(), err)
	db.Close()
}

func (suite *OrderRepoTestSuite) createProduct(name string, quantity uint) *model.Product {
	p := &model.Product{Name: name, Price: decimal.NewFromInt(10), Quantity: quantity}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), p))
	return p
}

func (suite *OrderRepoTestSuite) TestCreateAndGetOrder() {
	p := suite.createProduct("Order Product", 100)

	order := &model.Order{
		CreatedAt: time.Now().UTC(),
		Status:    "in_progress",
		Items: []model.OrderItem{
			{ProductID: p.ID, Quantity: 2},
		},
	}
	err := suite.orderRepo.CreateOrder(context.Background(), order)
	require.NoError(suite.T(), err, "Failed to create order")
	require.NotZero(suite.T(), order.ID, "Order ID should be set")
	require.NotZero(suite.T(), order.Items[0].ID, "OrderItem ID should be set")

	// items一併載入
	retrieved, err := suite.orderRepo.GetOrderByID(context.Background(), order.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "in_progress", retrieved.Status)
	require.Len(suite.T(), retrieved.Items, 1)
	require.Equal(suite.T(), p.ID, retrieved.Items[0].ProductID)
	require.Equal(suite.T(), uint(2), retrieved.Items[0].Quantity)
}

func (suite *OrderRepoTestSuite) TestGetOrderByIDNotFound() {
	_, err := suite.orderRepo.GetOrderByID(context.Background(), 9999)
	require.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepoTestSuite) TestGetOrderIdempotent() {
	p := suite.createProduct("Specific Product", 80)
	order := &model.Order{
		CreatedAt: time.Now().UTC(),
		Status:    "in_progress",
		Items:     []model.OrderItem{{ProductID: p.ID, Quantity: 3}},
	}
	require.NoError(suite.T(), suite.orderRepo.CreateOrder(context.Background(), order))

	// 連續讀取兩次, 中間沒有寫入, 結果要一致
	first, err := suite.orderRepo.GetOrderByID(context.Background(), order.ID)
	require.NoError(suite.T(), err)
	second, err := suite.orderRepo.GetOrderByID(context.Background(), order.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), first, second)
}

func (suite *OrderRepoTestSuite) TestGetOrdersPaginated() {
	p := suite.createProduct("Paginate Product", 100)
	for i := 0; i < 3; i++ {
		order := &model.Order{
			CreatedAt: time.Now().UTC(),
			Status:    "in_progress",
			Items:     []model.OrderItem{{ProductID: p.ID, Quantity: 1}},
		}
		require.NoError(suite.T(), suite.orderRepo.CreateOrder(context.Background(), order))
	}

	page, err := suite.orderRepo.GetOrdersPaginated(context.Background(), 1, 10)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), page, 2)
	for _, order := range page {
		require.Len(suite.T(), order.Items, 1, "items should be eagerly loaded")
	}
}

func (suite *OrderRepoTestSuite) TestUpdateOrderStatus() {
	p := suite.createProduct("Status Product", 60)
	order := &model.Order{
		CreatedAt: time.Now().UTC(),
		Status:    "in_progress",
		Items:     []model.OrderItem{{ProductID: p.ID, Quantity: 2}},
	}
	require.NoError(suite.T(), suite.orderRepo.CreateOrder(context.Background(), order))

	rows, err := suite.orderRepo.UpdateOrderStatus(context.Background(), order.ID, "shipped")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), rows)

	retrieved, err := suite.orderRepo.GetOrderByID(context.Background(), order.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "shipped", retrieved.Status)

	// 同狀態再設一次也成功
	rows, err = suite.orderRepo.UpdateOrderStatus(context.Background(), order.ID, "shipped")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), rows)

	// 不存在的訂單, rows為0
	rows, err = suite.orderRepo.UpdateOrderStatus(context.Background(), 9999, "delivered")
	require.NoError(suite.T(), err)
	require.Zero(suite.T(), rows)
}

func (suite *OrderRepoTestSuite) TestDeleteProductCascadesToItems() {
	p := suite.createProduct("Cascade Product", 50)
	order := &model.Order{
		CreatedAt: time.Now().UTC(),
		Status:    "in_progress",
		Items:     []model.OrderItem{{ProductID: p.ID, Quantity: 1}},
	}
	require.NoError(suite.T(), suite.orderRepo.CreateOrder(context.Background(), order))

	rows, err := suite.productRepo.DeleteProduct(context.Background(), p.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), rows)

	// 商品刪除後, 參照它的order_items被級聯刪除
	retrieved, err := suite.orderRepo.GetOrderByID(context.Background(), order.ID)
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), retrieved.Items)
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}
