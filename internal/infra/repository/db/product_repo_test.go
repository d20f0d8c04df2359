package db

import (
	"context"
	"testing"

	"github.com/roselab/warehouse/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ProductRepoTestSuite struct {
	suite.Suite
	db          *gorm.DB
	productRepo *ProductRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *ProductRepoTestSuite) SetupSuite() {
	conn := openTestDb(suite.T())

	// 初始化資料庫
	dbDao := NewDbDao(conn)
	err := dbDao.InitMigrate()
	require.NoError(suite.T(), err)

	suite.db = conn
	suite.productRepo = NewProductRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *ProductRepoTestSuite) SetupTest() {
	cleanTables(suite.db)
}

func (suite *ProductRepoTestSuite) TearDownSuite() {
	if suite.db == nil {
		return
	}
	db, err := suite.db.DB()
	require.NoError(suite.T(), err)
	db.Close()
}

func (suite *ProductRepoTestSuite) TestCreateAndGetProduct() {
	description := "Test Description"
	newProduct := &model.Product{
		Name:        "Test Product",
		Description: &description,
		Price:       decimal.NewFromFloat(50.00),
		Quantity:    100,
	}
	err := suite.productRepo.CreateProduct(context.Background(), newProduct)
	require.NoError(suite.T(), err, "Failed to create product")
	require.NotZero(suite.T(), newProduct.ID, "Product ID should be set")

	// 根據 ID 查詢
	retrieved, err := suite.productRepo.GetProductByID(context.Background(), newProduct.ID)
	require.NoError(suite.T(), err, "Failed to get product by ID")
	require.Equal(suite.T(), newProduct.Name, retrieved.Name, "Product name mismatch")
	require.Equal(suite.T(), uint(100), retrieved.Quantity)
	require.True(suite.T(), retrieved.Price.Equal(decimal.NewFromFloat(50.00)))
}

func (suite *ProductRepoTestSuite) TestGetProductByIDNotFound() {
	_, err := suite.productRepo.GetProductByID(context.Background(), 9999)
	require.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func (suite *ProductRepoTestSuite) TestGetProductByName() {
	newProduct := &model.Product{
		Name:     "Unique Product",
		Price:    decimal.NewFromFloat(49.99),
		Quantity: 20,
	}
	err := suite.productRepo.CreateProduct(context.Background(), newProduct)
	require.NoError(suite.T(), err)

	found, err := suite.productRepo.GetProductByName(context.Background(), "Unique Product")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), found)
	require.Equal(suite.T(), newProduct.ID, found.ID)

	// 查無資料回傳nil不視為錯誤
	missing, err := suite.productRepo.GetProductByName(context.Background(), "No Such Product")
	require.NoError(suite.T(), err)
	require.Nil(suite.T(), missing)
}

func (suite *ProductRepoTestSuite) TestDuplicateNameRejectedByConstraint() {
	first := &model.Product{Name: "Dup", Price: decimal.NewFromInt(1), Quantity: 1}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), first))

	second := &model.Product{Name: "Dup", Price: decimal.NewFromInt(2), Quantity: 2}
	err := suite.productRepo.CreateProduct(context.Background(), second)
	require.ErrorIs(suite.T(), err, gorm.ErrDuplicatedKey)
}

func (suite *ProductRepoTestSuite) TestGetProductsPaginated() {
	for _, name := range []string{"Product 1", "Product 2", "Product 3"} {
		p := &model.Product{Name: name, Price: decimal.NewFromInt(10), Quantity: 100}
		require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), p))
	}

	page, err := suite.productRepo.GetProductsPaginated(context.Background(), 1, 2)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), page, 2)
	require.Equal(suite.T(), "Product 2", page[0].Name)
	require.Equal(suite.T(), "Product 3", page[1].Name)
}

func (suite *ProductRepoTestSuite) TestUpdateProductFields() {
	p := &model.Product{Name: "Update Product", Price: decimal.NewFromFloat(30.0), Quantity: 300}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), p))

	err := suite.productRepo.UpdateProductFields(context.Background(), p.ID, map[string]any{
		"description": "After update",
		"price":       decimal.NewFromFloat(35.0),
	})
	require.NoError(suite.T(), err)

	retrieved, err := suite.productRepo.GetProductByID(context.Background(), p.ID)
	require.NoError(suite.T(), err)
	// 沒更新的欄位保留原值
	require.Equal(suite.T(), "Update Product", retrieved.Name)
	require.Equal(suite.T(), uint(300), retrieved.Quantity)
	require.NotNil(suite.T(), retrieved.Description)
	require.Equal(suite.T(), "After update", *retrieved.Description)
	require.True(suite.T(), retrieved.Price.Equal(decimal.NewFromFloat(35.0)))
}

func (suite *ProductRepoTestSuite) TestReduceStock() {
	p := &model.Product{Name: "Stock Product", Price: decimal.NewFromInt(10), Quantity: 5}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), p))

	rows, err := suite.productRepo.ReduceStock(context.Background(), p.ID, 3)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), rows)

	retrieved, err := suite.productRepo.GetProductByID(context.Background(), p.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), uint(2), retrieved.Quantity)

	// 超過庫存, 條件更新不生效
	rows, err = suite.productRepo.ReduceStock(context.Background(), p.ID, 3)
	require.NoError(suite.T(), err)
	require.Zero(suite.T(), rows)

	retrieved, err = suite.productRepo.GetProductByID(context.Background(), p.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), uint(2), retrieved.Quantity, "failed reduce must not change quantity")
}

func (suite *ProductRepoTestSuite) TestDeleteProduct() {
	p := &model.Product{Name: "Delete Product", Price: decimal.NewFromFloat(25.0), Quantity: 250}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), p))

	rows, err := suite.productRepo.DeleteProduct(context.Background(), p.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), rows)

	_, err = suite.productRepo.GetProductByID(context.Background(), p.ID)
	require.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)

	// 刪不存在的id, rows為0
	rows, err = suite.productRepo.DeleteProduct(context.Background(), 9999)
	require.NoError(suite.T(), err)
	require.Zero(suite.T(), rows)
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}
