package db

import (
	"context"

	"github.com/roselab/warehouse/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

// IProductRepository 商品持久層介面, redis decorator會包裝此介面
type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	GetProductByName(ctx context.Context, name string) (*model.Product, error)
	GetProductsPaginated(ctx context.Context, offset, limit int) ([]model.Product, error)
	UpdateProductFields(ctx context.Context, id uint, updates map[string]any) error
	DeleteProduct(ctx context.Context, id uint) (int64, error)
}

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

// WithTx 回傳參與指定交易的repo
func (s *ProductRepo) WithTx(tx *gorm.DB) *ProductRepo {
	return &ProductRepo{db: &DbDao{DB: tx}}
}

// Create - 創建商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// Read - 根據ID查詢商品
func (s *ProductRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 根據名稱查詢, 查無資料回傳nil不視為錯誤
func (s *ProductRepo) GetProductByName(ctx context.Context, name string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// 分頁查詢商品
func (s *ProductRepo) GetProductsPaginated(ctx context.Context, offset, limit int) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&products).Error
	return products, err
}

// Update - 部分更新商品
func (s *ProductRepo) UpdateProductFields(ctx context.Context, id uint, updates map[string]any) error {
	return s.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(updates).Error
}

// Update - 減少庫存
// 條件更新擋住超賣, rows affected為0代表庫存不足
func (s *ProductRepo) ReduceStock(ctx context.Context, id uint, quantity uint) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND quantity >= ?", id, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	return result.RowsAffected, result.Error
}

// Delete - 硬刪除商品, 級聯刪除關聯的order_items
func (s *ProductRepo) DeleteProduct(ctx context.Context, id uint) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&model.Product{}, id)
	return result.RowsAffected, result.Error
}
