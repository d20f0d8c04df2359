package db

import (
	"context"

	"github.com/roselab/warehouse/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id uint) (*model.Order, error)
	GetOrdersPaginated(ctx context.Context, offset, limit int) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status string) (int64, error)
}

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// WithTx 回傳參與指定交易的repo
func (s *OrderRepo) WithTx(tx *gorm.DB) *OrderRepo {
	return &OrderRepo{db: &DbDao{DB: tx}}
}

// Create - 創建訂單, items一併寫入
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

// Read - 根據ID查詢訂單, items一併載入
func (s *OrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// 分頁查詢訂單
func (s *OrderRepo) GetOrdersPaginated(ctx context.Context, offset, limit int) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Preload("Items").Order("id").Offset(offset).Limit(limit).Find(&orders).Error
	return orders, err
}

// Update - 更新訂單狀態, 不檢查轉換合法性
func (s *OrderRepo) UpdateOrderStatus(ctx context.Context, id uint, status string) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}
