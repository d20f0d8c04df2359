package db

import (
	"context"
	"database/sql"

	"github.com/roselab/warehouse/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// 初始化db schema
// 冪等性
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	)
}

// ExecTx 執行一個交易
// 庫存扣減的read-modify-write需要serializable, 兩個併發扣減不能同時通過數量檢查
// fn回傳錯誤則整個rollback, ctx取消也會rollback
func (d *DbDao) ExecTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.WithContext(ctx).Transaction(fn, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
}
