package redis_repo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// IProductRedisRepository 定義 Redis 商品庫存操作的介面
type IProductRedisRepository interface {
	// SetProductStock 寫入商品庫存
	SetProductStock(ctx context.Context, productID uint, stock uint) error

	// GetProductStock 取得商品庫存數量
	GetProductStock(ctx context.Context, productID uint) (int, error)

	// DeleteProductStock 刪除商品庫存
	DeleteProductStock(ctx context.Context, productID uint) error
}

var (
	ErrProductStockNotFound = errors.New("product stock not found")
)

/*	redis 專注商品庫存
	結構:
	stock:{商品ID} -> 數量*/

type ProductRedisRepo struct {
	productCache *redis.Client
}

func NewProductRedisRepo(productCache *redis.Client) *ProductRedisRepo {
	return &ProductRedisRepo{productCache: productCache}
}

func stockKey(productID uint) string {
	return fmt.Sprintf("stock:%d", productID)
}

func (r *ProductRedisRepo) SetProductStock(ctx context.Context, productID uint, stock uint) error {
	return r.productCache.Set(ctx, stockKey(productID), stock, 0).Err()
}

func (r *ProductRedisRepo) GetProductStock(ctx context.Context, productID uint) (int, error) {
	val, err := r.productCache.Get(ctx, stockKey(productID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrProductStockNotFound
		}
		return 0, err
	}
	stock, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid stock format: %v", err)
	}
	return stock, nil
}

func (r *ProductRedisRepo) DeleteProductStock(ctx context.Context, productID uint) error {
	return r.productCache.Del(ctx, stockKey(productID)).Err()
}
