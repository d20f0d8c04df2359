package redis_decorator

import (
	"context"

	"github.com/roselab/warehouse/internal/infra/repository/db"
	"github.com/roselab/warehouse/internal/infra/repository/db/model"
	"github.com/roselab/warehouse/internal/infra/repository/redis_repo"
	"github.com/rs/zerolog/log"
)

/*
redis 專注商品庫存，所以只有跟商品庫存有關的寫入操作，才需要連動redis
db永遠是真相來源, cache同步失敗只記log不影響主流程
*/
type CacheAsideProductRepo struct {
	db.IProductRepository
	redis redis_repo.IProductRedisRepository
}

func NewCacheAsideProductRepo(dbRepo db.IProductRepository, redis redis_repo.IProductRedisRepository) db.IProductRepository {
	return &CacheAsideProductRepo{IProductRepository: dbRepo, redis: redis}
}

func (p *CacheAsideProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	err := p.IProductRepository.CreateProduct(ctx, product)
	if err != nil {
		return err
	}
	if cacheErr := p.redis.SetProductStock(ctx, product.ID, product.Quantity); cacheErr != nil {
		log.Warn().Err(cacheErr).Uint("product_id", product.ID).Msg("failed to sync stock cache on create")
	}
	return nil
}

func (p *CacheAsideProductRepo) UpdateProductFields(ctx context.Context, id uint, updates map[string]any) error {
	err := p.IProductRepository.UpdateProductFields(ctx, id, updates)
	if err != nil {
		return err
	}

	if quantity, ok := updates["quantity"]; ok {
		if q, ok := quantity.(uint); ok {
			if cacheErr := p.redis.SetProductStock(ctx, id, q); cacheErr != nil {
				log.Warn().Err(cacheErr).Uint("product_id", id).Msg("failed to sync stock cache on update")
			}
		}
	}
	return nil
}

func (p *CacheAsideProductRepo) DeleteProduct(ctx context.Context, id uint) (int64, error) {
	rows, err := p.IProductRepository.DeleteProduct(ctx, id)
	if err != nil {
		return rows, err
	}
	if cacheErr := p.redis.DeleteProductStock(ctx, id); cacheErr != nil {
		log.Warn().Err(cacheErr).Uint("product_id", id).Msg("failed to delete stock cache")
	}
	return rows, nil
}
