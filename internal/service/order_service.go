package service

import (
	"context"
	"errors"
	"time"

	"github.com/roselab/warehouse/internal/errs"
	"github.com/roselab/warehouse/internal/infra/producer"
	"github.com/roselab/warehouse/internal/infra/repository/db"
	dbmodel "github.com/roselab/warehouse/internal/infra/repository/db/model"
	"github.com/roselab/warehouse/internal/infra/repository/redis_repo"
	"github.com/roselab/warehouse/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type IOrderService interface {
	CreateOrder(ctx context.Context, status model.OrderStatus, items []model.OrderItemRequest) (*model.OrderModel, error)
	GetOrderByID(ctx context.Context, id uint) (*model.OrderModel, error)
	GetOrders(ctx context.Context, skip, limit int) ([]model.OrderModel, error)
	UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) (*model.OrderModel, error)
}

type OrderService struct {
	dbDao       *db.DbDao
	orderRepo   *db.OrderRepo
	productRepo *db.ProductRepo
	stockCache  redis_repo.IProductRedisRepository // optional, nil時不同步
	producer    producer.IOrderEventProducer       // optional, nil時不發送
}

func NewOrderService(
	dbDao *db.DbDao,
	orderRepo *db.OrderRepo,
	productRepo *db.ProductRepo,
	stockCache redis_repo.IProductRedisRepository,
	orderProducer producer.IOrderEventProducer,
) IOrderService {
	return &OrderService{
		dbDao:       dbDao,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		stockCache:  stockCache,
		producer:    orderProducer,
	}
}

// CreateOrder 建立訂單與扣減庫存, 全部在一個serializable交易內完成
//
// 逐項處理: 查商品 -> 檢查庫存 -> 扣減 -> 掛上order item
// 任何一項失敗整筆rollback, 不會留下部分扣減
// 檢查順序有意義: 商品不存在優先於庫存不足回報
func (s *OrderService) CreateOrder(ctx context.Context, status model.OrderStatus, items []model.OrderItemRequest) (*model.OrderModel, error) {
	if status == "" {
		status = model.OrderStatusInProgress
	}

	var created *dbmodel.Order
	// 扣減後的庫存數量, commit成功後同步到cache
	var remaining map[uint]uint

	// serializable衝突 (40001) 重試, 重試後的庫存檢查會回報真實的業務錯誤
	var err error
	for attempt := 0; attempt < createOrderMaxAttempts; attempt++ {
		created, remaining, err = s.reserveAndCreate(ctx, status, items)
		if err == nil || !db.IsSerializationFailure(err) {
			break
		}
	}
	if err != nil {
		var domainErr *errs.Error
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, errs.Wrap(errs.InternalCode, "failed to create order", err)
	}

	result := convertRepoOrderToModel(created)
	s.syncStockCache(ctx, remaining)
	s.emitOrderEvent(ctx, producer.OrderEventCreated, result)
	return result, nil
}

const createOrderMaxAttempts = 3

func (s *OrderService) reserveAndCreate(ctx context.Context, status model.OrderStatus, items []model.OrderItemRequest) (*dbmodel.Order, map[uint]uint, error) {
	var created *dbmodel.Order
	remaining := make(map[uint]uint, len(items))

	err := s.dbDao.ExecTx(ctx, func(tx *gorm.DB) error {
		productRepo := s.productRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		order := &dbmodel.Order{
			CreatedAt: time.Now().UTC(),
			Status:    string(status),
		}

		for _, item := range items {
			product, err := productRepo.GetProductByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errs.Newf(errs.BusinessRuleCode, "Product with id %d does not exist.", item.ProductID)
				}
				return err
			}
			if product.Quantity < item.Quantity {
				return errs.Newf(errs.BusinessRuleCode, "Insufficient quantity for product %s.", product.Name)
			}

			// 條件更新再擋一次, rows為0代表同交易內前面的品項已扣到不足
			rows, err := productRepo.ReduceStock(ctx, product.ID, item.Quantity)
			if err != nil {
				return err
			}
			if rows == 0 {
				return errs.Newf(errs.BusinessRuleCode, "Insufficient quantity for product %s.", product.Name)
			}
			remaining[product.ID] = product.Quantity - item.Quantity

			order.Items = append(order.Items, dbmodel.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return created, remaining, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id uint) (*model.OrderModel, error) {
	entity, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.New(errs.NotFoundCode, "Order not found.")
		}
		return nil, errs.Wrap(errs.InternalCode, "failed to get order", err)
	}

	return convertRepoOrderToModel(entity), nil
}

func (s *OrderService) GetOrders(ctx context.Context, skip, limit int) ([]model.OrderModel, error) {
	entities, err := s.orderRepo.GetOrdersPaginated(ctx, skip, limit)
	if err != nil {
		return nil, errs.Wrap(errs.InternalCode, "failed to list orders", err)
	}

	orders := make([]model.OrderModel, 0, len(entities))
	for i := range entities {
		orders = append(orders, *convertRepoOrderToModel(&entities[i]))
	}
	return orders, nil
}

// UpdateOrderStatus 無條件覆寫狀態, 任意狀態可轉任意狀態
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) (*model.OrderModel, error) {
	rows, err := s.orderRepo.UpdateOrderStatus(ctx, id, string(status))
	if err != nil {
		return nil, errs.Wrap(errs.InternalCode, "failed to update order status", err)
	}
	if rows == 0 {
		return nil, errs.New(errs.NotFoundCode, "Order not found.")
	}

	order, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.emitOrderEvent(ctx, producer.OrderEventStatusChanged, order)
	return order, nil
}

// cache同步採best effort, 失敗只記log
func (s *OrderService) syncStockCache(ctx context.Context, remaining map[uint]uint) {
	if s.stockCache == nil {
		return
	}
	for productID, quantity := range remaining {
		if err := s.stockCache.SetProductStock(ctx, productID, quantity); err != nil {
			log.Warn().Err(err).Uint("product_id", productID).Msg("failed to sync stock cache after order")
		}
	}
}

// 事件發送採best effort, 失敗只記log不影響已commit的訂單
func (s *OrderService) emitOrderEvent(ctx context.Context, eventType producer.OrderEventType, order *model.OrderModel) {
	if s.producer == nil {
		return
	}
	var err error
	switch eventType {
	case producer.OrderEventCreated:
		err = s.producer.OrderCreated(ctx, order)
	case producer.OrderEventStatusChanged:
		err = s.producer.OrderStatusChanged(ctx, order)
	}
	if err != nil {
		log.Warn().Err(err).Uint("order_id", order.ID).Str("event", string(eventType)).Msg("failed to publish order event")
	}
}

func convertRepoOrderToModel(entity *dbmodel.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(entity.Items))
	for _, item := range entity.Items {
		items = append(items, model.OrderItemModel{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return &model.OrderModel{
		ID:        entity.ID,
		CreatedAt: entity.CreatedAt,
		Status:    model.OrderStatus(entity.Status),
		Items:     items,
	}
}
