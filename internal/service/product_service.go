package service

import (
	"context"
	"errors"

	"github.com/roselab/warehouse/internal/errs"
	"github.com/roselab/warehouse/internal/infra/repository/db"
	dbmodel "github.com/roselab/warehouse/internal/infra/repository/db/model"
	"github.com/roselab/warehouse/internal/model"
	"gorm.io/gorm"
)

type IProductService interface {
	CreateProduct(ctx context.Context, arg *model.ProductModel) (*model.ProductModel, error)
	GetProductByID(ctx context.Context, id uint) (*model.ProductModel, error)
	GetProducts(ctx context.Context, skip, limit int) ([]model.ProductModel, error)
	UpdateProduct(ctx context.Context, id uint, updates *model.ProductUpdates) (*model.ProductModel, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductService struct {
	productRepo db.IProductRepository
}

func NewProductService(productRepo db.IProductRepository) IProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

func (p *ProductService) CreateProduct(ctx context.Context, arg *model.ProductModel) (*model.ProductModel, error) {
	// 檢查名稱是否已存在
	// db有unique constraint擋住併發重複, 這裡先查是為了回友善錯誤訊息
	existing, err := p.productRepo.GetProductByName(ctx, arg.Name)
	if err != nil {
		return nil, errs.Wrap(errs.InternalCode, "failed to check product name", err)
	}
	if existing != nil {
		return nil, errs.New(errs.BusinessRuleCode, "Product already exists.")
	}

	entity := &dbmodel.Product{
		Name:        arg.Name,
		Description: arg.Description,
		Price:       arg.Price,
		Quantity:    arg.Quantity,
	}
	if err := p.productRepo.CreateProduct(ctx, entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.New(errs.BusinessRuleCode, "Product already exists.")
		}
		return nil, errs.Wrap(errs.InternalCode, "failed to create product", err)
	}

	return convertRepoProductToModel(entity), nil
}

func (p *ProductService) GetProductByID(ctx context.Context, id uint) (*model.ProductModel, error) {
	entity, err := p.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Newf(errs.NotFoundCode, "Product with id %d does not exist.", id)
		}
		return nil, errs.Wrap(errs.InternalCode, "failed to get product", err)
	}

	return convertRepoProductToModel(entity), nil
}

func (p *ProductService) GetProducts(ctx context.Context, skip, limit int) ([]model.ProductModel, error) {
	entities, err := p.productRepo.GetProductsPaginated(ctx, skip, limit)
	if err != nil {
		return nil, errs.Wrap(errs.InternalCode, "failed to list products", err)
	}

	products := make([]model.ProductModel, 0, len(entities))
	for i := range entities {
		products = append(products, *convertRepoProductToModel(&entities[i]))
	}
	return products, nil
}

func (p *ProductService) UpdateProduct(ctx context.Context, id uint, updates *model.ProductUpdates) (*model.ProductModel, error) {
	// 確認存在, 不存在直接404
	if _, err := p.GetProductByID(ctx, id); err != nil {
		return nil, err
	}

	// 只更新有帶的欄位
	fields := map[string]any{}
	if updates.Name != nil {
		fields["name"] = *updates.Name
	}
	if updates.Description != nil {
		fields["description"] = *updates.Description
	}
	if updates.Price != nil {
		fields["price"] = *updates.Price
	}
	if updates.Quantity != nil {
		fields["quantity"] = *updates.Quantity
	}

	if len(fields) > 0 {
		if err := p.productRepo.UpdateProductFields(ctx, id, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, errs.New(errs.BusinessRuleCode, "Product already exists.")
			}
			return nil, errs.Wrap(errs.InternalCode, "failed to update product", err)
		}
	}

	return p.GetProductByID(ctx, id)
}

func (p *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	rows, err := p.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return errs.Wrap(errs.InternalCode, "failed to delete product", err)
	}
	if rows == 0 {
		return errs.Newf(errs.NotFoundCode, "Product with id %d does not exist.", id)
	}
	return nil
}

// convertRepoProductToModel 將持久層entity轉換為domain model
func convertRepoProductToModel(entity *dbmodel.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		Price:       entity.Price,
		Quantity:    entity.Quantity,
	}
}
