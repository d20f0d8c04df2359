package handler

import (
	"encoding/json"
	"net/http"

	"github.com/roselab/warehouse/internal/api/dto"
	"github.com/roselab/warehouse/internal/errs"
	"github.com/roselab/warehouse/internal/model"
	"github.com/roselab/warehouse/internal/service"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
	}
}

// @Summary create product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductDTO true "product to create"
// @Success 201 {object} dto.ProductDTO "created"
// @Failure 400 {object} handler.ErrorResponse "duplicate name"
// @Failure 422 {object} handler.ErrorResponse "validation failed"
// @Router /products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		writeBadBody(w)
		return
	}
	if fieldErrs := createDTO.Validate(); len(fieldErrs) > 0 {
		writeValidationError(w, fieldErrs)
		return
	}

	ctx := r.Context()

	product, err := h.productService.CreateProduct(ctx, createDTO.ToModel())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, convertProductModelToDTO(product))
}

// @Summary list products
// @Tags products
// @Produce json
// @Param skip query int false "offset"
// @Param limit query int false "page size"
// @Success 200 {array} dto.ProductDTO "products"
// @Router /products [get]
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	products, err := h.productService.GetProducts(r.Context(), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	result := make([]dto.ProductDTO, 0, len(products))
	for i := range products {
		result = append(result, *convertProductModelToDTO(&products[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

// @Summary get product by id
// @Tags products
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} dto.ProductDTO "product"
// @Failure 404 {object} handler.ErrorResponse "not found"
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, errs.New(errs.NotFoundCode, "Product does not exist."))
		return
	}

	product, err := h.productService.GetProductByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, convertProductModelToDTO(product))
}

// @Summary partially update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "product id"
// @Param updates body dto.UpdateProductDTO true "fields to update"
// @Success 200 {object} dto.ProductDTO "updated"
// @Failure 404 {object} handler.ErrorResponse "not found"
// @Failure 422 {object} handler.ErrorResponse "validation failed"
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, errs.New(errs.NotFoundCode, "Product does not exist."))
		return
	}

	var updateDTO dto.UpdateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		writeBadBody(w)
		return
	}
	if fieldErrs := updateDTO.Validate(); len(fieldErrs) > 0 {
		writeValidationError(w, fieldErrs)
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), id, updateDTO.ToUpdates())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, convertProductModelToDTO(product))
}

// @Summary delete product
// @Tags products
// @Param id path int true "product id"
// @Success 204 "deleted"
// @Failure 404 {object} handler.ErrorResponse "not found"
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, errs.New(errs.NotFoundCode, "Product does not exist."))
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// convertProductModelToDTO 將 ProductModel 轉換為 ProductDTO
func convertProductModelToDTO(m *model.ProductModel) *dto.ProductDTO {
	price, _ := m.Price.Float64()
	return &dto.ProductDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       price,
		Quantity:    m.Quantity,
	}
}
