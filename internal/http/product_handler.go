package http

import (
	"log/slog"
	"net/http"

	"github.com/pantrystack/pantry-tracker/internal/model"
	"github.com/pantrystack/pantry-tracker/internal/service"
	"github.com/pantrystack/pantry-tracker/pkg/validator"
)

type createProductRequest struct {
	Name      string           `json:"name" validate:"required"`
	UPC       string           `json:"upc" validate:"required,upc"`
	Nutrition *model.Nutrition `json:"nutrition"`
}

type updateProductRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1"`
	UPC       *string          `json:"upc" validate:"omitempty,upc"`
	Nutrition *model.Nutrition `json:"nutrition"`
}

type productHandler struct {
	logger     *slog.Logger
	validate   validator.Validator
	productSvc service.ProductService
}

func newProductHandler(logger *slog.Logger, validate validator.Validator, productSvc service.ProductService) *productHandler {
	return &productHandler{
		logger:     logger,
		validate:   validate,
		productSvc: productSvc,
	}
}

func (h *productHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.ListProducts(r.Context())
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, r, http.StatusOK, products)
}

func (h *productHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	if err := h.validate.Validate(req); err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	product, err := h.productSvc.CreateProduct(r.Context(), service.CreateProductParams{
		Name:      req.Name,
		UPC:       req.UPC,
		Nutrition: req.Nutrition,
	})
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, r, http.StatusCreated, product)
}

func (h *productHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	product, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, r, http.StatusOK, product)
}

func (h *productHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	var req updateProductRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	if err := h.validate.Validate(req); err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), id, service.UpdateProductParams{
		Name:      req.Name,
		UPC:       req.UPC,
		Nutrition: req.Nutrition,
	})
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, r, http.StatusOK, product)
}

func (h *productHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	product, err := h.productSvc.DeleteProduct(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, r, http.StatusOK, product)
}
