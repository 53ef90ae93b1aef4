package handlers

import (
	"net/http"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/adyen/ecommerce-e2e/internal/models"
	"github.com/adyen/ecommerce-e2e/internal/storeapi"
)

// ProductsResponse lists products. The products key is always present.
type ProductsResponse struct {
	ResponseCode int                `json:"responseCode"`
	Products     []storeapi.Product `json:"products"`
}

// BrandsResponse lists brands
type BrandsResponse struct {
	ResponseCode int              `json:"responseCode"`
	Brands       []storeapi.Brand `json:"brands"`
}

func toWireProducts(products []models.Product) []storeapi.Product {
	return lo.Map(products, func(p models.Product, _ int) storeapi.Product {
		return storeapi.Product{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Brand: p.Brand,
			Category: storeapi.Category{
				UserType: storeapi.UserType{UserType: p.UserType},
				Category: p.Category,
			},
		}
	})
}

// ProductsListHandler handles /api/productsList
type ProductsListHandler struct {
	catalog *models.Catalog
	logger  *zap.Logger
}

// NewProductsListHandler creates a new ProductsListHandler
func NewProductsListHandler(catalog *models.Catalog, logger *zap.Logger) *ProductsListHandler {
	return &ProductsListHandler{catalog: catalog, logger: named(logger, "products_list")}
}

// ServeHTTP answers GET with every product; other methods get a 405 body
func (h *ProductsListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendMethodNotSupported(w, h.logger)
		return
	}

	writeJSON(w, h.logger, ProductsResponse{
		ResponseCode: storeapi.CodeOK,
		Products:     toWireProducts(h.catalog.All()),
	})
}

// BrandsListHandler handles /api/brandsList
type BrandsListHandler struct {
	catalog *models.Catalog
	logger  *zap.Logger
}

// NewBrandsListHandler creates a new BrandsListHandler
func NewBrandsListHandler(catalog *models.Catalog, logger *zap.Logger) *BrandsListHandler {
	return &BrandsListHandler{catalog: catalog, logger: named(logger, "brands_list")}
}

// ServeHTTP answers GET with one brand entry per product
func (h *BrandsListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendMethodNotSupported(w, h.logger)
		return
	}

	brands := lo.Map(h.catalog.All(), func(p models.Product, _ int) storeapi.Brand {
		return storeapi.Brand{ID: p.ID, Brand: p.Brand}
	})
	writeJSON(w, h.logger, BrandsResponse{ResponseCode: storeapi.CodeOK, Brands: brands})
}

// SearchProductHandler handles /api/searchProduct
type SearchProductHandler struct {
	catalog *models.Catalog
	logger  *zap.Logger
}

// NewSearchProductHandler creates a new SearchProductHandler
func NewSearchProductHandler(catalog *models.Catalog, logger *zap.Logger) *SearchProductHandler {
	return &SearchProductHandler{catalog: catalog, logger: named(logger, "search_product")}
}

// ServeHTTP answers POST search_product=<term> with the matching products
func (h *SearchProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendMethodNotSupported(w, h.logger)
		return
	}

	form, err := formValues(r)
	if err != nil {
		h.logger.Warn("unreadable form", zap.Error(err))
		sendMessage(w, h.logger, storeapi.CodeBadRequest, storeapi.MsgSearchParamMissing)
		return
	}
	term, ok := form["search_product"]
	if !ok {
		sendMessage(w, h.logger, storeapi.CodeBadRequest, storeapi.MsgSearchParamMissing)
		return
	}

	results := h.catalog.Search(term)
	h.logger.Debug("search", zap.String("term", term), zap.Int("results", len(results)))

	writeJSON(w, h.logger, ProductsResponse{
		ResponseCode: storeapi.CodeOK,
		Products:     toWireProducts(results),
	})
}
