package api

import (
	"errors"
	"net/http"

	"github.com/galihpp/storefront-catalog/internal/catalog/repository"
	"github.com/galihpp/storefront-catalog/internal/catalog/service"
	"github.com/galihpp/storefront-catalog/internal/platform/logger"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(cs service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.GET("/", h.ListProducts)
		productRoutes.GET("/:slug", h.GetProduct)
	}
	categoryRoutes := router.Group("/categories")
	{
		categoryRoutes.GET("", h.ListCategories)
		categoryRoutes.GET("/", h.ListCategories)
		categoryRoutes.GET("/:slug", h.GetCategory)
	}
	brandRoutes := router.Group("/brands")
	{
		brandRoutes.GET("", h.ListBrands)
		brandRoutes.GET("/", h.ListBrands)
		brandRoutes.GET("/:slug", h.GetBrand)
	}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter, err := parseProductFilter(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		logger.Error("ListProducts: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	slug := c.Param("slug")
	product, err := h.catalogService.GetProductDetail(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("GetProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error("ListCategories: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	slug := c.Param("slug")
	category, err := h.catalogService.GetCategoryDetail(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("GetCategory: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.catalogService.ListBrands(c.Request.Context())
	if err != nil {
		logger.Error("ListBrands: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve brands"})
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *CatalogHandler) GetBrand(c *gin.Context) {
	slug := c.Param("slug")
	brand, err := h.catalogService.GetBrandDetail(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("GetBrand: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve brand"})
		return
	}
	c.JSON(http.StatusOK, brand)
}
