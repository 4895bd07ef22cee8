package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/apperr"
	"marketplace/internal/domain"
	"marketplace/internal/service"
	"marketplace/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func productCacheKey(productID uint) string {
	return "product:" + strconv.Itoa(int(productID))
}

// CreateProductHandler creates a product under a store
func CreateProductHandler(svc *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateProductInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("store_id, category_id, name and price are required"), "Invalid request")
			return
		}
		product, err := svc.Create(req)
		if err != nil {
			respondError(c, err, "Failed to create product")
			return
		}
		respondOK(c, http.StatusCreated, "Product created successfully", product)
	}
}

// GetProductHandler returns one product, served from cache when fresh
func GetProductHandler(svc *service.ProductService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("product id must be numeric"), "Invalid request")
			return
		}
		ctx := context.Background()
		var cached domain.Product
		if found, cerr := utils.GetCache(ctx, rdb, productCacheKey(uint(id)), &cached); cerr == nil && found {
			respondOK(c, http.StatusOK, "Product fetched successfully", cached)
			return
		}
		product, err := svc.FindByID(uint(id))
		if err != nil {
			respondError(c, err, "Failed to fetch product")
			return
		}
		_ = utils.SetCache(ctx, rdb, productCacheKey(product.ID), product, 60*time.Second)
		respondOK(c, http.StatusOK, "Product fetched successfully", product)
	}
}

// ListProductsHandler returns products, optionally filtered by store or category
func ListProductsHandler(svc *service.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if storeID := c.Query("store_id"); storeID != "" {
			id, err := strconv.ParseUint(storeID, 10, 64)
			if err != nil {
				respondError(c, apperr.Validation("store_id must be numeric"), "Invalid request")
				return
			}
			products, err := svc.FindByStoreID(uint(id))
			if err != nil {
				respondError(c, err, "Failed to fetch products")
				return
			}
			respondOK(c, http.StatusOK, "Products fetched successfully", products)
			return
		}
		if categoryID := c.Query("category_id"); categoryID != "" {
			id, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				respondError(c, apperr.Validation("category_id must be numeric"), "Invalid request")
				return
			}
			products, err := svc.FindByCategoryID(uint(id))
			if err != nil {
				respondError(c, err, "Failed to fetch products")
				return
			}
			respondOK(c, http.StatusOK, "Products fetched successfully", products)
			return
		}
		products, err := svc.FindAll()
		if err != nil {
			respondError(c, err, "Failed to fetch products")
			return
		}
		respondOK(c, http.StatusOK, "Products fetched successfully", products)
	}
}

// UpdateProductHandler applies a partial update; rating aggregates are
// owned by the review flow and cannot be set here
func UpdateProductHandler(svc *service.ProductService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("product id must be numeric"), "Invalid request")
			return
		}
		var req service.UpdateProductInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("invalid product payload"), "Invalid request")
			return
		}
		product, err := svc.Update(uint(id), req)
		if err != nil {
			respondError(c, err, "Failed to update product")
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, productCacheKey(product.ID))
		respondOK(c, http.StatusOK, "Product updated successfully", product)
	}
}

// DeleteProductHandler removes a product
func DeleteProductHandler(svc *service.ProductService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("product id must be numeric"), "Invalid request")
			return
		}
		if err := svc.Delete(uint(id)); err != nil {
			respondError(c, err, "Failed to delete product")
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, productCacheKey(uint(id)))
		respondOK(c, http.StatusOK, "Product deleted successfully", nil)
	}
}
