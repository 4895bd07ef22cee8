package api

import (
	"context"
	"net/http"
	"strconv"

	"marketplace/internal/apperr"
	"marketplace/internal/service"
	"marketplace/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// invalidateProduct drops a product's cached representation after its
// rating aggregates change
func invalidateProduct(rdb *redis.Client, productID uint) {
	_ = utils.DeleteCache(context.Background(), rdb, productCacheKey(productID))
}

// CreateReviewHandler creates a review and refreshes product aggregates
func CreateReviewHandler(svc *service.ReviewService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateReviewInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("product_id, user_id and rating (1-5) are required"), "Invalid request")
			return
		}
		review, err := svc.Create(req)
		if err != nil {
			respondError(c, err, "Failed to create review")
			return
		}
		invalidateProduct(rdb, review.ProductID)
		respondOK(c, http.StatusCreated, "Review created successfully", review)
	}
}

// GetReviewHandler returns one review
func GetReviewHandler(svc *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("review id must be numeric"), "Invalid request")
			return
		}
		review, err := svc.FindByID(uint(id))
		if err != nil {
			respondError(c, err, "Failed to fetch review")
			return
		}
		respondOK(c, http.StatusOK, "Review fetched successfully", review)
	}
}

// ListReviewsHandler returns reviews filtered by product or user
func ListReviewsHandler(svc *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if productID := c.Query("product_id"); productID != "" {
			id, err := strconv.ParseUint(productID, 10, 64)
			if err != nil {
				respondError(c, apperr.Validation("product_id must be numeric"), "Invalid request")
				return
			}
			reviews, err := svc.FindByProductID(uint(id))
			if err != nil {
				respondError(c, err, "Failed to fetch reviews")
				return
			}
			respondOK(c, http.StatusOK, "Reviews fetched successfully", reviews)
			return
		}
		if userID := c.Query("user_id"); userID != "" {
			id, err := strconv.ParseUint(userID, 10, 64)
			if err != nil {
				respondError(c, apperr.Validation("user_id must be numeric"), "Invalid request")
				return
			}
			reviews, err := svc.FindByUserID(uint(id))
			if err != nil {
				respondError(c, err, "Failed to fetch reviews")
				return
			}
			respondOK(c, http.StatusOK, "Reviews fetched successfully", reviews)
			return
		}
		respondError(c, apperr.Validation("product_id or user_id query parameter is required"), "Invalid request")
	}
}

// UpdateReviewHandler mutates a review and refreshes product aggregates
func UpdateReviewHandler(svc *service.ReviewService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("review id must be numeric"), "Invalid request")
			return
		}
		var req service.UpdateReviewInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("invalid review payload"), "Invalid request")
			return
		}
		review, err := svc.Update(uint(id), req)
		if err != nil {
			respondError(c, err, "Failed to update review")
			return
		}
		invalidateProduct(rdb, review.ProductID)
		respondOK(c, http.StatusOK, "Review updated successfully", review)
	}
}

// DeleteReviewHandler removes a review and refreshes product aggregates
func DeleteReviewHandler(svc *service.ReviewService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("review id must be numeric"), "Invalid request")
			return
		}
		review, err := svc.FindByID(uint(id))
		if err != nil {
			respondError(c, err, "Failed to delete review")
			return
		}
		if err := svc.Delete(uint(id)); err != nil {
			respondError(c, err, "Failed to delete review")
			return
		}
		invalidateProduct(rdb, review.ProductID)
		respondOK(c, http.StatusOK, "Review deleted successfully", nil)
	}
}
