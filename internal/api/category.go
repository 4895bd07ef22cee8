package api

import (
	"net/http"
	"strconv"

	"marketplace/internal/apperr"
	"marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateCategoryHandler creates a category
func CreateCategoryHandler(svc *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateCategoryInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("name is required"), "Invalid request")
			return
		}
		category, err := svc.Create(req)
		if err != nil {
			respondError(c, err, "Failed to create category")
			return
		}
		respondOK(c, http.StatusCreated, "Category created successfully", category)
	}
}

// GetCategoryHandler returns one category
func GetCategoryHandler(svc *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("category id must be numeric"), "Invalid request")
			return
		}
		category, err := svc.FindByID(uint(id))
		if err != nil {
			respondError(c, err, "Failed to fetch category")
			return
		}
		respondOK(c, http.StatusOK, "Category fetched successfully", category)
	}
}

// ListCategoriesHandler returns all categories
func ListCategoriesHandler(svc *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.FindAll()
		if err != nil {
			respondError(c, err, "Failed to fetch categories")
			return
		}
		respondOK(c, http.StatusOK, "Categories fetched successfully", categories)
	}
}

// UpdateCategoryHandler applies a partial category update
func UpdateCategoryHandler(svc *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("category id must be numeric"), "Invalid request")
			return
		}
		var req service.UpdateCategoryInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation("invalid category payload"), "Invalid request")
			return
		}
		category, err := svc.Update(uint(id), req)
		if err != nil {
			respondError(c, err, "Failed to update category")
			return
		}
		respondOK(c, http.StatusOK, "Category updated successfully", category)
	}
}

// DeleteCategoryHandler removes a category
func DeleteCategoryHandler(svc *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, apperr.Validation("category id must be numeric"), "Invalid request")
			return
		}
		if err := svc.Delete(uint(id)); err != nil {
			respondError(c, err, "Failed to delete category")
			return
		}
		respondOK(c, http.StatusOK, "Category deleted successfully", nil)
	}
}
