package quiz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tms/internal/controller"
	"github.com/lshigami/tms/internal/dto"
	"github.com/lshigami/tms/internal/service"
)

type CategoryController struct {
	categorySvc service.CategoryService
}

func NewCategoryController(svc service.CategoryService) *CategoryController {
	return &CategoryController{categorySvc: svc}
}

func (ctrl *CategoryController) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/category")
	categories.GET("", ctrl.FindAllCategories)
	categories.GET("/:categoryId", ctrl.FindCategoryByID)
	categories.POST("", ctrl.CreateCategory)
	categories.PUT("/:categoryId", ctrl.UpdateCategory)
	categories.DELETE("/:categoryId", ctrl.DeleteCategory)
}

// FindAllCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /category [get]
func (ctrl *CategoryController) FindAllCategories(c *gin.Context) {
	categories, err := ctrl.categorySvc.GetAllCategories()
	if err != nil {
		controller.RespondError(c, err, "Failed to retrieve categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// FindCategoryByID godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /category/{categoryId} [get]
func (ctrl *CategoryController) FindCategoryByID(c *gin.Context) {
	id, ok := controller.ParseID(c, "categoryId")
	if !ok {
		return
	}
	category, err := ctrl.categorySvc.GetCategory(id)
	if err != nil {
		controller.RespondError(c, err, "Failed to retrieve category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CategoryRequest true "Category data"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse
// @Router /category [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	category, err := ctrl.categorySvc.CreateCategory(req)
	if err != nil {
		controller.RespondError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// UpdateCategory godoc
// @Summary Update a category's name and description
// @Tags categories
// @Accept json
// @Produce json
// @Param categoryId path int true "Category ID"
// @Param category body dto.CategoryRequest true "Category data"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /category/{categoryId} [put]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := controller.ParseID(c, "categoryId")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	category, err := ctrl.categorySvc.UpdateCategory(id, req)
	if err != nil {
		controller.RespondError(c, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Detaches the category from its questions, then deletes it.
// @Tags categories
// @Param categoryId path int true "Category ID"
// @Success 200
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /category/{categoryId} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := controller.ParseID(c, "categoryId")
	if !ok {
		return
	}
	if err := ctrl.categorySvc.DeleteCategory(id); err != nil {
		controller.RespondError(c, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusOK)
}
