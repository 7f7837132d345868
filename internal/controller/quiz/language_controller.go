package quiz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tms/internal/controller"
	"github.com/lshigami/tms/internal/dto"
	"github.com/lshigami/tms/internal/service"
)

type LanguageController struct {
	languageSvc service.LanguageService
}

func NewLanguageController(svc service.LanguageService) *LanguageController {
	return &LanguageController{languageSvc: svc}
}

func (ctrl *LanguageController) RegisterRoutes(router gin.IRouter) {
	languages := router.Group("/language")
	languages.GET("", ctrl.FindAllLanguages)
	languages.GET("/:languageId", ctrl.FindLanguageByID)
	languages.POST("", ctrl.CreateLanguage)
	languages.PUT("/:languageId", ctrl.UpdateLanguage)
	languages.DELETE("/:languageId", ctrl.DeleteLanguage)
}

// FindAllLanguages godoc
// @Summary List languages
// @Tags languages
// @Produce json
// @Success 200 {array} dto.LanguageResponse
// @Router /language [get]
func (ctrl *LanguageController) FindAllLanguages(c *gin.Context) {
	languages, err := ctrl.languageSvc.GetAllLanguages()
	if err != nil {
		controller.RespondError(c, err, "Failed to retrieve languages")
		return
	}
	c.JSON(http.StatusOK, languages)
}

// FindLanguageByID godoc
// @Summary Get a language
// @Tags languages
// @Produce json
// @Param languageId path int true "Language ID"
// @Success 200 {object} dto.LanguageResponse
// @Failure 404 {object} dto.ErrorResponse "Language not found"
// @Router /language/{languageId} [get]
func (ctrl *LanguageController) FindLanguageByID(c *gin.Context) {
	id, ok := controller.ParseID(c, "languageId")
	if !ok {
		return
	}
	language, err := ctrl.languageSvc.GetLanguage(id)
	if err != nil {
		controller.RespondError(c, err, "Failed to retrieve language")
		return
	}
	c.JSON(http.StatusOK, language)
}

// CreateLanguage godoc
// @Summary Create a language
// @Tags languages
// @Accept json
// @Produce json
// @Param language body dto.LanguageRequest true "Language data"
// @Success 200 {object} dto.LanguageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /language [post]
func (ctrl *LanguageController) CreateLanguage(c *gin.Context) {
	var req dto.LanguageRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	language, err := ctrl.languageSvc.CreateLanguage(req)
	if err != nil {
		controller.RespondError(c, err, "Failed to create language")
		return
	}
	c.JSON(http.StatusOK, language)
}

// UpdateLanguage godoc
// @Summary Rename a language
// @Tags languages
// @Accept json
// @Produce json
// @Param languageId path int true "Language ID"
// @Param language body dto.LanguageRequest true "Language data"
// @Success 200 {object} dto.LanguageResponse
// @Failure 404 {object} dto.ErrorResponse "Language not found"
// @Router /language/{languageId} [put]
func (ctrl *LanguageController) UpdateLanguage(c *gin.Context) {
	id, ok := controller.ParseID(c, "languageId")
	if !ok {
		return
	}
	var req dto.LanguageRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	language, err := ctrl.languageSvc.UpdateLanguage(id, req)
	if err != nil {
		controller.RespondError(c, err, "Failed to update language")
		return
	}
	c.JSON(http.StatusOK, language)
}

// DeleteLanguage godoc
// @Summary Delete a language
// @Tags languages
// @Param languageId path int true "Language ID"
// @Success 200
// @Failure 404 {object} dto.ErrorResponse "Language not found"
// @Router /language/{languageId} [delete]
func (ctrl *LanguageController) DeleteLanguage(c *gin.Context) {
	id, ok := controller.ParseID(c, "languageId")
	if !ok {
		return
	}
	if err := ctrl.languageSvc.DeleteLanguage(id); err != nil {
		controller.RespondError(c, err, "Failed to delete language")
		return
	}
	c.Status(http.StatusOK)
}
