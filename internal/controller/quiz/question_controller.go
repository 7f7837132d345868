package quiz

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tms/internal/controller"
	"github.com/lshigami/tms/internal/dto"
	"github.com/lshigami/tms/internal/service"
)

type QuestionController struct {
	questionSvc service.QuestionService
}

func NewQuestionController(svc service.QuestionService) *QuestionController {
	return &QuestionController{questionSvc: svc}
}

func (ctrl *QuestionController) RegisterRoutes(router gin.IRouter) {
	questions := router.Group("/question")
	questions.GET("", ctrl.FindAllQuestions) // optional ?categoryId= filter
	questions.GET("/:questionId", ctrl.FindQuestionByID)
	questions.POST("", ctrl.CreateQuestion)
	questions.PUT("/:questionId", ctrl.UpdateQuestion)
	questions.DELETE("/:questionId", ctrl.DeleteQuestion)
}

// FindAllQuestions godoc
// @Summary List questions
// @Tags questions
// @Produce json
// @Param categoryId query int false "Only questions linked to this category"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid categoryId"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /question [get]
func (ctrl *QuestionController) FindAllQuestions(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("categoryId"); raw != "" {
		val, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid categoryId format"})
			return
		}
		id := uint(val)
		categoryID = &id
	}

	questions, err := ctrl.questionSvc.GetAllQuestions(categoryID)
	if err != nil {
		controller.RespondError(c, err, "Failed to retrieve questions")
		return
	}
	c.JSON(http.StatusOK, questions)
}

// FindQuestionByID godoc
// @Summary Get a question with its categories
// @Tags questions
// @Produce json
// @Param questionId path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /question/{questionId} [get]
func (ctrl *QuestionController) FindQuestionByID(c *gin.Context) {
	id, ok := controller.ParseID(c, "questionId")
	if !ok {
		return
	}
	question, err := ctrl.questionSvc.GetQuestion(id)
	if err != nil {
		controller.RespondError(c, err, "Failed to retrieve question")
		return
	}
	c.JSON(http.StatusOK, question)
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionRequest true "Question data"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Category or language not found"
// @Router /question [post]
func (ctrl *QuestionController) CreateQuestion(c *gin.Context) {
	var req dto.QuestionRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	question, err := ctrl.questionSvc.CreateQuestion(req)
	if err != nil {
		controller.RespondError(c, err, "Failed to create question")
		return
	}
	c.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary Replace a question and its category links
// @Tags questions
// @Accept json
// @Produce json
// @Param questionId path int true "Question ID"
// @Param question body dto.QuestionRequest true "Question data"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /question/{questionId} [put]
func (ctrl *QuestionController) UpdateQuestion(c *gin.Context) {
	id, ok := controller.ParseID(c, "questionId")
	if !ok {
		return
	}
	var req dto.QuestionRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	question, err := ctrl.questionSvc.UpdateQuestion(id, req)
	if err != nil {
		controller.RespondError(c, err, "Failed to update question")
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Param questionId path int true "Question ID"
// @Success 200
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /question/{questionId} [delete]
func (ctrl *QuestionController) DeleteQuestion(c *gin.Context) {
	id, ok := controller.ParseID(c, "questionId")
	if !ok {
		return
	}
	if err := ctrl.questionSvc.DeleteQuestion(id); err != nil {
		controller.RespondError(c, err, "Failed to delete question")
		return
	}
	c.Status(http.StatusOK)
}
