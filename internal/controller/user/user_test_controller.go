package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/coursehive/internal/controller"
	"github.com/lshigami/coursehive/internal/dto"
	"github.com/lshigami/coursehive/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService       service.UserTestService
	testSubmissionService service.TestSubmissionService
	attemptService        service.AttemptService
}

func NewUserTestController(uts service.UserTestService, tss service.TestSubmissionService, as service.AttemptService) *UserTestController {
	return &UserTestController{
		userTestService:       uts,
		testSubmissionService: tss,
		attemptService:        as,
	}
}

// RegisterRoutes mounts the test-taker routes on an already authenticated group.
func (c *UserTestController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tests", c.GetAllTests)
	rg.GET("/tests/:testId", c.GetTestDetails)
	rg.POST("/tests/:testId/start", c.StartTest)
	rg.POST("/tests/:testId/submit", c.SubmitTest)
	rg.GET("/attempts/:attemptId", c.GetAttemptDetails)
	rg.GET("/results/:attemptId", c.GetAttemptDetails)
}

// GetAllTests godoc
// @Summary (User) List published tests
// @Description Published tests, newest first, without answer keys.
// @Tags User - Tests & Attempts
// @Produce json
// @Security UserAuth
// @Success 200 {object} dto.SafeTestListEnvelope
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.ListPublishedTests(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SafeTestListEnvelope{Success: true, Tests: tests})
}

// GetTestDetails godoc
// @Summary (User) Get a published test
// @Description The test with its questions, without answer keys.
// @Tags User - Tests & Attempts
// @Produce json
// @Security UserAuth
// @Param testId path string true "Test ID"
// @Success 200 {object} dto.SafeTestEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{testId} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testID, ok := controller.PathID(ctx, "testId", "Test")
	if !ok {
		return
	}
	test, err := c.userTestService.GetTest(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SafeTestEnvelope{Success: true, Test: test})
}

// StartTest godoc
// @Summary (User) Start an attempt
// @Description Creates an in-progress attempt and returns it with its expiry and the safe questions.
// @Tags User - Tests & Attempts
// @Produce json
// @Security UserAuth
// @Param testId path string true "Test ID"
// @Success 200 {object} dto.StartAttemptEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Retake not allowed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{testId}/start [post]
func (c *UserTestController) StartTest(ctx *gin.Context) {
	userID, ok := controller.CallerID(ctx)
	if !ok {
		return
	}
	testID, ok := controller.PathID(ctx, "testId", "Test")
	if !ok {
		return
	}
	started, err := c.testSubmissionService.StartTest(ctx.Request.Context(), userID, testID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StartAttemptEnvelope{Success: true, StartAttemptResponseDTO: *started})
}

// SubmitTest godoc
// @Summary (User) Submit an attempt
// @Description Grades the answers. A submission after the test duration is stored as auto-submitted.
// @Tags User - Tests & Attempts
// @Accept json
// @Produce json
// @Security UserAuth
// @Param testId path string true "Test ID"
// @Param submission body dto.TestAttemptSubmitDTO true "Attempt id and answers"
// @Success 200 {object} dto.SubmitAttemptEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Attempt belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Test or attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already submitted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{testId}/submit [post]
func (c *UserTestController) SubmitTest(ctx *gin.Context) {
	userID, ok := controller.CallerID(ctx)
	if !ok {
		return
	}
	testID, ok := controller.PathID(ctx, "testId", "Test")
	if !ok {
		return
	}
	var req dto.TestAttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("testID", testID).Msg("User SubmitTest: Failed to bind JSON")
		controller.RespondBadRequest(ctx, "Invalid request body")
		return
	}
	if _, err := uuid.Parse(req.AttemptID); err != nil {
		controller.RespondBadRequest(ctx, "Invalid Attempt ID format")
		return
	}

	result, err := c.testSubmissionService.SubmitTest(ctx.Request.Context(), userID, testID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SubmitAttemptEnvelope{Success: true, SubmitAttemptResponseDTO: *result})
}

// GetAttemptDetails godoc
// @Summary (User) Get an own attempt
// @Description Result of one attempt with per-question outcome and percentage. Also served under /results/{attemptId}.
// @Tags User - Tests & Attempts
// @Produce json
// @Security UserAuth
// @Param attemptId path string true "Attempt ID"
// @Success 200 {object} dto.AttemptEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid Attempt ID format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Attempt belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/{attemptId} [get]
func (c *UserTestController) GetAttemptDetails(ctx *gin.Context) {
	userID, ok := controller.CallerID(ctx)
	if !ok {
		return
	}
	attemptID, ok := controller.PathID(ctx, "attemptId", "Attempt")
	if !ok {
		return
	}
	attempt, err := c.attemptService.GetAttemptDetails(ctx.Request.Context(), userID, attemptID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AttemptEnvelope{Success: true, Attempt: attempt})
}
