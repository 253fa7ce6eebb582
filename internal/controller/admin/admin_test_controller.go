package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/coursehive/internal/controller"
	"github.com/lshigami/coursehive/internal/dto"
	"github.com/lshigami/coursehive/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
	attemptService   service.AttemptService
}

func NewAdminTestController(adminTestService service.AdminTestService, attemptService service.AttemptService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService, attemptService: attemptService}
}

// RegisterRoutes mounts the admin routes on an already authenticated group.
func (c *AdminTestController) RegisterRoutes(rg *gin.RouterGroup) {
	tests := rg.Group("/tests")
	tests.POST("", c.CreateTest)
	tests.GET("", c.ListTests)
	tests.PUT("/:testId", c.UpdateTest)
	tests.DELETE("/:testId", c.DeleteTest)
	tests.GET("/:testId/attempts", c.ListAttempts)
}

// CreateTest godoc
// @Summary (Admin) Create a test
// @Description Creates a published test owned by the caller. totalMarks is computed from the questions.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param test_data body dto.TestCreateDTO true "Test with its questions"
// @Success 201 {object} dto.TestEnvelope "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	adminID, ok := controller.CallerID(ctx)
	if !ok {
		return
	}
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTest: Failed to bind JSON")
		controller.RespondBadRequest(ctx, "Invalid request body")
		return
	}

	testResp, err := c.adminTestService.CreateTest(ctx.Request.Context(), adminID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.TestEnvelope{Success: true, Test: testResp})
}

// ListTests godoc
// @Summary (Admin) List own tests
// @Description Lists every test created by the caller, newest first, answer keys included.
// @Tags Admin - Tests
// @Produce json
// @Security AdminAuth
// @Success 200 {object} dto.TestListEnvelope
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [get]
func (c *AdminTestController) ListTests(ctx *gin.Context) {
	adminID, ok := controller.CallerID(ctx)
	if !ok {
		return
	}
	tests, err := c.adminTestService.ListOwnedTests(ctx.Request.Context(), adminID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TestListEnvelope{Success: true, Tests: tests})
}

// UpdateTest godoc
// @Summary (Admin) Update a test
// @Description Partial update. Absent fields are left unchanged; replacing questions recomputes totalMarks.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security AdminAuth
// @Param testId path string true "Test ID"
// @Param test_data body dto.TestUpdateDTO true "Fields to change"
// @Success 200 {object} dto.TestEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Test not found or not owned"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests/{testId} [put]
func (c *AdminTestController) UpdateTest(ctx *gin.Context) {
	adminID, ok := controller.CallerID(ctx)
	if !ok {
		return
	}
	testID, ok := controller.PathID(ctx, "testId", "Test")
	if !ok {
		return
	}
	var req dto.TestUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("testID", testID).Msg("Admin UpdateTest: Failed to bind JSON")
		controller.RespondBadRequest(ctx, "Invalid request body")
		return
	}

	testResp, err := c.adminTestService.UpdateTest(ctx.Request.Context(), adminID, testID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TestEnvelope{Success: true, Test: testResp})
}

// DeleteTest godoc
// @Summary (Admin) Delete a test
// @Description Deletes the test together with every attempt made against it.
// @Tags Admin - Tests
// @Produce json
// @Security AdminAuth
// @Param testId path string true "Test ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Test not found or not owned"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests/{testId} [delete]
func (c *AdminTestController) DeleteTest(ctx *gin.Context) {
	adminID, ok := controller.CallerID(ctx)
	if !ok {
		return
	}
	testID, ok := controller.PathID(ctx, "testId", "Test")
	if !ok {
		return
	}
	if err := c.adminTestService.DeleteTest(ctx.Request.Context(), adminID, testID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Test deleted successfully"})
}

// ListAttempts godoc
// @Summary (Admin) Leaderboard of a test
// @Description Every attempt of the test, highest score first. Ties keep their creation order.
// @Tags Admin - Tests
// @Produce json
// @Security AdminAuth
// @Param testId path string true "Test ID"
// @Success 200 {object} dto.LeaderboardEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests/{testId}/attempts [get]
func (c *AdminTestController) ListAttempts(ctx *gin.Context) {
	if _, ok := controller.CallerID(ctx); !ok {
		return
	}
	testID, ok := controller.PathID(ctx, "testId", "Test")
	if !ok {
		return
	}
	attempts, err := c.attemptService.GetTestLeaderboard(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.LeaderboardEnvelope{Success: true, Attempts: attempts})
}
