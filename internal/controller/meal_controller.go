package controller

import (
	"strconv"

	"nutrition-assistant-be/internal/dto"
	"nutrition-assistant-be/internal/pkg/serverutils"
	"nutrition-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMealController interface {
	RegisterRoutes(r fiber.Router)
	LogMeal(ctx *fiber.Ctx) error
	GetMealLogs(ctx *fiber.Ctx) error
	GetAnalysis(ctx *fiber.Ctx) error
	GetNutritionSummary(ctx *fiber.Ctx) error
}

type mealController struct {
	mealService service.IMealService
}

func NewMealController(mealService service.IMealService) IMealController {
	return &mealController{
		mealService: mealService,
	}
}

func (c *mealController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/meal/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.LogMeal)
	h.Get("", c.GetMealLogs)
	h.Get("/summary", c.GetNutritionSummary)
	h.Get("/:id/analysis", c.GetAnalysis)
}

func (c *mealController) LogMeal(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.LogMealRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.mealService.LogMeal(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success log meal", res))
}

func (c *mealController) GetMealLogs(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.mealService.GetMealLogs(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get meal logs", res))
}

func (c *mealController) GetAnalysis(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	mealLogId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid meal log id")
	}

	res, err := c.mealService.GetAnalysis(ctx.Context(), userId, mealLogId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get analysis", res))
}

func (c *mealController) GetNutritionSummary(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	days, _ := strconv.Atoi(ctx.Query("days", "7"))

	res, err := c.mealService.GetNutritionSummary(ctx.Context(), userId, days)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get nutrition summary", res))
}
