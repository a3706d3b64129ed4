package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hrms-backend/controllers"
	usershandler "hrms-backend/lib/users"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	authapimodels "hrms-backend/models/api/auth"
)

type authController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authController{}
	app.Route("auth", func(authRoute fiber.Router) {
		authRoute.Post("login", controller.Login)
		authRoute.Post("register", controller.Register)
		authRoute.Post("refresh", middleware.AuthorizationRequired(), controller.Refresh)
	})
}

// @Summary Вход по почте и паролю
// @Tags Авторизация
// @Description Вход по почте и паролю
// @Param	body	body	authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authController) Login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, hMsg, err := usershandler.Instance.Login(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка входа")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Регистрация пользователя
// @Tags Авторизация
// @Description Регистрация пользователя
// @Param	body	body	authapimodels.RegisterRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=authapimodels.TokenResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register [post]
func (c *authController) Register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, hMsg, err := usershandler.Instance.Register(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление пары токенов
// @Tags Авторизация
// @Description Обновление пары токенов по refresh токену
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh [post]
func (c *authController) Refresh(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось определить пользователя"))
	}
	resp, hMsg, err := usershandler.Instance.Refresh(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления токена")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
