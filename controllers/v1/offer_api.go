package apiv1

import (
	"hrms-backend/controllers"
	offerhandler "hrms-backend/lib/offer"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	offerapimodels "hrms-backend/models/api/offer"

	"github.com/gofiber/fiber/v2"
)

type offerApiController struct {
	controllers.BaseAPIController
}

func InitOfferApiRouters(app *fiber.App) {
	controller := offerApiController{}
	app.Route("offer", func(router fiber.Router) {
		router.Use(middleware.RbacMiddleware())

		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("download", controller.download)
			idRoute.Put("accept", controller.accept)
			idRoute.Put("reject", controller.reject)
		})
	})
}

// @Summary Список офферов
// @Tags Оффер
// @Description Список офферов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	offerapimodels.OfferFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/offer/list [post]
func (c *offerApiController) list(ctx *fiber.Ctx) error {
	var payload offerapimodels.OfferFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := offerhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка офферов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получение оффера
// @Tags Оффер
// @Description Получение оффера
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/offer/{id} [get]
func (c *offerApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := offerhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения оффера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Скачать pdf оффера
// @Tags Оффер
// @Description Скачать pdf оффера
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/offer/{id}/download [get]
func (c *offerApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, file, err := offerhandler.Instance.Download(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка скачивания оффера")
	}
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(file)
}

// @Summary Принятие оффера
// @Tags Оффер
// @Description Принятие оффера кандидатом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/offer/{id}/accept [put]
func (c *offerApiController) accept(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := offerhandler.Instance.Accept(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка принятия оффера")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отклонение оффера
// @Tags Оффер
// @Description Отклонение оффера кандидатом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/offer/{id}/reject [put]
func (c *offerApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := offerhandler.Instance.Reject(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения оффера")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
