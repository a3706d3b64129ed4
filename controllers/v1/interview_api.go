package apiv1

import (
	"hrms-backend/controllers"
	interviewhandler "hrms-backend/lib/interview"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	interviewapimodels "hrms-backend/models/api/interview"

	"github.com/gofiber/fiber/v2"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interview", func(router fiber.Router) {
		router.Use(middleware.RbacMiddleware())

		router.Post("list", controller.list)
		router.Post("", controller.schedule)
		router.Route("question", func(questionRoute fiber.Router) {
			questionRoute.Post("list", controller.questionList)
			questionRoute.Post("", controller.questionCreate)
			questionRoute.Delete(":id", controller.questionDelete)
		})
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("round/start", controller.roundStart)
			idRoute.Post("round/submit", controller.roundSubmit)
		})
	})
}

// @Summary Список собеседований
// @Tags Собеседование
// @Description Список собеседований
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	interviewapimodels.InterviewFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/interview/list [post]
func (c *interviewApiController) list(ctx *fiber.Ctx) error {
	var payload interviewapimodels.InterviewFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := interviewhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка собеседований")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Назначение собеседования
// @Tags Собеседование
// @Description Назначение собеседования по отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	interviewapimodels.InterviewData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/interview [post]
func (c *interviewApiController) schedule(ctx *fiber.Ctx) error {
	var payload interviewapimodels.InterviewData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := interviewhandler.Instance.Schedule(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения собеседования")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение собеседования
// @Tags Собеседование
// @Description Получение собеседования с раундами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/interview/{id} [get]
func (c *interviewApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := interviewhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения собеседования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Старт раунда собеседования
// @Tags Собеседование
// @Description Старт раунда собеседования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param	body	body	interviewapimodels.RoundStartRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.RoundView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/interview/{id}/round/start [post]
func (c *interviewApiController) roundStart(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload interviewapimodels.RoundStartRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	item, hMsg, err := interviewhandler.Instance.StartRound(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка старта раунда собеседования")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Завершение раунда собеседования
// @Tags Собеседование
// @Description Сохранение оценок раунда и подведение итога собеседования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param	body	body	interviewapimodels.RoundSubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.RoundSubmitResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/interview/{id}/round/submit [post]
func (c *interviewApiController) roundSubmit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload interviewapimodels.RoundSubmitRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, hMsg, err := interviewhandler.Instance.SubmitRound(ctx.UserContext(), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка завершения раунда собеседования")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Список вопросов
// @Tags Собеседование
// @Description Список вопросов для собеседования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	interviewapimodels.QuestionFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.QuestionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/interview/question/list [post]
func (c *interviewApiController) questionList(ctx *fiber.Ctx) error {
	var payload interviewapimodels.QuestionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := interviewhandler.Instance.ListQuestions(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вопросов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание вопроса
// @Tags Собеседование
// @Description Создание вопроса для собеседования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	interviewapimodels.QuestionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/interview/question [post]
func (c *interviewApiController) questionCreate(ctx *fiber.Ctx) error {
	var payload interviewapimodels.QuestionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := interviewhandler.Instance.CreateQuestion(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вопроса")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Удаление вопроса
// @Tags Собеседование
// @Description Удаление вопроса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/interview/question/{id} [delete]
func (c *interviewApiController) questionDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = interviewhandler.Instance.DeleteQuestion(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления вопроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
