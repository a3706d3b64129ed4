package apiv1

import (
	"hrms-backend/controllers"
	dashboardhandler "hrms-backend/lib/dashboard"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Use(middleware.RbacMiddleware())

		router.Get("overview", controller.overview)
		router.Get("stats", controller.stats)
		router.Get("activity", controller.activity)
		router.Get("funnel", controller.funnel)
		router.Get("pool", controller.pool)
		router.Get("departments", controller.departments)
		router.Get("pending_approvals", controller.pendingApprovals)
		router.Get("upcoming_interviews", controller.upcomingInterviews)
	})
}

// @Summary Сводка по найму
// @Tags Дашборд
// @Description Сводные показатели по вакансиям, кандидатам и откликам
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.Overview}
// @Failure 403
// @router /api/v1/space/dashboard/overview [get]
func (c *dashboardApiController) overview(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dashboardhandler.Instance.Overview()))
}

// @Summary Карточки показателей
// @Tags Дашборд
// @Description Карточки показателей для главной страницы
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dashboardapimodels.StatCard}
// @Failure 403
// @router /api/v1/space/dashboard/stats [get]
func (c *dashboardApiController) stats(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dashboardhandler.Instance.Stats()))
}

// @Summary Последняя активность
// @Tags Дашборд
// @Description Последние отклики и кандидаты
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   limit	query	int	false	"кол-во записей"
// @Success 200 {object} apimodels.Response{data=[]dashboardapimodels.Activity}
// @Failure 403
// @router /api/v1/space/dashboard/activity [get]
func (c *dashboardApiController) activity(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit")
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dashboardhandler.Instance.Activity(limit)))
}

// @Summary Воронка найма
// @Tags Дашборд
// @Description Воронка найма и эффективность источников
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.Funnel}
// @Failure 403
// @router /api/v1/space/dashboard/funnel [get]
func (c *dashboardApiController) funnel(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dashboardhandler.Instance.Funnel()))
}

// @Summary Статистика пула кандидатов
// @Tags Дашборд
// @Description Топ навыков и распределение по опыту в пуле
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.PoolStats}
// @Failure 403
// @router /api/v1/space/dashboard/pool [get]
func (c *dashboardApiController) pool(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dashboardhandler.Instance.Pool()))
}

// @Summary Статистика по отделам
// @Tags Дашборд
// @Description Вакансии и отклики в разрезе отделов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.DepartmentStats}
// @Failure 403
// @router /api/v1/space/dashboard/departments [get]
func (c *dashboardApiController) departments(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dashboardhandler.Instance.Departments()))
}

// @Summary Вакансии на согласовании
// @Tags Дашборд
// @Description Вакансии, ожидающие согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dashboardapimodels.PendingJob}
// @Failure 403
// @router /api/v1/space/dashboard/pending_approvals [get]
func (c *dashboardApiController) pendingApprovals(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dashboardhandler.Instance.PendingApprovals()))
}

// @Summary Предстоящие собеседования
// @Tags Дашборд
// @Description Собеседования на ближайшие 7 дней
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dashboardapimodels.UpcomingInterview}
// @Failure 403
// @router /api/v1/space/dashboard/upcoming_interviews [get]
func (c *dashboardApiController) upcomingInterviews(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dashboardhandler.Instance.UpcomingInterviews()))
}
