package apiv1

import (
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"hrms-backend/controllers"
	candidatehandler "hrms-backend/lib/candidate"
	offerhandler "hrms-backend/lib/offer"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	candidateapimodels "hrms-backend/models/api/candidate"

	"github.com/gofiber/fiber/v2"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Use(middleware.RbacMiddleware())

		router.Post("list", controller.list)
		router.Post("search", controller.search)
		router.Post("", controller.create)
		router.Get("export", controller.export)
		router.Get("import-template", controller.importTemplate)
		router.Post("import", controller.importList)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("pool/add", controller.poolAdd)
			idRoute.Put("pool/remove", controller.poolRemove)
			idRoute.Post("upload-resume", controller.uploadResume)
			idRoute.Get("resume", controller.getResume)
			idRoute.Post("issue-offer", controller.issueOffer)
		})
	})
}

// @Summary Список кандидатов
// @Tags Кандидат
// @Description Список кандидатов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	candidateapimodels.CandidateFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/list [post]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := candidatehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка кандидатов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Поиск кандидатов
// @Tags Кандидат
// @Description Поиск кандидатов по навыкам, опыту и городу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	candidateapimodels.CandidateSearchFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/search [post]
func (c *candidateApiController) search(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateSearchFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := candidatehandler.Instance.Search(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка поиска кандидатов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Создание кандидата
// @Tags Кандидат
// @Description Создание кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, hMsg, err := candidatehandler.Instance.Create(payload, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания кандидата")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение кандидата
// @Tags Кандидат
// @Description Получение кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := candidatehandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Обновление кандидата
// @Tags Кандидат
// @Description Обновление кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param	body	body	candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.CandidateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := candidatehandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения кандидата")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление кандидата
// @Tags Кандидат
// @Description Удаление кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = candidatehandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Добавление кандидата в пул
// @Tags Кандидат
// @Description Добавление кандидата в пул
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/pool/add [put]
func (c *candidateApiController) poolAdd(ctx *fiber.Ctx) error {
	return c.setPool(ctx, true, "Ошибка добавления кандидата в пул")
}

// @Summary Исключение кандидата из пула
// @Tags Кандидат
// @Description Исключение кандидата из пула
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/pool/remove [put]
func (c *candidateApiController) poolRemove(ctx *fiber.Ctx) error {
	return c.setPool(ctx, false, "Ошибка исключения кандидата из пула")
}

func (c *candidateApiController) setPool(ctx *fiber.Ctx, inPool bool, errMsg string) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := candidatehandler.Instance.SetPool(id, inPool)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, errMsg)
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Формирование оффера кандидату
// @Tags Кандидат
// @Description Формирование и отправка оффера кандидату из шортлиста
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/issue-offer [post]
func (c *candidateApiController) issueOffer(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	offerID, hMsg, err := offerhandler.Instance.Issue(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования оффера")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(offerID))
}

// @Summary Загрузить резюме кандидата
// @Tags Кандидат
// @Description Загрузить резюме кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param   resume		formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/upload-resume [post]
func (c *candidateApiController) uploadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := ctx.FormFile("resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("ошибка при получении файла резюме")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("ошибка при загрузке файла резюме")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	hMsg, err := candidatehandler.Instance.UploadResume(ctx.UserContext(), id, file.Filename, fileBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки резюме")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Скачать резюме кандидата
// @Tags Кандидат
// @Description Скачать резюме кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/resume [get]
func (c *candidateApiController) getResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, file, err := candidatehandler.Instance.GetResume(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения резюме")
	}
	ctx.Set("Content-Type", "application/octet-stream")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(file)
}

// @Summary Выгрузка кандидатов в Excel
// @Tags Кандидат
// @Description Выгрузка кандидатов в Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/export [get]
func (c *candidateApiController) export(ctx *fiber.Ctx) error {
	data, err := candidatehandler.Instance.Export()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки кандидатов в Excel")
	}
	fileName := fmt.Sprintf("candidates-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Шаблон импорта кандидатов
// @Tags Кандидат
// @Description Шаблон импорта кандидатов в Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/import-template [get]
func (c *candidateApiController) importTemplate(ctx *fiber.Ctx) error {
	data, err := candidatehandler.Instance.ImportTemplate()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения шаблона импорта")
	}
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="candidates-import.xlsx"`)
	return ctx.SendStream(data)
}

// @Summary Импорт кандидатов из Excel
// @Tags Кандидат
// @Description Импорт кандидатов из Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file		formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/import [post]
func (c *candidateApiController) importList(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("ошибка при получении файла импорта")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("ошибка при загрузке файла импорта")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	imported, hMsg, err := candidatehandler.Instance.Import(fileBody, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка импорта кандидатов")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(imported))
}
