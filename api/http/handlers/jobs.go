package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobstats/api/http/presenter"
	"github.com/artem13815/jobstats/pkg/job"
	"github.com/artem13815/jobstats/pkg/logger"
)

type JobsHandler struct {
	uc  job.UseCase
	log *logger.Logger
}

func NewJobsHandler(uc job.UseCase, log *logger.Logger) *JobsHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &JobsHandler{uc: uc, log: log}
}

type jobsMessage struct {
	Message []job.Job `json:"message"`
}

type jobsCountMessage struct {
	Count   int       `json:"count"`
	Message []job.Job `json:"message"`
}

// @Summary Список вакансий
// @Description Возвращает страницу строк job_data (по умолчанию 10).
// @Tags    Вакансии
// @Produce json
// @Param   limit  query int false "Размер страницы (1..200)"
// @Param   offset query int false "Смещение"
// @Security BearerAuth
// @Success 200 {array}  job.Job
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /jobs [get]
func (h *JobsHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	jobs, err := h.uc.Sample(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}

// @Summary Вакансии по минимальному стажу
// @Tags    Вакансии
// @Produce json
// @Param   req path int true "Минимальный стаж, лет"
// @Security BearerAuth
// @Success 200 {object} jobsMessage
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs/req/{req} [get]
func (h *JobsHandler) ByCareer(c *fiber.Ctx) error {
	req, err := strconv.Atoi(c.Params("req"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "req must be an integer")
	}
	jobs, err := h.uc.ByCareer(c.Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, jobsMessage{Message: jobs})
}

// @Summary Вакансии по навыку
// @Description Подстрока ищется в tech_stack.
// @Tags    Вакансии
// @Produce json
// @Param   skill path string true "Навык, например Java"
// @Security BearerAuth
// @Success 200 {object} jobsCountMessage
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs/skill/{skill} [get]
func (h *JobsHandler) BySkill(c *fiber.Ctx) error {
	skill, err := url.PathUnescape(c.Params("skill"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "malformed skill")
	}
	jobs, err := h.uc.BySkill(c.Context(), skill)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, jobsCountMessage{Count: len(jobs), Message: jobs})
}

// @Summary Открытые вакансии на дату
// @Description Вакансии, у которых date_until не раньше указанной даты.
// @Tags    Вакансии
// @Produce json
// @Param   date path string true "Дата в формате yyyymmdd"
// @Security BearerAuth
// @Success 200 {object} jobsMessage
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs/date/{date} [get]
func (h *JobsHandler) OpenSince(c *fiber.Ctx) error {
	jobs, err := h.uc.OpenSince(c.Context(), c.Params("date"))
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, jobsMessage{Message: jobs})
}

func (h *JobsHandler) fail(c *fiber.Ctx, err error) error {
	var verr job.ErrValidation
	switch {
	case errors.Is(err, job.ErrInvalidDate):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &verr):
		return presenter.Error(c, http.StatusBadRequest, verr.Error())
	}
	h.log.Error("%s %s: %v", c.Method(), c.Path(), err)
	return presenter.Error(c, http.StatusInternalServerError, "failed to load jobs")
}
