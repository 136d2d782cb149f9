package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobstats/api/http/presenter"
	"github.com/artem13815/jobstats/pkg/cloud"
	"github.com/artem13815/jobstats/pkg/logger"
	"github.com/artem13815/jobstats/pkg/wordfreq"
)

// WordCloudHandler отдаёт облака слов и посчитанные частоты.
type WordCloudHandler struct {
	uc  cloud.UseCase
	log *logger.Logger
}

func NewWordCloudHandler(uc cloud.UseCase, log *logger.Logger) *WordCloudHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &WordCloudHandler{uc: uc, log: log}
}

type frequenciesResponse struct {
	Count       int                   `json:"count"`
	Records     int                   `json:"records"`
	Frequencies wordfreq.FrequencyMap `json:"frequencies"`
}

// @Summary Облако технологий
// @Description PNG по tech_stack вакансий, в названии которых есть subject (до 200 строк).
// @Tags    Облако слов
// @Produce png
// @Param   subject query string false "Подстрока названия вакансии"
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /wordcloud/stack [get]
func (h *WordCloudHandler) StackImage(c *fiber.Ctx) error {
	return h.image(c, cloud.KindStack, c.Query("subject"))
}

// @Summary Частоты технологий
// @Tags    Облако слов
// @Produce json
// @Param   subject query string false "Подстрока названия вакансии"
// @Security BearerAuth
// @Success 200 {object} frequenciesResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /wordcloud/stack/frequencies [get]
func (h *WordCloudHandler) StackFrequencies(c *fiber.Ctx) error {
	return h.frequencies(c, cloud.KindStack, c.Query("subject"))
}

// @Summary Облако требований
// @Description PNG по очищенному тексту required у вакансий с навыком skill (до 30 строк).
// @Tags    Облако слов
// @Produce png
// @Param   skill query string false "Навык в tech_stack"
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /wordcloud/required [get]
func (h *WordCloudHandler) RequirementImage(c *fiber.Ctx) error {
	return h.image(c, cloud.KindRequirement, c.Query("skill"))
}

// @Summary Частоты слов требований
// @Tags    Облако слов
// @Produce json
// @Param   skill query string false "Навык в tech_stack"
// @Security BearerAuth
// @Success 200 {object} frequenciesResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /wordcloud/required/frequencies [get]
func (h *WordCloudHandler) RequirementFrequencies(c *fiber.Ctx) error {
	return h.frequencies(c, cloud.KindRequirement, c.Query("skill"))
}

func (h *WordCloudHandler) image(c *fiber.Ctx, kind cloud.Kind, filter string) error {
	img, err := h.uc.Image(c.Context(), kind, filter)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.PNG(c, img)
}

func (h *WordCloudHandler) frequencies(c *fiber.Ctx, kind cloud.Kind, filter string) error {
	res, err := h.uc.Frequencies(c.Context(), kind, filter)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, frequenciesResponse{
		Count:       res.Tokens,
		Records:     res.Records,
		Frequencies: res.Frequencies,
	})
}

func (h *WordCloudHandler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, cloud.ErrNoData) {
		return presenter.Error(c, http.StatusNotFound, err.Error())
	}
	h.log.Error("%s %s: %v", c.Method(), c.Path(), err)
	return presenter.Error(c, http.StatusInternalServerError, "failed to build word cloud")
}
