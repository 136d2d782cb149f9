package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobstats/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
// authMW may be nil, then data routes are public.
func Register(app *fiber.App, health *handlers.HealthHandler, jobs *handlers.JobsHandler, clouds *handlers.WordCloudHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	protected := []fiber.Handler{}
	if authMW != nil {
		protected = append(protected, authMW)
	}

	jg := v1.Group("/jobs", protected...)
	jg.Get("/", jobs.List)
	jg.Get("/req/:req", jobs.ByCareer)
	jg.Get("/skill/:skill", jobs.BySkill)
	jg.Get("/date/:date", jobs.OpenSince)

	wg := v1.Group("/wordcloud", protected...)
	wg.Get("/stack", clouds.StackImage)
	wg.Get("/stack/frequencies", clouds.StackFrequencies)
	wg.Get("/required", clouds.RequirementImage)
	wg.Get("/required/frequencies", clouds.RequirementFrequencies)
}
