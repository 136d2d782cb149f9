package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/jobstats/pkg/cloud"
	"github.com/artem13815/jobstats/pkg/health"
	"github.com/artem13815/jobstats/pkg/job"
	"github.com/artem13815/jobstats/pkg/wordfreq"
)

type fakeJobs struct {
	jobs      []job.Job
	err       error
	gotLimit  int
	gotOffset int
	gotCareer int
	gotSkill  string
	gotDate   string
}

func (f *fakeJobs) Sample(_ context.Context, limit, offset int) ([]job.Job, error) {
	f.gotLimit, f.gotOffset = limit, offset
	return f.jobs, f.err
}

func (f *fakeJobs) ByCareer(_ context.Context, min int) ([]job.Job, error) {
	f.gotCareer = min
	return f.jobs, f.err
}

func (f *fakeJobs) BySkill(_ context.Context, skill string) ([]job.Job, error) {
	f.gotSkill = skill
	return f.jobs, f.err
}

func (f *fakeJobs) OpenSince(_ context.Context, date string) ([]job.Job, error) {
	f.gotDate = date
	if f.err != nil {
		return nil, f.err
	}
	if _, err := job.ParseDate(date); err != nil {
		return nil, err
	}
	return f.jobs, nil
}

type fakeClouds struct {
	res     cloud.Result
	img     []byte
	err     error
	gotKind cloud.Kind
	gotArg  string
}

func (f *fakeClouds) Frequencies(_ context.Context, kind cloud.Kind, filter string) (cloud.Result, error) {
	f.gotKind, f.gotArg = kind, filter
	return f.res, f.err
}

func (f *fakeClouds) Image(_ context.Context, kind cloud.Kind, filter string) ([]byte, error) {
	f.gotKind, f.gotArg = kind, filter
	return f.img, f.err
}

type readiness struct{ err error }

func (r readiness) Ready(context.Context) error { return r.err }

var _ health.ReadinessUseCase = readiness{}

func newApp(jobs *fakeJobs, clouds *fakeClouds, ready error) *fiber.App {
	app := fiber.New()
	jh := NewJobsHandler(jobs, nil)
	wh := NewWordCloudHandler(clouds, nil)
	hh := NewHealthHandler(readiness{err: ready})
	app.Get("/health", hh.Health)
	app.Get("/ready", hh.Ready)
	app.Get("/jobs", jh.List)
	app.Get("/jobs/req/:req", jh.ByCareer)
	app.Get("/jobs/skill/:skill", jh.BySkill)
	app.Get("/jobs/date/:date", jh.OpenSince)
	app.Get("/wordcloud/stack", wh.StackImage)
	app.Get("/wordcloud/stack/frequencies", wh.StackFrequencies)
	app.Get("/wordcloud/required", wh.RequirementImage)
	app.Get("/wordcloud/required/frequencies", wh.RequirementFrequencies)
	return app
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func sampleJobs() []job.Job {
	stack := "Java, Spring"
	return []job.Job{
		{ID: 1, Company: "Kakao", Title: "Backend", Career: 3, TechStack: &stack},
		{ID: 2, Company: "Naver", Title: "Frontend", Career: 1},
	}
}

func TestHealth(t *testing.T) {
	app := newApp(&fakeJobs{}, &fakeClouds{}, nil)
	resp, body := get(t, app, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode(t, body)["status"])

	resp, _ = get(t, app, "/ready")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	app = newApp(&fakeJobs{}, &fakeClouds{}, errors.New("postgres: refused"))
	resp, body = get(t, app, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "postgres: refused", decode(t, body)["details"])
}

func TestJobsList(t *testing.T) {
	jobs := &fakeJobs{jobs: sampleJobs()}
	app := newApp(jobs, &fakeClouds{}, nil)

	resp, body := get(t, app, "/jobs")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, jobs.gotLimit)
	var out []job.Job
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Len(t, out, 2)
	assert.Equal(t, "Java, Spring", *out[0].TechStack)
	assert.Nil(t, out[1].TechStack)

	get(t, app, "/jobs?limit=500&offset=20")
	assert.Equal(t, 10, jobs.gotLimit)
	assert.Equal(t, 20, jobs.gotOffset)

	get(t, app, "/jobs?limit=50&offset=-1")
	assert.Equal(t, 50, jobs.gotLimit)
	assert.Equal(t, 0, jobs.gotOffset)

	resp, _ = get(t, app, "/jobs?limit=abc&offset=5")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, jobs.gotLimit)
	assert.Equal(t, 0, jobs.gotOffset)
}

func TestJobsByCareer(t *testing.T) {
	jobs := &fakeJobs{jobs: sampleJobs()}
	app := newApp(jobs, &fakeClouds{}, nil)

	resp, body := get(t, app, "/jobs/req/3")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, jobs.gotCareer)
	assert.Len(t, decode(t, body)["message"], 2)

	resp, _ = get(t, app, "/jobs/req/three")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	jobs.err = job.ErrValidation("career must not be negative")
	resp, body = get(t, app, "/jobs/req/-1")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "career must not be negative", decode(t, body)["message"])
}

func TestJobsBySkill(t *testing.T) {
	jobs := &fakeJobs{jobs: sampleJobs()}
	app := newApp(jobs, &fakeClouds{}, nil)

	resp, body := get(t, app, "/jobs/skill/C%2B%2B")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "C++", jobs.gotSkill)
	out := decode(t, body)
	assert.EqualValues(t, 2, out["count"])
	assert.Len(t, out["message"], 2)

	get(t, app, "/jobs/skill/%EC%9E%90%EB%B0%94")
	assert.Equal(t, "자바", jobs.gotSkill)
}

func TestJobsOpenSince(t *testing.T) {
	jobs := &fakeJobs{jobs: sampleJobs()}
	app := newApp(jobs, &fakeClouds{}, nil)

	resp, body := get(t, app, "/jobs/date/20240601")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode(t, body)["message"], 2)

	for _, bad := range []string{"2024-06-01", "20241301", "2024061"} {
		resp, body = get(t, app, "/jobs/date/"+bad)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, bad)
		assert.Equal(t, job.ErrInvalidDate.Error(), decode(t, body)["message"])
	}
}

func TestJobs_InternalError(t *testing.T) {
	app := newApp(&fakeJobs{err: errors.New("pool closed")}, &fakeClouds{}, nil)
	resp, body := get(t, app, "/jobs")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "failed to load jobs", decode(t, body)["message"])
}

func TestWordCloudImage(t *testing.T) {
	clouds := &fakeClouds{img: []byte("\x89PNG")}
	app := newApp(&fakeJobs{}, clouds, nil)

	resp, body := get(t, app, "/wordcloud/stack?subject=Backend")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, []byte("\x89PNG"), body)
	assert.Equal(t, cloud.KindStack, clouds.gotKind)
	assert.Equal(t, "Backend", clouds.gotArg)

	get(t, app, "/wordcloud/required?skill=Java")
	assert.Equal(t, cloud.KindRequirement, clouds.gotKind)
	assert.Equal(t, "Java", clouds.gotArg)
}

func TestWordCloudFrequencies(t *testing.T) {
	clouds := &fakeClouds{res: cloud.Result{
		Records:     2,
		Tokens:      3,
		Frequencies: wordfreq.FrequencyMap{"Java": 2, "경험": 1},
	}}
	app := newApp(&fakeJobs{}, clouds, nil)

	resp, body := get(t, app, "/wordcloud/required/frequencies?skill=Java")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out frequenciesResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 3, out.Count)
	assert.Equal(t, 2, out.Records)
	assert.Equal(t, wordfreq.FrequencyMap{"Java": 2, "경험": 1}, out.Frequencies)

	get(t, app, "/wordcloud/stack/frequencies")
	assert.Equal(t, cloud.KindStack, clouds.gotKind)
	assert.Equal(t, "", clouds.gotArg)
}

func TestWordCloud_Errors(t *testing.T) {
	clouds := &fakeClouds{err: cloud.ErrNoData}
	app := newApp(&fakeJobs{}, clouds, nil)

	for _, target := range []string{"/wordcloud/stack", "/wordcloud/required/frequencies"} {
		resp, body := get(t, app, target)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, target)
		assert.Equal(t, "no data found", decode(t, body)["message"])
	}

	clouds.err = errors.New("render stack cloud: boom")
	resp, body := get(t, app, "/wordcloud/stack")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "failed to build word cloud", decode(t, body)["message"])
}
