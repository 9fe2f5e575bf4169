package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProject(title, category string) map[string]any {
	return map[string]any{
		"title":       title,
		"category":    category,
		"company":     "Kent State",
		"image":       "https://example.com/p.jpg",
		"description": "A project",
		"tools":       []string{"Clo3D"},
		"impact":      "Impact",
	}
}

func TestProjectEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/api/projects", validProject("Printed", "3D Design"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Project created successfully", body.Message)
	project := dataObject(t, body, "project")
	id := project["id"].(string)
	assert.Equal(t, project["created_at"], project["updated_at"])

	_, _ = env.do(t, http.MethodPost, "/api/projects", validProject("Collection", "Collections"))

	rec, body = env.do(t, http.MethodGet, "/api/projects?category=3d-design", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	projects := dataList(t, body, "projects")
	require.Len(t, projects, 1)
	assert.Equal(t, id, projects[0].(map[string]any)["id"])

	rec, body = env.do(t, http.MethodPut, "/api/projects/"+id, map[string]any{"impact": "Huge"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := dataObject(t, body, "project")
	assert.Equal(t, "Huge", updated["impact"])
	assert.Equal(t, "Printed", updated["title"])

	rec, body = env.do(t, http.MethodDelete, "/api/projects/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, body.Data["deleted_id"])

	rec, body = env.do(t, http.MethodGet, "/api/projects/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found", body.Error)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestProjectCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	invalid := validProject("x", "Research")
	delete(invalid, "tools")
	rec, body := env.do(t, http.MethodPost, "/api/projects", invalid)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, body.Error, "tools")
}

func TestProjectCreateRejectsEmptyRequiredString(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/api/projects", validProject("", "Research"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Contains(t, body.Error, "title")
}

func TestServiceDeliverablesMustNotBeEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/api/services", map[string]any{
		"title":        "Consulting",
		"description":  "Advice",
		"deliverables": []string{},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, body.Error, "deliverables")

	rec, body = env.do(t, http.MethodPost, "/api/services", map[string]any{
		"title":        "Consulting",
		"description":  "Advice",
		"deliverables": []string{"Report"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	id := dataObject(t, body, "service")["id"].(string)

	rec, _ = env.do(t, http.MethodPut, "/api/services/"+id, map[string]any{"deliverables": []string{}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestResearchEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/api/research", map[string]any{
		"title":        "Hemp",
		"organization": "USDA",
		"description":  "Fibers",
		"status":       "Ongoing",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	id := dataObject(t, body, "research_project")["id"].(string)

	rec, body = env.do(t, http.MethodGet, "/api/research", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, body, "research"), 1)

	rec, body = env.do(t, http.MethodPut, "/api/research/"+id, map[string]any{"status": "Deployed"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Deployed", dataObject(t, body, "research_project")["status"])
}

func TestAboutEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/api/about", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	about := dataObject(t, body, "about")
	assert.True(t, strings.HasPrefix(about["story"].(string), "From NIFT to leading sustainable innovation"))

	rec, body = env.do(t, http.MethodPut, "/api/about", map[string]any{"story": "New story"})
	require.Equal(t, http.StatusOK, rec.Code)
	about = dataObject(t, body, "about")
	assert.Equal(t, "New story", about["story"])
	assert.NotEmpty(t, about["competencies"])

	rec, _ = env.do(t, http.MethodPut, "/api/about", map[string]any{
		"competencies": []map[string]any{{"icon": "Leaf"}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRecordPageView(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodPost, "/api/analytics/page-view", map[string]any{"page": "/portfolio"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body.Data["page_view_id"])

	rec, _ = env.do(t, http.MethodPost, "/api/analytics/page-view", map[string]any{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// There is no read path.
	rec, _ = env.do(t, http.MethodGet, "/api/analytics/page-view", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
