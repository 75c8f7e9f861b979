package integration

import (
	"net/http"
	"testing"

	"castingfy/internal/models"
	"castingfy/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type projectResponse struct {
	Project struct {
		ID     string               `json:"id"`
		Title  string               `json:"title"`
		Status models.ProjectStatus `json:"status"`
		Step   models.ProjectStep   `json:"step"`
		Roles  []struct {
			ID           string `json:"id"`
			Name         string `json:"name"`
			Compensation *struct {
				Kind   string  `json:"kind"`
				Amount float64 `json:"amount"`
			} `json:"compensation"`
		} `json:"roles"`
		Prescreens []struct {
			ID     string `json:"id"`
			Prompt string `json:"prompt"`
			Kind   string `json:"kind"`
		} `json:"prescreens"`
	} `json:"project"`
	RoleMapping []struct {
		ClientID string `json:"client_id"`
		ServerID string `json:"server_id"`
	} `json:"role_mapping"`
}

func createDraft(t *testing.T, ts *helpers.TestServer, token, title string) string {
	t.Helper()

	w := ts.SendRequest(http.MethodPost, "/api/v1/projects", map[string]string{
		"title": title,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp projectResponse
	ts.DecodeJSON(w, &resp)
	return resp.Project.ID
}

func TestWizardFullFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.CreateActiveUser("producer@example.com", models.UserRoleProducer, "Big Studio")

	projectID := createDraft(t, ts, token, "Feature Film")

	// Step 1: details.
	w := ts.SendRequest(http.MethodPut, "/api/v1/projects/"+projectID+"/details", map[string]string{
		"title":       "Feature Film",
		"description": "A drama set in Almaty",
		"category":    "film",
		"location":    "Almaty",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp projectResponse
	ts.DecodeJSON(w, &resp)
	assert.Equal(t, models.ProjectStatusDraft, resp.Project.Status)
	assert.Equal(t, models.ProjectStepDetails, resp.Project.Step)

	// Step 2: roles with client temp ids.
	w = ts.SendRequest(http.MethodPut, "/api/v1/projects/"+projectID+"/roles", map[string]interface{}{
		"roles": []map[string]interface{}{
			{"client_id": "tmp-1", "name": "Lead Actress", "gender": "female"},
			{"client_id": "tmp-2", "name": "Supporting Actor", "gender": "male", "quantity": 2},
		},
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ts.DecodeJSON(w, &resp)

	assert.Equal(t, models.ProjectStepRoles, resp.Project.Step)
	require.Len(t, resp.Project.Roles, 2)
	require.Len(t, resp.RoleMapping, 2)

	// Temp ids are replaced by server uuids and the mapping points at
	// roles that actually exist.
	serverIDs := map[string]string{}
	for _, m := range resp.RoleMapping {
		assert.NotEqual(t, m.ClientID, m.ServerID)
		serverIDs[m.ClientID] = m.ServerID
	}
	require.Contains(t, serverIDs, "tmp-1")
	require.Contains(t, serverIDs, "tmp-2")

	// Step 3: compensation keyed by the server role ids.
	w = ts.SendRequest(http.MethodPut, "/api/v1/projects/"+projectID+"/compensation", map[string]interface{}{
		"compensation": []map[string]interface{}{
			{"role_id": serverIDs["tmp-1"], "kind": "paid", "amount": 500, "currency": "USD"},
			{"role_id": serverIDs["tmp-2"], "kind": "unpaid"},
		},
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ts.DecodeJSON(w, &resp)
	assert.Equal(t, models.ProjectStepCompensation, resp.Project.Step)

	var paid bool
	for _, role := range resp.Project.Roles {
		if role.Compensation != nil && role.Compensation.Kind == "paid" {
			paid = true
			assert.Equal(t, 500.0, role.Compensation.Amount)
		}
	}
	assert.True(t, paid)

	// Step 4: prescreen questions.
	w = ts.SendRequest(http.MethodPut, "/api/v1/projects/"+projectID+"/prescreens", map[string]interface{}{
		"prescreens": []map[string]interface{}{
			{"prompt": "Link to a recent showreel", "kind": "text", "required": true},
			{"prompt": "Available in March?", "kind": "choice", "options": []string{"yes", "no"}},
		},
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ts.DecodeJSON(w, &resp)
	assert.Equal(t, models.ProjectStepPrescreens, resp.Project.Step)
	assert.Len(t, resp.Project.Prescreens, 2)

	// Publish.
	w = ts.SendRequest(http.MethodPost, "/api/v1/projects/"+projectID+"/publish", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ts.DecodeJSON(w, &resp)
	assert.Equal(t, models.ProjectStatusPublished, resp.Project.Status)

	// The published casting shows up on the public board.
	w = ts.SendRequest(http.MethodGet, "/api/v1/castings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var board struct {
		Castings []struct {
			ID string `json:"id"`
		} `json:"castings"`
	}
	ts.DecodeJSON(w, &board)
	require.Len(t, board.Castings, 1)
	assert.Equal(t, projectID, board.Castings[0].ID)
}

func TestWizardDraftSurvivesPartialProgress(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.CreateActiveUser("producer2@example.com", models.UserRoleProducer, "Indie")

	projectID := createDraft(t, ts, token, "Short Film")

	// Only details saved; the draft is durable and not public.
	w := ts.SendRequest(http.MethodGet, "/api/v1/projects/"+projectID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp projectResponse
	ts.DecodeJSON(w, &resp)
	assert.Equal(t, models.ProjectStatusDraft, resp.Project.Status)
	assert.Empty(t, resp.Project.Roles)

	w = ts.SendRequest(http.MethodGet, "/api/v1/castings", nil, "")
	var board struct {
		Castings []struct{} `json:"castings"`
	}
	ts.DecodeJSON(w, &board)
	assert.Empty(t, board.Castings)
}

func TestWizardCompensationRequiresRoles(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.CreateActiveUser("producer3@example.com", models.UserRoleProducer, "NoRoles")

	projectID := createDraft(t, ts, token, "Roleless")

	w := ts.SendRequest(http.MethodPut, "/api/v1/projects/"+projectID+"/compensation", map[string]interface{}{
		"compensation": []map[string]interface{}{
			{"role_id": "nonexistent", "kind": "paid"},
		},
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWizardRolesRequireName(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.CreateActiveUser("producer4@example.com", models.UserRoleProducer, "Sloppy")

	projectID := createDraft(t, ts, token, "Unnamed Roles")

	w := ts.SendRequest(http.MethodPut, "/api/v1/projects/"+projectID+"/roles", map[string]interface{}{
		"roles": []map[string]interface{}{
			{"client_id": "tmp-1", "name": "   "},
		},
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWizardPublishRequiresRoles(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.CreateActiveUser("producer5@example.com", models.UserRoleProducer, "Eager")

	projectID := createDraft(t, ts, token, "Premature")

	w := ts.SendRequest(http.MethodPost, "/api/v1/projects/"+projectID+"/publish", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWizardPublishTwiceConflicts(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.CreateActiveUser("producer6@example.com", models.UserRoleProducer, "Twice")

	projectID := createDraft(t, ts, token, "Double")

	w := ts.SendRequest(http.MethodPut, "/api/v1/projects/"+projectID+"/roles", map[string]interface{}{
		"roles": []map[string]interface{}{{"name": "Extra"}},
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.SendRequest(http.MethodPost, "/api/v1/projects/"+projectID+"/publish", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.SendRequest(http.MethodPost, "/api/v1/projects/"+projectID+"/publish", nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestWizardForbiddenForOtherProducer(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, owner := ts.CreateActiveUser("owner@example.com", models.UserRoleProducer, "Owner")
	_, intruder := ts.CreateActiveUser("intruder@example.com", models.UserRoleProducer, "Intruder")

	projectID := createDraft(t, ts, owner, "Private Draft")

	w := ts.SendRequest(http.MethodPut, "/api/v1/projects/"+projectID+"/details", map[string]string{
		"title": "Hijacked",
	}, intruder)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Drafts are not readable by non-owners either.
	w = ts.SendRequest(http.MethodGet, "/api/v1/projects/"+projectID, nil, intruder)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWizardTalentCannotCreateProjects(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.CreateActiveUser("actor@example.com", models.UserRoleTalent, "Actor")

	w := ts.SendRequest(http.MethodPost, "/api/v1/projects", map[string]string{
		"title": "Nope",
	}, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWizardStepIsHighWaterMark(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.CreateActiveUser("producer7@example.com", models.UserRoleProducer, "Stepper")

	projectID := createDraft(t, ts, token, "Stepped")

	w := ts.SendRequest(http.MethodPut, "/api/v1/projects/"+projectID+"/roles", map[string]interface{}{
		"roles": []map[string]interface{}{{"name": "Lead"}},
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Re-saving details must not move the step marker backwards.
	w = ts.SendRequest(http.MethodPut, "/api/v1/projects/"+projectID+"/details", map[string]string{
		"title": "Stepped v2",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp projectResponse
	ts.DecodeJSON(w, &resp)
	assert.Equal(t, models.ProjectStepRoles, resp.Project.Step)
	assert.Equal(t, "Stepped v2", resp.Project.Title)
}
