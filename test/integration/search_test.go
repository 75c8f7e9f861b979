package integration

import (
	"net/http"
	"testing"

	"castingfy/internal/models"
	"castingfy/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchResp struct {
	Results []struct {
		ID            string `json:"id"`
		TalentProfile *struct {
			DisplayName string `json:"display_name"`
		} `json:"talent_profile"`
	} `json:"results"`
	Total int `json:"total"`
}

func updateTalentProfile(t *testing.T, ts *helpers.TestServer, token string, body map[string]interface{}) {
	t.Helper()
	w := ts.SendRequest(http.MethodPut, "/api/v1/profiles/talent", body, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func search(t *testing.T, ts *helpers.TestServer, token, query string) searchResp {
	t.Helper()
	w := ts.SendRequest(http.MethodGet, "/api/v1/search/users"+query, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp searchResp
	ts.DecodeJSON(w, &resp)
	return resp
}

func TestSearchExcludesRequesterAndUnverified(t *testing.T) {
	ts := helpers.NewTestServer(t)
	searcherID, token := ts.CreateActiveUser("searcher@example.com", models.UserRoleProducer, "Searcher")
	verifiedID, _ := ts.CreateActiveUser("visible@example.com", models.UserRoleTalent, "Visible")

	// Registered but never verified: must not appear.
	ts.RegisterUser("ghost@example.com", models.UserRoleTalent, "Ghost")

	resp := search(t, ts, token, "")
	ids := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, verifiedID)
	assert.NotContains(t, ids, searcherID)
	assert.Len(t, ids, 1)
}

func TestSearchRoleFilter(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.CreateActiveUser("who@example.com", models.UserRoleTalent, "Who")
	talentID, _ := ts.CreateActiveUser("act@example.com", models.UserRoleTalent, "Actor")
	producerID, _ := ts.CreateActiveUser("prod@example.com", models.UserRoleProducer, "Studio Boss")

	resp := search(t, ts, token, "?role=producer")
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, producerID, resp.Results[0].ID)

	resp = search(t, ts, token, "?role=talent")
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, talentID, resp.Results[0].ID)
}

func TestSearchSkillsSupersetMatch(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, searcher := ts.CreateActiveUser("caster@example.com", models.UserRoleProducer, "Caster")
	bothID, bothToken := ts.CreateActiveUser("both@example.com", models.UserRoleTalent, "Both Skills")
	_, oneToken := ts.CreateActiveUser("one@example.com", models.UserRoleTalent, "One Skill")

	updateTalentProfile(t, ts, bothToken, map[string]interface{}{
		"display_name": "Both Skills",
		"skills":       []string{"Singing", "Dancing", "Acting"},
	})
	updateTalentProfile(t, ts, oneToken, map[string]interface{}{
		"display_name": "One Skill",
		"skills":       []string{"Singing"},
	})

	// Superset semantics: candidates must have every requested skill.
	resp := search(t, ts, searcher, "?skills=singing,dancing")
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, bothID, resp.Results[0].ID)

	resp = search(t, ts, searcher, "?skills=singing")
	assert.Equal(t, 2, resp.Total)

	resp = search(t, ts, searcher, "?skills=singing,juggling")
	assert.Equal(t, 0, resp.Total)
}

func TestSearchQuerySubstring(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, searcher := ts.CreateActiveUser("finder@example.com", models.UserRoleProducer, "Finder")
	matchID, matchToken := ts.CreateActiveUser("match@example.com", models.UserRoleTalent, "Anna Kareva")
	_, otherToken := ts.CreateActiveUser("other@example.com", models.UserRoleTalent, "Someone Else")

	updateTalentProfile(t, ts, matchToken, map[string]interface{}{
		"display_name": "Anna Kareva",
		"bio":          "Stage actress from Almaty",
		"location":     "Almaty",
	})
	updateTalentProfile(t, ts, otherToken, map[string]interface{}{
		"display_name": "Someone Else",
		"location":     "Astana",
	})

	// Case-insensitive substring over name, bio and location.
	resp := search(t, ts, searcher, "?q=kareva")
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, matchID, resp.Results[0].ID)

	resp = search(t, ts, searcher, "?q=STAGE+ACTRESS")
	assert.Equal(t, 1, resp.Total)

	resp = search(t, ts, searcher, "?q=almaty")
	assert.Equal(t, 1, resp.Total)

	resp = search(t, ts, searcher, "?q=nomatch")
	assert.Equal(t, 0, resp.Total)
}

func TestSearchLimitCap(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, searcher := ts.CreateActiveUser("cap@example.com", models.UserRoleProducer, "Cap")

	w := ts.SendRequest(http.MethodGet, "/api/v1/search/users?limit=999", nil, searcher)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.SendRequest(http.MethodGet, "/api/v1/search/users?limit=50", nil, searcher)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchRequiresAuth(t *testing.T) {
	ts := helpers.NewTestServer(t)

	w := ts.SendRequest(http.MethodGet, "/api/v1/search/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
