package integration

import (
	"net/http"
	"testing"

	"castingfy/internal/models"
	"castingfy/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewFlowAndRatingAggregate(t *testing.T) {
	ts := helpers.NewTestServer(t)
	talentID, _ := ts.CreateActiveUser("star@example.com", models.UserRoleTalent, "Star")
	_, p1 := ts.CreateActiveUser("crit1@example.com", models.UserRoleProducer, "Critic One")
	_, p2 := ts.CreateActiveUser("crit2@example.com", models.UserRoleProducer, "Critic Two")

	w := ts.SendRequest(http.MethodPost, "/api/v1/reviews", map[string]interface{}{
		"talent_id": talentID,
		"rating":    5,
		"comment":   "Outstanding on set",
	}, p1)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = ts.SendRequest(http.MethodPost, "/api/v1/reviews", map[string]interface{}{
		"talent_id": talentID,
		"rating":    4,
	}, p2)
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.SendRequest(http.MethodGet, "/api/v1/users/"+talentID+"/rating", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var rating struct {
		AverageRating float64 `json:"average_rating"`
		TotalReviews  int64   `json:"total_reviews"`
	}
	ts.DecodeJSON(w, &rating)
	assert.InDelta(t, 4.5, rating.AverageRating, 0.001)
	assert.Equal(t, int64(2), rating.TotalReviews)

	// The cached rating on the profile follows the aggregate.
	var profile models.TalentProfile
	require.NoError(t, ts.DB.Where("user_id = ?", talentID).First(&profile).Error)
	assert.InDelta(t, 4.5, profile.Rating, 0.001)

	w = ts.SendRequest(http.MethodGet, "/api/v1/users/"+talentID+"/reviews", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Reviews []struct {
			Rating int `json:"rating"`
		} `json:"reviews"`
		Total int64 `json:"total"`
	}
	ts.DecodeJSON(w, &list)
	assert.Equal(t, int64(2), list.Total)
}

func TestReviewOncePerReviewer(t *testing.T) {
	ts := helpers.NewTestServer(t)
	talentID, _ := ts.CreateActiveUser("once@example.com", models.UserRoleTalent, "Once")
	_, producer := ts.CreateActiveUser("repeat@example.com", models.UserRoleProducer, "Repeat")

	w := ts.SendRequest(http.MethodPost, "/api/v1/reviews", map[string]interface{}{
		"talent_id": talentID,
		"rating":    3,
	}, producer)
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.SendRequest(http.MethodPost, "/api/v1/reviews", map[string]interface{}{
		"talent_id": talentID,
		"rating":    5,
	}, producer)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReviewSelfRejected(t *testing.T) {
	ts := helpers.NewTestServer(t)
	talentID, token := ts.CreateActiveUser("vain@example.com", models.UserRoleTalent, "Vain")

	w := ts.SendRequest(http.MethodPost, "/api/v1/reviews", map[string]interface{}{
		"talent_id": talentID,
		"rating":    5,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewRatingRange(t *testing.T) {
	ts := helpers.NewTestServer(t)
	talentID, _ := ts.CreateActiveUser("ranged@example.com", models.UserRoleTalent, "Ranged")
	_, producer := ts.CreateActiveUser("judge@example.com", models.UserRoleProducer, "Judge")

	for _, rating := range []int{0, 6, -1} {
		w := ts.SendRequest(http.MethodPost, "/api/v1/reviews", map[string]interface{}{
			"talent_id": talentID,
			"rating":    rating,
		}, producer)
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)
	}
}

func TestReviewOnlyForTalent(t *testing.T) {
	ts := helpers.NewTestServer(t)
	producerID, _ := ts.CreateActiveUser("target@example.com", models.UserRoleProducer, "Target")
	_, reviewer := ts.CreateActiveUser("reviewer@example.com", models.UserRoleTalent, "Reviewer")

	w := ts.SendRequest(http.MethodPost, "/api/v1/reviews", map[string]interface{}{
		"talent_id": producerID,
		"rating":    4,
	}, reviewer)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewDeleteRecomputesRating(t *testing.T) {
	ts := helpers.NewTestServer(t)
	talentID, _ := ts.CreateActiveUser("recount@example.com", models.UserRoleTalent, "Recount")
	_, p1 := ts.CreateActiveUser("d1@example.com", models.UserRoleProducer, "D One")
	_, p2 := ts.CreateActiveUser("d2@example.com", models.UserRoleProducer, "D Two")

	w := ts.SendRequest(http.MethodPost, "/api/v1/reviews", map[string]interface{}{
		"talent_id": talentID, "rating": 5,
	}, p1)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	ts.DecodeJSON(w, &created)

	w = ts.SendRequest(http.MethodPost, "/api/v1/reviews", map[string]interface{}{
		"talent_id": talentID, "rating": 1,
	}, p2)
	require.Equal(t, http.StatusCreated, w.Code)

	// Author deletes; other reviewers cannot.
	w = ts.SendRequest(http.MethodDelete, "/api/v1/reviews/"+created.ID, nil, p2)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.SendRequest(http.MethodDelete, "/api/v1/reviews/"+created.ID, nil, p1)
	require.Equal(t, http.StatusNoContent, w.Code)

	var rating struct {
		AverageRating float64 `json:"average_rating"`
		TotalReviews  int64   `json:"total_reviews"`
	}
	w = ts.SendRequest(http.MethodGet, "/api/v1/users/"+talentID+"/rating", nil, "")
	ts.DecodeJSON(w, &rating)
	assert.InDelta(t, 1.0, rating.AverageRating, 0.001)
	assert.Equal(t, int64(1), rating.TotalReviews)
}
