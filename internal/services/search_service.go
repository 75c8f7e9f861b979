package services

import (
	"encoding/json"
	"errors"
	"strings"

	"castingfy/internal/models"
	"castingfy/internal/repositories"
	"castingfy/internal/services/dto"
	"castingfy/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 50

	// How many verified candidates to scan before in-memory filters.
	searchScanLimit = 200
)

type SearchService interface {
	SearchUsers(db *gorm.DB, requesterID string, req *dto.SearchUsersRequest) (*dto.SearchUsersResponse, error)
}

type searchService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewSearchService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) SearchService {
	return &searchService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// SearchUsers runs the directory query: verified active users,
// requester excluded, optional role/gender equality, skills superset
// match and a case-insensitive substring over the profile text
// fields. Results are capped by a flat limit.
func (s *searchService) SearchUsers(db *gorm.DB, requesterID string, req *dto.SearchUsersRequest) (*dto.SearchUsersResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	candidates, err := s.userRepo.FindCandidates(db, requesterID, req.Role, searchScanLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	location := strings.ToLower(strings.TrimSpace(req.Location))
	wantedSkills := parseSkills(req.Skills)

	results := make([]dto.PublicUserResponse, 0, limit)
	for i := range candidates {
		user := &candidates[i]

		if err := s.attachProfile(db, user); err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				continue
			}
			return nil, apperrors.InternalError(err)
		}

		if req.Gender != "" && (user.TalentProfile == nil || user.TalentProfile.Gender != req.Gender) {
			continue
		}
		if len(wantedSkills) > 0 && !hasAllSkills(user.TalentProfile, wantedSkills) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(profileLocation(user)), location) {
			continue
		}
		if query != "" && !matchesQuery(user, query) {
			continue
		}

		results = append(results, toPublicUserResponse(user))
		if len(results) >= limit {
			break
		}
	}

	return &dto.SearchUsersResponse{Results: results, Total: len(results)}, nil
}

func (s *searchService) attachProfile(db *gorm.DB, user *models.User) error {
	switch user.Role {
	case models.UserRoleTalent:
		profile, err := s.profileRepo.FindTalentByUserID(db, user.ID)
		if err != nil {
			return err
		}
		user.TalentProfile = profile
	case models.UserRoleProducer:
		profile, err := s.profileRepo.FindProducerByUserID(db, user.ID)
		if err != nil {
			return err
		}
		user.ProducerProfile = profile
	}
	return nil
}

func parseSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// hasAllSkills is a superset check: the profile must list every
// requested skill.
func hasAllSkills(profile *models.TalentProfile, wanted []string) bool {
	if profile == nil {
		return false
	}

	var skills []string
	if len(profile.Skills) > 0 {
		if err := json.Unmarshal(profile.Skills, &skills); err != nil {
			return false
		}
	}

	have := make(map[string]bool, len(skills))
	for _, skill := range skills {
		have[strings.ToLower(strings.TrimSpace(skill))] = true
	}
	for _, w := range wanted {
		if !have[w] {
			return false
		}
	}
	return true
}

func profileLocation(user *models.User) string {
	if user.TalentProfile != nil {
		return user.TalentProfile.Location
	}
	if user.ProducerProfile != nil {
		return user.ProducerProfile.Location
	}
	return ""
}

func matchesQuery(user *models.User, query string) bool {
	var haystack []string
	if p := user.TalentProfile; p != nil {
		haystack = append(haystack, p.DisplayName, p.Bio, p.Location)
	}
	if p := user.ProducerProfile; p != nil {
		haystack = append(haystack, p.DisplayName, p.CompanyName, p.Bio, p.Location)
	}
	for _, field := range haystack {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
