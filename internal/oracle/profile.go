package oracle

import (
	"errors"
	"strings"
)

// ErrProfileIncomplete is returned when onboarding or a goal update is
// submitted with a required field empty. Nothing is mutated in that case.
var ErrProfileIncomplete = errors.New("oracle: profile requires name, bio and professional goal")

// UserProfile is the seeker's identity and professional goal. Every
// consultation is steered toward the goal, so all three fields must be
// non-empty once the profile exists.
type UserProfile struct {
	Name             string `json:"name"`
	Bio              string `json:"bio"`
	ProfessionalGoal string `json:"professionalGoal"`
}

// NewUserProfile validates and creates a profile. Fields are trimmed
// before validation.
func NewUserProfile(name, bio, goal string) (*UserProfile, error) {
	name = strings.TrimSpace(name)
	bio = strings.TrimSpace(bio)
	goal = strings.TrimSpace(goal)
	if name == "" || bio == "" || goal == "" {
		return nil, ErrProfileIncomplete
	}
	return &UserProfile{
		Name:             name,
		Bio:              bio,
		ProfessionalGoal: goal,
	}, nil
}

// UpdateGoal replaces the professional goal. An empty goal is rejected
// and leaves the profile untouched.
func (p *UserProfile) UpdateGoal(goal string) error {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return ErrProfileIncomplete
	}
	p.ProfessionalGoal = goal
	return nil
}

// Complete reports whether all three fields are populated.
func (p *UserProfile) Complete() bool {
	return p != nil && p.Name != "" && p.Bio != "" && p.ProfessionalGoal != ""
}
