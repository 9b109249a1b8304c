package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Age ranges offered by the onboarding questionnaire.
var AgeRanges = []string{"13-17", "18-24", "25-34", "35-44", "45-54", "55+"}

// UserProfile holds the onboarding answers used to personalize affirmations.
type UserProfile struct {
	Name       string   `json:"name"`
	AgeRange   string   `json:"ageRange,omitempty"`
	Gender     string   `json:"gender,omitempty"`
	FocusAreas []string `json:"focusAreas,omitempty"`
	// Timezone is an IANA zone name. Empty means the server default.
	Timezone string `json:"timezone,omitempty"`
	// Premium is set by subscription tooling and ignored on client updates.
	Premium bool `json:"premium,omitempty"`
}

// Validate checks the profile for values the prompt builder cannot use.
func (p *UserProfile) Validate() error {
	if utf8.RuneCountInString(p.Name) > 50 {
		return fmt.Errorf("%w: name must be at most 50 characters", ErrValidation)
	}
	if p.AgeRange != "" && !contains(AgeRanges, p.AgeRange) {
		return fmt.Errorf("%w: unknown age range %q", ErrValidation, p.AgeRange)
	}
	if len(p.FocusAreas) > 10 {
		return fmt.Errorf("%w: at most 10 focus areas", ErrValidation)
	}
	for _, area := range p.FocusAreas {
		if strings.TrimSpace(area) == "" {
			return fmt.Errorf("%w: focus areas cannot be blank", ErrValidation)
		}
	}
	if p.Timezone != "" {
		if _, err := time.LoadLocation(p.Timezone); err != nil {
			return fmt.Errorf("%w: unknown timezone %q", ErrValidation, p.Timezone)
		}
	}
	return nil
}

// DisplayName returns the trimmed name. It is empty when the user skipped the question.
func (p *UserProfile) DisplayName() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.Name)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
