package mention

import (
	"strings"

	"github.com/nestlingapp/nestling-backend/internal/domain"
)

// ScanJourneyMentions scans text left to right for #slug and #[name]
// tokens and resolves each against the supplied catalog. Both forms
// are compared case-insensitively: bracketed content against the
// journey name, bare slugs against the journey id. The slug form
// accepts any run of letters, digits, and hyphens. Unresolved tokens
// produce nothing; each journey appears at most once, at its first
// successful resolution.
func ScanJourneyMentions(text string, journeys []domain.Journey) []domain.JourneyReference {
	var refs []domain.JourneyReference
	seen := make(map[string]bool)

	for _, m := range journeyPattern.FindAllStringSubmatch(text, -1) {
		var journey *domain.Journey
		switch {
		case m[1] != "":
			journey = journeyByName(journeys, m[1])
		case m[2] != "":
			journey = journeyByID(journeys, m[2])
		}
		if journey == nil {
			continue
		}
		key := strings.ToLower(journey.ID)
		if seen[key] {
			continue
		}
		seen[key] = true
		refs = append(refs, domain.JourneyReference{JourneyID: journey.ID, Title: journey.Name})
	}

	return refs
}

// journeyByID returns the first catalog entry whose id equals the given
// slug under case folding.
func journeyByID(journeys []domain.Journey, id string) *domain.Journey {
	for i := range journeys {
		if strings.EqualFold(journeys[i].ID, id) {
			return &journeys[i]
		}
	}
	return nil
}

// journeyByName returns the first catalog entry whose display name
// equals the given text under case folding. No trimming is applied.
func journeyByName(journeys []domain.Journey, name string) *domain.Journey {
	for i := range journeys {
		if strings.EqualFold(journeys[i].Name, name) {
			return &journeys[i]
		}
	}
	return nil
}
