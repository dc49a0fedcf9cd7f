package mention

import (
	"strings"

	"github.com/nestlingapp/nestling-backend/internal/domain"
)

// MergeTopicReferences combines references scanned from content with
// references the client supplied explicitly. Scanned references win:
// an explicit reference is kept only when the scan did not already
// produce its topic id.
func MergeTopicReferences(scanned, explicit []domain.TopicReference) []domain.TopicReference {
	seen := make(map[int]bool, len(scanned))
	merged := make([]domain.TopicReference, 0, len(scanned)+len(explicit))

	for _, ref := range scanned {
		if seen[ref.TopicID] {
			continue
		}
		seen[ref.TopicID] = true
		merged = append(merged, ref)
	}
	for _, ref := range explicit {
		if seen[ref.TopicID] {
			continue
		}
		seen[ref.TopicID] = true
		merged = append(merged, ref)
	}

	return merged
}

// MergeJourneyReferences is the journey counterpart of
// MergeTopicReferences; ids are compared case-insensitively.
func MergeJourneyReferences(scanned, explicit []domain.JourneyReference) []domain.JourneyReference {
	seen := make(map[string]bool, len(scanned))
	merged := make([]domain.JourneyReference, 0, len(scanned)+len(explicit))

	for _, ref := range scanned {
		key := strings.ToLower(ref.JourneyID)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, ref)
	}
	for _, ref := range explicit {
		key := strings.ToLower(ref.JourneyID)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, ref)
	}

	return merged
}
