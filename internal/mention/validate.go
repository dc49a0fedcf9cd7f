package mention

import "github.com/nestlingapp/nestling-backend/internal/domain"

// ValidateTopicReferences filters refs down to those whose topic id
// exists in the catalog. Order is preserved and duplicates pass
// through; collapsing duplicates is the merge step's concern.
func ValidateTopicReferences(refs []domain.TopicReference, topics []domain.Topic) []domain.TopicReference {
	var valid []domain.TopicReference
	for _, ref := range refs {
		if topicByID(topics, ref.TopicID) != nil {
			valid = append(valid, ref)
		}
	}
	return valid
}

// ValidateJourneyReferences filters refs down to those whose journey id
// exists in the catalog, compared case-insensitively. Order-preserving,
// no deduplication.
func ValidateJourneyReferences(refs []domain.JourneyReference, journeys []domain.Journey) []domain.JourneyReference {
	var valid []domain.JourneyReference
	for _, ref := range refs {
		if journeyByID(journeys, ref.JourneyID) != nil {
			valid = append(valid, ref)
		}
	}
	return valid
}
