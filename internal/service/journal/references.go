package journal

import (
	"github.com/nestlingapp/nestling-backend/internal/domain"
	"github.com/nestlingapp/nestling-backend/internal/mention"
)

// buildReferences resolves an entry's reference lists: mentions scanned
// from content are merged with the client's explicit references, which
// are first filtered against the current catalog. Scanned references
// win when both name the same topic or journey.
func (s *Service) buildReferences(
	content string,
	explicitTopics []domain.TopicReference,
	explicitJourneys []domain.JourneyReference,
) ([]domain.TopicReference, []domain.JourneyReference) {
	scanned := mention.ExtractReferences(content, s.catalog.Topics, s.catalog.Journeys)

	topics := mention.MergeTopicReferences(
		scanned.Topics,
		mention.ValidateTopicReferences(explicitTopics, s.catalog.Topics),
	)
	journeys := mention.MergeJourneyReferences(
		scanned.Journeys,
		mention.ValidateJourneyReferences(explicitJourneys, s.catalog.Journeys),
	)

	return topics, journeys
}
