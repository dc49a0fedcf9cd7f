package mention

import "github.com/nestlingapp/nestling-backend/internal/domain"

// References holds the outcome of scanning one text body.
type References struct {
	Topics   []domain.TopicReference   `json:"topics"`
	Journeys []domain.JourneyReference `json:"journeys"`
}

// ExtractReferences runs both scanners independently over the same
// text. The marker characters are disjoint, so neither scan can
// influence the other.
func ExtractReferences(text string, topics []domain.Topic, journeys []domain.Journey) References {
	return References{
		Topics:   ScanTopicMentions(text, topics),
		Journeys: ScanJourneyMentions(text, journeys),
	}
}
