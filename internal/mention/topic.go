package mention

import (
	"strconv"
	"strings"

	"github.com/nestlingapp/nestling-backend/internal/domain"
)

// ScanTopicMentions scans text left to right for @id and @[title]
// tokens and resolves each against the supplied catalog. Bracketed
// titles are compared verbatim and case-insensitively; bare ids are
// parsed base-10 and compared numerically. Unresolved tokens produce
// nothing. Each topic appears at most once, at the position of its
// first successful resolution.
func ScanTopicMentions(text string, topics []domain.Topic) []domain.TopicReference {
	var refs []domain.TopicReference
	seen := make(map[int]bool)

	for _, m := range topicPattern.FindAllStringSubmatch(text, -1) {
		var topic *domain.Topic
		switch {
		case m[1] != "":
			topic = topicByTitle(topics, m[1])
		case m[2] != "":
			id, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}
			topic = topicByID(topics, id)
		}
		if topic == nil || seen[topic.ID] {
			continue
		}
		seen[topic.ID] = true
		refs = append(refs, domain.TopicReference{TopicID: topic.ID, Title: topic.Title})
	}

	return refs
}

// topicByID returns the first catalog entry with the given id.
func topicByID(topics []domain.Topic, id int) *domain.Topic {
	for i := range topics {
		if topics[i].ID == id {
			return &topics[i]
		}
	}
	return nil
}

// topicByTitle returns the first catalog entry whose title equals the
// given text under case folding. No trimming is applied.
func topicByTitle(topics []domain.Topic, title string) *domain.Topic {
	for i := range topics {
		if strings.EqualFold(topics[i].Title, title) {
			return &topics[i]
		}
	}
	return nil
}
