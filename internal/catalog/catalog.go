// Package catalog loads the story and journey catalogs that mention
// resolution runs against. Catalogs are static data: a YAML file on
// disk, or the copy compiled into the binary when no path is given.
package catalog

import "github.com/nestlingapp/nestling-backend/internal/domain"

// Catalog bundles the topics and journeys available for mention resolution.
type Catalog struct {
	Topics   []domain.Topic
	Journeys []domain.Journey
}

// TopicByID returns the first topic with the given id, or nil.
func (c *Catalog) TopicByID(id int) *domain.Topic {
	for i := range c.Topics {
		if c.Topics[i].ID == id {
			return &c.Topics[i]
		}
	}
	return nil
}
