package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nestlingapp/nestling-backend/internal/domain"
)

//go:embed data/topics.yaml
var defaultTopicsYAML []byte

//go:embed data/journeys.yaml
var defaultJourneysYAML []byte

type topicFile struct {
	Topics []topicEntry `yaml:"topics"`
}

type topicEntry struct {
	ID    int    `yaml:"id"`
	Title string `yaml:"title"`
}

type journeyFile struct {
	Journeys []journeyEntry `yaml:"journeys"`
}

type journeyEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Load reads and validates the topic and journey catalogs. An empty
// path selects the catalog compiled into the binary. A catalog that
// fails validation fails the whole Load; the mention core itself never
// checks catalogs, so this is the only gate.
func Load(topicsPath, journeysPath string) (*Catalog, error) {
	topicsRaw, err := readOrDefault(topicsPath, defaultTopicsYAML)
	if err != nil {
		return nil, fmt.Errorf("catalog: topics: %w", err)
	}
	journeysRaw, err := readOrDefault(journeysPath, defaultJourneysYAML)
	if err != nil {
		return nil, fmt.Errorf("catalog: journeys: %w", err)
	}

	var tf topicFile
	if err := yaml.Unmarshal(topicsRaw, &tf); err != nil {
		return nil, fmt.Errorf("catalog: parse topics: %w", err)
	}
	if err := tf.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: topics: %w", err)
	}

	var jf journeyFile
	if err := yaml.Unmarshal(journeysRaw, &jf); err != nil {
		return nil, fmt.Errorf("catalog: parse journeys: %w", err)
	}
	if err := jf.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: journeys: %w", err)
	}

	c := &Catalog{
		Topics:   make([]domain.Topic, 0, len(tf.Topics)),
		Journeys: make([]domain.Journey, 0, len(jf.Journeys)),
	}
	for _, t := range tf.Topics {
		c.Topics = append(c.Topics, domain.Topic{ID: t.ID, Title: t.Title})
	}
	for _, j := range jf.Journeys {
		c.Journeys = append(c.Journeys, domain.Journey{ID: j.ID, Name: j.Name})
	}

	return c, nil
}

func readOrDefault(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}
