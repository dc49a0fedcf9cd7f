package catalog

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// Validate checks every topic entry and rejects duplicate ids.
func (f topicFile) Validate() error {
	if err := validation.Validate(f.Topics, validation.Required); err != nil {
		return err
	}

	seen := make(map[int]bool, len(f.Topics))
	for _, t := range f.Topics {
		if seen[t.ID] {
			return fmt.Errorf("duplicate topic id %d", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

func (t topicEntry) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Required, validation.Min(1)),
		validation.Field(&t.Title, validation.Required, validation.Length(1, 200)),
	)
}

// Validate checks every journey entry and rejects slugs that collide
// case-insensitively, since mention resolution folds case on ids.
func (f journeyFile) Validate() error {
	if err := validation.Validate(f.Journeys, validation.Required); err != nil {
		return err
	}

	seen := make(map[string]bool, len(f.Journeys))
	for _, j := range f.Journeys {
		key := strings.ToLower(j.ID)
		if seen[key] {
			return fmt.Errorf("duplicate journey id %q", j.ID)
		}
		seen[key] = true
	}
	return nil
}

func (j journeyEntry) Validate() error {
	return validation.ValidateStruct(&j,
		validation.Field(&j.ID, validation.Required, validation.Match(slugPattern)),
		validation.Field(&j.Name, validation.Required, validation.Length(1, 200)),
	)
}
