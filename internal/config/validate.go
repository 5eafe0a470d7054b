package config

import (
	"fmt"
)

// Validate checks cross-field constraints that tag-level validation
// cannot express.
func (c *Config) Validate() error {
	if c.Fields.Source == "" {
		return fmt.Errorf("fields.source must not be empty")
	}
	if c.Data.JmdictXML == "" && c.Data.JmdictCache == "" {
		return fmt.Errorf("either data.jmdict_xml or data.jmdict_cache must be set")
	}
	if c.Annotate.NumDefinitions < 1 {
		return fmt.Errorf("annotate.num_definitions must be positive, got %d", c.Annotate.NumDefinitions)
	}
	if c.Annotate.NumSentences < 0 {
		return fmt.Errorf("annotate.num_sentences must not be negative, got %d", c.Annotate.NumSentences)
	}
	if c.Fields.Alternates != "" && c.Fields.Meaning == "" {
		return fmt.Errorf("fields.alternates requires fields.meaning to be set")
	}
	return nil
}
