package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/ppinet/edgelist"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags and cross-field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	for i, s := range c.Sources {
		if err := s.validateColumns(); err != nil {
			return fmt.Errorf("%w: sources[%d] %q: %w", ErrInvalid, i, s.Name, err)
		}
	}

	return nil
}

func (s Source) validateColumns() error {
	explicit := s.SourceColumn != "" || s.TargetColumn != ""
	switch {
	case s.Preset != "" && explicit:
		return errors.New("preset and explicit columns are mutually exclusive")
	case s.Preset == "" && (s.SourceColumn == "" || s.TargetColumn == ""):
		return errors.New("either preset or both source_column and target_column are required")
	case explicit && s.SourceColumn == s.TargetColumn:
		return errors.New("source_column and target_column must differ")
	}
	if s.Preset != "" {
		if _, err := edgelist.LookupPreset(s.Preset); err != nil {
			return fmt.Errorf("%w (known: %s)", err, strings.Join(edgelist.PresetNames(), ", "))
		}
	}

	return nil
}
