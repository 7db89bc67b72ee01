package catalog

import (
	"fmt"

	"github.com/osse101/BakeWatt_Go/internal/domain"
)

// Validate checks the catalog configuration for errors. It reports the first
// problem found, wrapped in ErrInvalidConfig.
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Ingredients.Ingredients) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoIngredientsDefined)
	}
	if len(config.Templates.Templates) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoTemplatesDefined)
	}

	known := make(map[string]bool, len(config.Ingredients.Ingredients))
	for _, ing := range config.Ingredients.Ingredients {
		if known[ing.ID] {
			return fmt.Errorf("%w: "+ErrMsgDuplicateIngredientID, ErrInvalidConfig, ing.ID)
		}
		known[ing.ID] = true
	}

	keys := make(map[string]string, len(config.Templates.Templates))
	for i := range config.Templates.Templates {
		def := &config.Templates.Templates[i]

		if err := validateTemplateDef(def, known); err != nil {
			return err
		}

		key := NormalizeKey(def.ID)
		if other, ok := keys[key]; ok {
			return fmt.Errorf("%w: "+ErrMsgDuplicateTemplateKey, ErrInvalidConfig, def.ID, other)
		}
		keys[key] = def.ID
	}

	return nil
}

func validateTemplateDef(def *TemplateDef, known map[string]bool) error {
	fail := func(msg string) error {
		return fmt.Errorf("%w: "+ErrMsgTemplateValidateFailed, ErrInvalidConfig, def.ID, msg)
	}

	if def.ID == "" {
		return fmt.Errorf("%w: template %s", ErrInvalidConfig, ErrMsgEmptyID)
	}
	if def.Name == "" {
		return fail(ErrMsgEmptyName)
	}
	if def.BaseServings <= 0 {
		return fail(ErrMsgNonPositiveServings)
	}
	if def.EstimatedTime < 0 {
		return fail(ErrMsgNegativeTime)
	}
	if !domain.Difficulty(def.Difficulty).Valid() {
		return fail(fmt.Sprintf(ErrMsgUnknownDifficulty, def.Difficulty))
	}
	if len(def.Steps) == 0 && !def.Unstartable {
		return fail(ErrMsgNoSteps)
	}

	stepIDs := make(map[string]bool, len(def.Steps))
	for i := range def.Steps {
		step := &def.Steps[i]

		if step.ID == "" {
			return fail("step " + ErrMsgEmptyID)
		}
		if stepIDs[step.ID] {
			return fail(fmt.Sprintf(ErrMsgDuplicateStepID, step.ID))
		}
		stepIDs[step.ID] = true

		if step.Order != i+1 {
			return fail(fmt.Sprintf(ErrMsgStepOrder, step.ID, step.Order, i+1))
		}
		if step.EstimatedTime != nil && *step.EstimatedTime < 0 {
			return fail(fmt.Sprintf("step %q %s", step.ID, ErrMsgNegativeTime))
		}

		if err := validateRefs(step.ID, step.Ingredients, known); err != nil {
			return fail(err.Error())
		}

		groups := make(map[string]bool, len(step.Groups))
		for _, group := range step.Groups {
			if group.Name == "" {
				return fail(fmt.Sprintf("step %q group %s", step.ID, ErrMsgEmptyName))
			}
			if groups[group.Name] {
				return fail(fmt.Sprintf(ErrMsgDuplicateGroup, step.ID, group.Name))
			}
			groups[group.Name] = true

			if err := validateRefs(step.ID, group.Ingredients, known); err != nil {
				return fail(err.Error())
			}
		}

		for key, raw := range step.Parameters {
			if _, err := domain.ParamValueOf(raw); err != nil {
				return fmt.Errorf("%w: "+ErrMsgTemplateValidateWrapped, ErrInvalidConfig, def.ID,
					fmt.Errorf(ErrMsgInvalidParameter, step.ID, key, err))
			}
		}
	}

	return nil
}

func validateRefs(stepID string, refs []IngredientRef, known map[string]bool) error {
	for _, ref := range refs {
		if !known[ref.Ingredient] {
			return fmt.Errorf(ErrMsgUnknownIngredient, stepID, ref.Ingredient)
		}
		if ref.Amount == nil || (ref.Amount.Fixed == nil && ref.Amount.Range == nil) {
			return fmt.Errorf(ErrMsgMissingAmount, stepID, ref.Ingredient)
		}
		if ref.Amount.Fixed != nil && *ref.Amount.Fixed < 0 {
			return fmt.Errorf(ErrMsgNegativeAmount, stepID, ref.Ingredient)
		}
		if r := ref.Amount.Range; r != nil {
			if r.Min < 0 {
				return fmt.Errorf(ErrMsgNegativeAmount, stepID, ref.Ingredient)
			}
			if r.Min > r.Recommended || r.Recommended > r.Max {
				return fmt.Errorf(ErrMsgUnorderedRange, stepID, ref.Ingredient)
			}
		}
	}
	return nil
}
