// Package catalog provides the recipe templates and ingredients that ship with
// the binary. It is the offline provider used when no database is configured
// and the seed data synced into one when it is.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/BakeWatt_Go/internal/domain"
	"github.com/osse101/BakeWatt_Go/internal/logger"
	"github.com/osse101/BakeWatt_Go/internal/recipe"
)

// NormalizeKey maps any spelling of a template id to its lookup key:
// trimmed, lowercased, with underscores and spaces turned into hyphens.
// CHOCOLATE_COOKIES, chocolate-cookies and "Chocolate Cookies" all resolve to
// chocolate-cookies.
func NormalizeKey(id string) string {
	key := strings.ToLower(strings.TrimSpace(id))
	return strings.NewReplacer("_", "-", " ", "-").Replace(key)
}

// Catalog is a read-only, in-memory template and ingredient provider
type Catalog struct {
	templates   []domain.RecipeTemplate
	byKey       map[string]int
	ingredients []domain.Ingredient
	byID        map[string]int
}

// Load reads, validates and resolves the catalog bundled into the binary
func Load(ctx context.Context) (*Catalog, error) {
	return LoadFrom(ctx, NewBundledLoader())
}

// LoadFrom reads, validates and resolves a catalog from loader
func LoadFrom(ctx context.Context, loader Loader) (*Catalog, error) {
	config, err := loader.Load()
	if err != nil {
		return nil, err
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	c, err := Build(config)
	if err != nil {
		return nil, err
	}

	c.warnUnresolved(ctx)
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded,
		"templates", len(c.templates),
		"ingredients", len(c.ingredients))

	return c, nil
}

// Build resolves ingredient references and produces the catalog.
// The config should already have passed Validate.
func Build(config *Config) (*Catalog, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	c := &Catalog{
		templates:   make([]domain.RecipeTemplate, 0, len(config.Templates.Templates)),
		byKey:       make(map[string]int, len(config.Templates.Templates)),
		ingredients: make([]domain.Ingredient, 0, len(config.Ingredients.Ingredients)),
		byID:        make(map[string]int, len(config.Ingredients.Ingredients)),
	}

	for _, def := range config.Ingredients.Ingredients {
		icon := def.Icon
		if icon == "" {
			icon = domain.DefaultIngredientIcon
		}
		c.byID[def.ID] = len(c.ingredients)
		c.ingredients = append(c.ingredients, domain.Ingredient{
			ID:          def.ID,
			Name:        def.Name,
			Unit:        def.Unit,
			Icon:        icon,
			CostPerUnit: def.CostPerUnit,
		})
	}

	for i := range config.Templates.Templates {
		template, err := c.buildTemplate(&config.Templates.Templates[i])
		if err != nil {
			return nil, err
		}
		c.byKey[NormalizeKey(template.ID)] = len(c.templates)
		c.templates = append(c.templates, template)
	}

	return c, nil
}

func (c *Catalog) buildTemplate(def *TemplateDef) (domain.RecipeTemplate, error) {
	icon := def.Icon
	if icon == "" {
		icon = domain.DefaultRecipeIcon
	}

	template := domain.RecipeTemplate{
		ID:            def.ID,
		Name:          def.Name,
		Icon:          icon,
		Description:   def.Description,
		Difficulty:    domain.Difficulty(def.Difficulty),
		BaseServings:  def.BaseServings,
		EstimatedTime: def.EstimatedTime,
		Categories:    append([]string{}, def.Categories...),
		Steps:         make([]domain.RecipeStep, 0, len(def.Steps)),
		Unstartable:   def.Unstartable,
		Notes:         def.Notes,
	}

	for i := range def.Steps {
		step, err := c.buildStep(&def.Steps[i])
		if err != nil {
			return domain.RecipeTemplate{}, fmt.Errorf("%w: "+ErrMsgTemplateValidateWrapped, ErrInvalidConfig, def.ID, err)
		}
		template.Steps = append(template.Steps, step)
	}

	return template, nil
}

func (c *Catalog) buildStep(def *StepDef) (domain.RecipeStep, error) {
	step := domain.RecipeStep{
		ID:           def.ID,
		Name:         def.Name,
		Description:  def.Description,
		Order:        def.Order,
		Instructions: append([]string{}, def.Instructions...),
		Groups:       make([]domain.IngredientGroup, 0, len(def.Groups)),
		Parameters:   make(domain.StepParameters, len(def.Parameters)),
	}
	if def.EstimatedTime != nil {
		step.EstimatedTime = domain.IntPtr(*def.EstimatedTime)
	}
	if def.Temperature != nil {
		step.Temperature = domain.IntPtr(*def.Temperature)
	}

	ingredients, err := c.resolveRefs(def.ID, def.Ingredients)
	if err != nil {
		return domain.RecipeStep{}, err
	}
	step.Ingredients = ingredients

	for _, group := range def.Groups {
		resolved, err := c.resolveRefs(def.ID, group.Ingredients)
		if err != nil {
			return domain.RecipeStep{}, err
		}
		step.Groups = append(step.Groups, domain.IngredientGroup{
			Name:        group.Name,
			Description: group.Description,
			Ingredients: resolved,
		})
	}

	for key, raw := range def.Parameters {
		value, err := domain.ParamValueOf(raw)
		if err != nil {
			return domain.RecipeStep{}, fmt.Errorf(ErrMsgInvalidParameter, def.ID, key, err)
		}
		step.Parameters[key] = value
	}

	return step, nil
}

func (c *Catalog) resolveRefs(stepID string, refs []IngredientRef) ([]domain.FlexibleIngredient, error) {
	out := make([]domain.FlexibleIngredient, 0, len(refs))
	for _, ref := range refs {
		idx, ok := c.byID[ref.Ingredient]
		if !ok {
			return nil, fmt.Errorf(ErrMsgUnknownIngredient, stepID, ref.Ingredient)
		}
		if ref.Amount == nil {
			return nil, fmt.Errorf(ErrMsgMissingAmount, stepID, ref.Ingredient)
		}

		var amount domain.Amount
		switch {
		case ref.Amount.Range != nil:
			r := ref.Amount.Range
			amount = domain.Amount{Range: &domain.FlexibleAmount{
				Min:         r.Min,
				Max:         r.Max,
				Recommended: r.Recommended,
				Step:        r.Step,
			}}
		case ref.Amount.Fixed != nil:
			amount = domain.FixedAmount(*ref.Amount.Fixed)
		default:
			return nil, fmt.Errorf(ErrMsgMissingAmount, stepID, ref.Ingredient)
		}

		out = append(out, domain.FlexibleIngredient{
			Ingredient: c.ingredients[idx],
			Amount:     amount,
			Hint:       ref.Hint,
		})
	}
	return out, nil
}

// warnUnresolved logs steps whose instructions would keep a literal
// placeholder after substitution. Such templates still load.
func (c *Catalog) warnUnresolved(ctx context.Context) {
	log := logger.FromContext(ctx)
	for i := range c.templates {
		t := &c.templates[i]
		for j := range t.Steps {
			processed := recipe.ProcessStep(&t.Steps[j], 1)
			if tokens := recipe.UnresolvedPlaceholders(processed.Instructions); len(tokens) > 0 {
				log.Warn(LogMsgUnresolvedPlaceholders,
					"template", t.ID,
					"step", t.Steps[j].ID,
					"placeholders", tokens)
			}
		}
	}
}

// ListTemplates returns deep copies of every template in catalog order
func (c *Catalog) ListTemplates(_ context.Context) ([]domain.RecipeTemplate, error) {
	out := make([]domain.RecipeTemplate, len(c.templates))
	for i := range c.templates {
		out[i] = *c.templates[i].Clone()
	}
	return out, nil
}

// GetTemplate looks a template up by any spelling NormalizeKey accepts
func (c *Catalog) GetTemplate(_ context.Context, id string) (*domain.RecipeTemplate, error) {
	idx, ok := c.byKey[NormalizeKey(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}
	return c.templates[idx].Clone(), nil
}

// ListIngredients returns every ingredient in catalog order
func (c *Catalog) ListIngredients(_ context.Context) ([]domain.Ingredient, error) {
	out := make([]domain.Ingredient, len(c.ingredients))
	copy(out, c.ingredients)
	return out, nil
}

// GetIngredient looks an ingredient up by exact id
func (c *Catalog) GetIngredient(_ context.Context, id string) (*domain.Ingredient, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrIngredientNotFound, id)
	}
	ing := c.ingredients[idx]
	return &ing, nil
}
