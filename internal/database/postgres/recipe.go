package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BakeWatt_Go/internal/domain"
	"github.com/osse101/BakeWatt_Go/internal/repository"
)

// querier is satisfied by both the pool and a transaction
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RecipeRepository implements repository.RecipeStore for PostgreSQL
type RecipeRepository struct {
	pool *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(pool *pgxpool.Pool) repository.RecipeStore {
	return &RecipeRepository{pool: pool}
}

// Ping verifies the database is reachable
func (r *RecipeRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

const templateColumns = `
	id, slug, name, icon, description, difficulty, base_servings,
	estimated_time_minutes, categories, unstartable, notes`

// ListTemplates loads every template with its steps and ingredients
func (r *RecipeRepository) ListTemplates(ctx context.Context) ([]domain.RecipeTemplate, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+templateColumns+` FROM recipe_templates ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTemplates, err)
	}
	templates, ids, err := scanTemplates(rows)
	if err != nil {
		return nil, err
	}

	if err := loadSteps(ctx, r.pool, templates, ids); err != nil {
		return nil, err
	}
	return templates, nil
}

// GetTemplate loads a single template by slug
func (r *RecipeRepository) GetTemplate(ctx context.Context, id string) (*domain.RecipeTemplate, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+templateColumns+` FROM recipe_templates WHERE slug = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTemplates, err)
	}
	templates, ids, err := scanTemplates(rows)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}

	if err := loadSteps(ctx, r.pool, templates, ids); err != nil {
		return nil, err
	}
	return &templates[0], nil
}

func scanTemplates(rows pgx.Rows) ([]domain.RecipeTemplate, []int32, error) {
	defer rows.Close()

	templates := make([]domain.RecipeTemplate, 0)
	ids := make([]int32, 0)
	for rows.Next() {
		var (
			id          int32
			t           domain.RecipeTemplate
			icon, notes pgtype.Text
			difficulty  string
			minutes     pgtype.Int4
		)
		if err := rows.Scan(&id, &t.ID, &t.Name, &icon, &t.Description, &difficulty,
			&t.BaseServings, &minutes, &t.Categories, &t.Unstartable, &notes); err != nil {
			return nil, nil, fmt.Errorf("failed to scan recipe template: %w", err)
		}

		t.Icon = textOr(icon, domain.DefaultRecipeIcon)
		t.Difficulty = domain.Difficulty(difficulty)
		t.EstimatedTime = domain.DefaultRecipeMinutes
		if minutes.Valid {
			t.EstimatedTime = int(minutes.Int32)
		}
		t.Notes = notes.String
		if t.Categories == nil {
			t.Categories = []string{}
		}
		t.Steps = []domain.RecipeStep{}

		templates = append(templates, t)
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating recipe templates: %w", err)
	}
	return templates, ids, nil
}

// stepRef locates a loaded step inside the templates slice
type stepRef struct {
	template int
	step     int
}

// loadSteps fills in the steps of templates, whose database ids are ids
func loadSteps(ctx context.Context, q querier, templates []domain.RecipeTemplate, ids []int32) error {
	if len(templates) == 0 {
		return nil
	}

	byRecipe := make(map[int32]int, len(ids))
	for i, id := range ids {
		byRecipe[id] = i
	}

	rows, err := q.Query(ctx, `
		SELECT id, recipe_id, slug, step_order, name, description,
		       instructions, parameters, estimated_time_minutes, temperature_f
		FROM recipe_steps
		WHERE recipe_id = ANY($1)
		ORDER BY recipe_id, step_order`, ids)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQuerySteps, err)
	}

	steps := make(map[int32]stepRef)
	stepIDs := make([]int32, 0)
	err = func() error {
		defer rows.Close()
		for rows.Next() {
			var (
				stepID, recipeID         int32
				step                     domain.RecipeStep
				instructions, parameters []byte
				minutes, temperature     pgtype.Int4
			)
			if err := rows.Scan(&stepID, &recipeID, &step.ID, &step.Order, &step.Name, &step.Description,
				&instructions, &parameters, &minutes, &temperature); err != nil {
				return fmt.Errorf("failed to scan recipe step: %w", err)
			}

			if err := decodeStepJSON(&step, instructions, parameters); err != nil {
				return err
			}
			step.EstimatedTime = ptrInt(minutes)
			step.Temperature = ptrInt(temperature)
			step.Ingredients = []domain.FlexibleIngredient{}
			step.Groups = []domain.IngredientGroup{}

			ti := byRecipe[recipeID]
			templates[ti].Steps = append(templates[ti].Steps, step)
			steps[stepID] = stepRef{template: ti, step: len(templates[ti].Steps) - 1}
			stepIDs = append(stepIDs, stepID)
		}
		return rows.Err()
	}()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQuerySteps, err)
	}

	return loadStepIngredients(ctx, q, templates, steps, stepIDs)
}

func decodeStepJSON(step *domain.RecipeStep, instructions, parameters []byte) error {
	step.Instructions = []string{}
	if len(instructions) > 0 {
		if err := json.Unmarshal(instructions, &step.Instructions); err != nil {
			return fmt.Errorf(ErrMsgFailedToDecodeStep+": %w", step.ID, err)
		}
	}

	step.Parameters = domain.StepParameters{}
	if len(parameters) > 0 {
		if err := json.Unmarshal(parameters, &step.Parameters); err != nil {
			return fmt.Errorf(ErrMsgFailedToDecodeStep+": %w", step.ID, err)
		}
	}
	return nil
}

func loadStepIngredients(ctx context.Context, q querier, templates []domain.RecipeTemplate, steps map[int32]stepRef, stepIDs []int32) error {
	if len(stepIDs) == 0 {
		return nil
	}

	rows, err := q.Query(ctx, `
		SELECT rsi.step_id, i.slug, i.name, i.unit, i.icon, i.base_price,
		       rsi.amount_type, rsi.fixed_amount, rsi.min_amount, rsi.max_amount,
		       rsi.recommended_amount, rsi.step_size, rsi.customization_hint,
		       rsi.group_name, rsi.group_description
		FROM recipe_step_ingredients rsi
		JOIN ingredients i ON i.id = rsi.ingredient_id
		WHERE rsi.step_id = ANY($1)
		ORDER BY rsi.step_id, rsi.position, rsi.id`, stepIDs)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQueryStepItems, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			stepID                         int32
			ing                            domain.Ingredient
			icon, hint, group, groupDesc   pgtype.Text
			amountType                     string
			fixed, minA, maxA, rec, stepSz pgtype.Float8
		)
		if err := rows.Scan(&stepID, &ing.ID, &ing.Name, &ing.Unit, &icon, &ing.CostPerUnit,
			&amountType, &fixed, &minA, &maxA, &rec, &stepSz, &hint, &group, &groupDesc); err != nil {
			return fmt.Errorf("failed to scan step ingredient: %w", err)
		}
		ing.Icon = textOr(icon, domain.DefaultIngredientIcon)

		flexible := domain.FlexibleIngredient{
			Ingredient: ing,
			Amount:     rowAmount(amountType, fixed, minA, maxA, rec, stepSz),
			Hint:       hint.String,
		}

		ref, ok := steps[stepID]
		if !ok {
			continue
		}
		step := &templates[ref.template].Steps[ref.step]
		if !group.Valid || group.String == "" {
			step.Ingredients = append(step.Ingredients, flexible)
			continue
		}
		addToGroup(step, group.String, textOr(groupDesc, groupDescription(group.String)), flexible)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToQueryStepItems, err)
	}
	return nil
}

// rowAmount applies the column defaults for missing amounts
func rowAmount(amountType string, fixed, minA, maxA, rec, stepSz pgtype.Float8) domain.Amount {
	if amountType == AmountTypeFlexible {
		return domain.Amount{Range: &domain.FlexibleAmount{
			Min:         floatOr(minA, DefaultFlexibleMin),
			Max:         floatOr(maxA, DefaultFlexibleMax),
			Recommended: floatOr(rec, DefaultFlexibleRecommend),
			Step:        floatOr(stepSz, DefaultFlexibleStep),
		}}
	}
	return domain.FixedAmount(floatOr(fixed, DefaultFixedAmount))
}

// addToGroup appends to the named group, creating it in first-seen order
func addToGroup(step *domain.RecipeStep, name, description string, ing domain.FlexibleIngredient) {
	for i := range step.Groups {
		if step.Groups[i].Name == name {
			step.Groups[i].Ingredients = append(step.Groups[i].Ingredients, ing)
			return
		}
	}
	step.Groups = append(step.Groups, domain.IngredientGroup{
		Name:        name,
		Description: description,
		Ingredients: []domain.FlexibleIngredient{ing},
	})
}

// groupDescription names well-known groups; others read "<name> ingredients"
func groupDescription(name string) string {
	switch name {
	case GroupDry:
		return GroupDescriptionDry
	case GroupWet:
		return GroupDescriptionWet
	case GroupFats:
		return GroupDescriptionFats
	case GroupMixins:
		return GroupDescriptionMixins
	default:
		return fmt.Sprintf(GroupDescriptionPattern, name)
	}
}

// ListIngredients returns every ingredient ordered by insertion
func (r *RecipeRepository) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	rows, err := r.pool.Query(ctx, `SELECT slug, name, unit, icon, base_price FROM ingredients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryIngredients, err)
	}
	defer rows.Close()

	ingredients := make([]domain.Ingredient, 0)
	for rows.Next() {
		var (
			ing  domain.Ingredient
			icon pgtype.Text
		)
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Unit, &icon, &ing.CostPerUnit); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ing.Icon = textOr(icon, domain.DefaultIngredientIcon)
		ingredients = append(ingredients, ing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ingredients: %w", err)
	}
	return ingredients, nil
}

// GetIngredient returns a single ingredient by slug
func (r *RecipeRepository) GetIngredient(ctx context.Context, id string) (*domain.Ingredient, error) {
	var (
		ing  domain.Ingredient
		icon pgtype.Text
	)
	err := r.pool.QueryRow(ctx,
		`SELECT slug, name, unit, icon, base_price FROM ingredients WHERE slug = $1`, id).
		Scan(&ing.ID, &ing.Name, &ing.Unit, &icon, &ing.CostPerUnit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrIngredientNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryIngredients, err)
	}
	ing.Icon = textOr(icon, domain.DefaultIngredientIcon)
	return &ing, nil
}

// UpsertIngredient inserts or updates an ingredient keyed by slug
func (r *RecipeRepository) UpsertIngredient(ctx context.Context, ingredient domain.Ingredient) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO ingredients (slug, name, unit, icon, base_price)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			unit = EXCLUDED.unit,
			icon = EXCLUDED.icon,
			base_price = EXCLUDED.base_price,
			updated_at = NOW()`,
		ingredient.ID, ingredient.Name, ingredient.Unit, strToText(ingredient.Icon), ingredient.CostPerUnit)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToUpsertIngredient+": %w", ingredient.ID, err)
	}
	return nil
}

// UpsertTemplate writes a template and replaces all of its steps in one
// transaction. Every referenced ingredient must already exist.
func (r *RecipeRepository) UpsertTemplate(ctx context.Context, template *domain.RecipeTemplate) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var recipeID int32
	err = tx.QueryRow(ctx, `
		INSERT INTO recipe_templates (slug, name, icon, description, difficulty, base_servings,
		                              estimated_time_minutes, categories, unstartable, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			icon = EXCLUDED.icon,
			description = EXCLUDED.description,
			difficulty = EXCLUDED.difficulty,
			base_servings = EXCLUDED.base_servings,
			estimated_time_minutes = EXCLUDED.estimated_time_minutes,
			categories = EXCLUDED.categories,
			unstartable = EXCLUDED.unstartable,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id`,
		template.ID, template.Name, strToText(template.Icon), template.Description, string(template.Difficulty),
		template.BaseServings, template.EstimatedTime, nonNil(template.Categories),
		template.Unstartable, strToText(template.Notes)).Scan(&recipeID)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToUpsertTemplate+": %w", template.ID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM recipe_steps WHERE recipe_id = $1`, recipeID); err != nil {
		return fmt.Errorf(ErrMsgFailedToClearSteps+": %w", template.ID, err)
	}

	for i := range template.Steps {
		if err := insertStep(ctx, tx, recipeID, &template.Steps[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func insertStep(ctx context.Context, tx pgx.Tx, recipeID int32, step *domain.RecipeStep) error {
	instructions, err := json.Marshal(nonNil(step.Instructions))
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToEncodeStep+": %w", step.ID, err)
	}
	parameters, err := json.Marshal(step.Parameters.Clone())
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToEncodeStep+": %w", step.ID, err)
	}

	var stepID int32
	err = tx.QueryRow(ctx, `
		INSERT INTO recipe_steps (recipe_id, slug, step_order, name, description, instructions,
		                          parameters, estimated_time_minutes, temperature_f)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		recipeID, step.ID, step.Order, step.Name, step.Description, instructions, parameters,
		ptrToInt4(step.EstimatedTime), ptrToInt4(step.Temperature)).Scan(&stepID)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToInsertStep+": %w", step.ID, err)
	}

	position := 0
	for _, ing := range step.Ingredients {
		if err := insertStepIngredient(ctx, tx, stepID, step.ID, position, "", "", ing); err != nil {
			return err
		}
		position++
	}
	for _, group := range step.Groups {
		for _, ing := range group.Ingredients {
			if err := insertStepIngredient(ctx, tx, stepID, step.ID, position, group.Name, group.Description, ing); err != nil {
				return err
			}
			position++
		}
	}
	return nil
}

func insertStepIngredient(ctx context.Context, tx pgx.Tx, stepID int32, stepSlug string, position int, group, groupDesc string, ing domain.FlexibleIngredient) error {
	amountType := AmountTypeFixed
	var fixed, minA, maxA, rec, stepSz pgtype.Float8
	if ing.Amount.IsFixed() {
		fixed = floatToFloat8(ing.Amount.Value)
	} else {
		amountType = AmountTypeFlexible
		r := ing.Amount.Range
		minA, maxA, rec = floatToFloat8(r.Min), floatToFloat8(r.Max), floatToFloat8(r.Recommended)
		if r.Step > 0 {
			stepSz = floatToFloat8(r.Step)
		}
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO recipe_step_ingredients (step_id, ingredient_id, position, amount_type,
		    fixed_amount, min_amount, max_amount, recommended_amount, step_size,
		    customization_hint, group_name, group_description)
		SELECT $1, i.id, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		FROM ingredients i WHERE i.slug = $2`,
		stepID, ing.Ingredient.ID, position, amountType, fixed, minA, maxA, rec, stepSz,
		strToText(ing.Hint), strToText(group), strToText(groupDesc))
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToInsertStepItem+": %w", ing.Ingredient.ID, stepSlug, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf(ErrMsgFailedToInsertStepItem+": %w", ing.Ingredient.ID, stepSlug, domain.ErrIngredientNotFound)
	}
	return nil
}

// nonNil keeps NOT NULL array and JSON columns from receiving NULL
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
