package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/osse101/BakeWatt_Go/internal/validation"
)

//go:embed data/*.json data/*.yaml
var bundled embed.FS

// Sentinel errors for the catalog loader
var (
	ErrInvalidConfig = errors.New("invalid catalog configuration")
)

// Config is the raw, unresolved catalog: ingredients from JSON and templates
// from YAML. Templates reference ingredients by id.
type Config struct {
	Ingredients IngredientsFile
	Templates   TemplatesFile
}

// IngredientsFile mirrors data/ingredients.json
type IngredientsFile struct {
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Ingredients []IngredientDef `json:"ingredients"`
}

// IngredientDef is a single ingredient definition
type IngredientDef struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Icon        string  `json:"icon,omitempty"`
	CostPerUnit float64 `json:"cost_per_unit"`
}

// TemplatesFile mirrors data/templates.yaml
type TemplatesFile struct {
	Version     string        `yaml:"version"`
	Description string        `yaml:"description"`
	Templates   []TemplateDef `yaml:"templates"`
}

// TemplateDef is a single recipe template definition
type TemplateDef struct {
	ID            string    `yaml:"id"`
	Name          string    `yaml:"name"`
	Icon          string    `yaml:"icon"`
	Description   string    `yaml:"description"`
	Difficulty    string    `yaml:"difficulty"`
	BaseServings  int       `yaml:"base_servings"`
	EstimatedTime int       `yaml:"estimated_time"`
	Categories    []string  `yaml:"categories"`
	Unstartable   bool      `yaml:"unstartable"`
	Notes         string    `yaml:"notes"`
	Steps         []StepDef `yaml:"steps"`
}

// StepDef is a single step definition
type StepDef struct {
	ID            string                 `yaml:"id"`
	Name          string                 `yaml:"name"`
	Description   string                 `yaml:"description"`
	Order         int                    `yaml:"order"`
	EstimatedTime *int                   `yaml:"estimated_time"`
	Temperature   *int                   `yaml:"temperature"`
	Instructions  []string               `yaml:"instructions"`
	Ingredients   []IngredientRef        `yaml:"ingredients"`
	Groups        []GroupDef             `yaml:"groups"`
	Parameters    map[string]interface{} `yaml:"parameters"`
}

// GroupDef is a named ingredient group within a step
type GroupDef struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Ingredients []IngredientRef `yaml:"ingredients"`
}

// IngredientRef points at a catalog ingredient with an authored amount
type IngredientRef struct {
	Ingredient string     `yaml:"ingredient"`
	Amount     *AmountDef `yaml:"amount"`
	Hint       string     `yaml:"hint"`
}

// AmountDef is either a fixed number or a flexible range
type AmountDef struct {
	Fixed *float64
	Range *RangeDef
}

// RangeDef is the flexible form of an amount
type RangeDef struct {
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	Recommended float64 `yaml:"recommended"`
	Step        float64 `yaml:"step"`
}

// UnmarshalYAML accepts a scalar number or a {min, max, recommended} mapping
func (a *AmountDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: %s: %w", node.Line, ErrMsgInvalidAmountNode, err)
		}
		a.Fixed = &v
	case yaml.MappingNode:
		var r RangeDef
		if err := node.Decode(&r); err != nil {
			return fmt.Errorf("line %d: %s: %w", node.Line, ErrMsgInvalidAmountNode, err)
		}
		a.Range = &r
	default:
		return fmt.Errorf("line %d: %s", node.Line, ErrMsgInvalidAmountNode)
	}
	return nil
}

// Loader reads catalog files from a filesystem
type Loader interface {
	Load() (*Config, error)
}

type fsLoader struct {
	fsys            fs.FS
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a loader over fsys. The filesystem must contain the
// ingredient schema next to the data files.
func NewLoader(fsys fs.FS) Loader {
	return &fsLoader{
		fsys:            fsys,
		schemaValidator: validation.NewSchemaValidator(fsys),
	}
}

// NewBundledLoader creates a loader over the catalog compiled into the binary
func NewBundledLoader() Loader {
	return NewLoader(bundled)
}

// Load reads and parses both catalog files
func (l *fsLoader) Load() (*Config, error) {
	ingredients, err := l.loadIngredients()
	if err != nil {
		return nil, err
	}

	templates, err := l.loadTemplates()
	if err != nil {
		return nil, err
	}

	return &Config{Ingredients: *ingredients, Templates: *templates}, nil
}

func (l *fsLoader) loadIngredients() (*IngredientsFile, error) {
	data, err := fs.ReadFile(l.fsys, IngredientsPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadIngredientsFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, IngredientsSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", IngredientsPath, err)
	}

	var file IngredientsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseIngredientsFailed, err)
	}
	return &file, nil
}

func (l *fsLoader) loadTemplates() (*TemplatesFile, error) {
	data, err := fs.ReadFile(l.fsys, TemplatesPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadTemplatesFailed, err)
	}

	var file TemplatesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseTemplatesFailed, err)
	}
	return &file, nil
}
