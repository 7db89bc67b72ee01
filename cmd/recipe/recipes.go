package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/osse101/BakeWatt_Go/internal/cookbook"
	"github.com/osse101/BakeWatt_Go/internal/domain"
)

var errRecipeIDRequired = errors.New("recipe id required")

// parseRecipeArgs reads "[-scale N] <recipe-id>"
func parseRecipeArgs(name string, args []string) (string, float64, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	scale := fs.Float64("scale", cookbook.DefaultScaleFactor, "scale factor applied to the base recipe")
	if err := fs.Parse(args); err != nil {
		return "", 0, err
	}
	if fs.NArg() < 1 {
		return "", 0, errRecipeIDRequired
	}
	return fs.Arg(0), *scale, nil
}

type ListCommand struct {
	service cookbook.Service
}

func (c *ListCommand) Name() string        { return "list" }
func (c *ListCommand) Description() string { return "List available recipes" }

func (c *ListCommand) Run(ctx context.Context, _ []string, out io.Writer) error {
	recipes, err := c.service.ListRecipes(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDIFFICULTY\tSERVINGS\tSTEPS")
	for _, r := range recipes {
		name := r.Icon + " " + r.Name
		if r.Unstartable {
			name += " (unavailable)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", r.ID, name, r.Difficulty, r.BaseServings, r.StepCount)
	}
	return tw.Flush()
}

type ShowCommand struct {
	service cookbook.Service
}

func (c *ShowCommand) Name() string        { return "show" }
func (c *ShowCommand) Description() string { return "Print a scaled recipe with its instructions" }

func (c *ShowCommand) Run(ctx context.Context, args []string, out io.Writer) error {
	id, scale, err := parseRecipeArgs(c.Name(), args)
	if err != nil {
		return err
	}

	recipe, err := c.service.ProcessRecipe(ctx, id, scale)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s (%d servings, x%g)\n", recipe.Icon, recipe.Name, recipe.Servings, recipe.ScaleFactor)
	if recipe.Description != "" {
		fmt.Fprintln(out, recipe.Description)
	}
	if recipe.Unstartable {
		fmt.Fprintf(out, "\nNot available yet: %s\n", recipe.Notes)
		return nil
	}

	for _, step := range recipe.Steps {
		fmt.Fprintf(out, "\n%d. %s\n", step.Order, step.Name)
		for _, line := range step.Instructions {
			fmt.Fprintf(out, "   - %s\n", line)
		}
	}
	return nil
}

type CostCommand struct {
	service cookbook.Service
}

func (c *CostCommand) Name() string        { return "cost" }
func (c *CostCommand) Description() string { return "Print the ingredient cost breakdown" }

func (c *CostCommand) Run(ctx context.Context, args []string, out io.Writer) error {
	id, scale, err := parseRecipeArgs(c.Name(), args)
	if err != nil {
		return err
	}

	breakdown, err := c.service.RecipeCost(ctx, id, scale)
	if err != nil {
		return err
	}
	return writeCost(out, breakdown)
}

func writeCost(out io.Writer, breakdown *domain.CostBreakdown) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, entry := range breakdown.IngredientCosts {
		fmt.Fprintf(tw, "%s\t$%.2f\t\n", entry.Name, entry.Cost)
	}
	fmt.Fprintf(tw, "%s\t$%.2f\t\n", "Total", breakdown.TotalCost)
	return tw.Flush()
}

type ShoppingCommand struct {
	service cookbook.Service
}

func (c *ShoppingCommand) Name() string        { return "shopping" }
func (c *ShoppingCommand) Description() string { return "Print every ingredient needed, step by step" }

func (c *ShoppingCommand) Run(ctx context.Context, args []string, out io.Writer) error {
	id, scale, err := parseRecipeArgs(c.Name(), args)
	if err != nil {
		return err
	}

	items, err := c.service.ShoppingList(ctx, id, scale)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, item := range items {
		line := strings.TrimSpace(fmt.Sprintf("%s %s", item.Display, item.Unit))
		if item.Hint != "" {
			line += " (" + item.Hint + ")"
		}
		fmt.Fprintf(tw, "%s\t%s %s\t%s\n", item.StepID, item.Icon, item.Name, line)
	}
	return tw.Flush()
}
