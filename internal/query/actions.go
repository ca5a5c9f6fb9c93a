package query

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/opsecfreak/webintel/internal/common"
	"github.com/opsecfreak/webintel/pkg/query"
	"github.com/opsecfreak/webintel/pkg/summary"
)

// QueryAction loads a dataset artifact, applies the filter/sort criteria,
// and prints the resulting view as YAML.
func QueryAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	store, err := common.OpenStorage(cfg)
	if err != nil {
		return err
	}

	data, err := store.LoadDataset(c.String("input"))
	if err != nil {
		return err
	}

	view := query.View(data, common.CriteriaFromFlags(c))

	if c.Bool("stats") {
		return printYAML(summary.Compute(view))
	}
	return printYAML(view)
}

// SummaryAction prints the headline stats for a dataset artifact.
func SummaryAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	store, err := common.OpenStorage(cfg)
	if err != nil {
		return err
	}

	data, err := store.LoadDataset(c.String("input"))
	if err != nil {
		return err
	}
	return printYAML(summary.Compute(data))
}

func printYAML(v any) error {
	yamlBytes, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}
