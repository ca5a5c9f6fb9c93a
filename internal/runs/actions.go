package runs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/opsecfreak/webintel/internal/common"
)

// RunsAction lists recorded analysis runs, newest first.
func RunsAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	database, err := common.OpenDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-20s %-6s %-9s %-6s %-8s\n",
		"ID", "Created", "Model", "URLs", "Products", "Q&A", "Status")
	fmt.Println(strings.Repeat("-", 80))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-20s %-6d %-9d %-6d %-8s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Model,
			r.URLCount,
			r.ProductCount,
			r.QACount,
			r.Status,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'webintel runs show <id>' to see details\n")
	return nil
}

// RunAction shows details for one run.
func RunAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	database, err := common.OpenDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	arg := c.Args().First()
	if arg == "" {
		return fmt.Errorf("usage: runs show <id>")
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id: %s", arg)
	}

	run, err := database.GetRunByID(id)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:   %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Model:     %s\n", run.Model)
	if run.Topic != "" {
		fmt.Printf("Topic:     %s\n", run.Topic)
	}
	fmt.Printf("URLs:      %d\n", run.URLCount)
	fmt.Printf("Products:  %d\n", run.ProductCount)
	fmt.Printf("Q&A items: %d\n", run.QACount)
	fmt.Printf("Status:    %s\n", run.Status)
	if run.ErrorMessage != "" {
		fmt.Printf("Error:     %s\n", run.ErrorMessage)
	}
	if run.ArtifactPath != "" {
		fmt.Printf("Artifact:  %s\n", run.ArtifactPath)
	}
	return nil
}
