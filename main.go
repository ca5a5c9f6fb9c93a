package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/opsecfreak/webintel/internal/analyze"
	"github.com/opsecfreak/webintel/internal/common"
	exportaction "github.com/opsecfreak/webintel/internal/export"
	queryaction "github.com/opsecfreak/webintel/internal/query"
	"github.com/opsecfreak/webintel/internal/runs"
	"github.com/opsecfreak/webintel/internal/server"
	"github.com/opsecfreak/webintel/internal/sources"
)

func main() {
	// .env is optional; GEMINI_API_KEY may come from the real environment.
	_ = godotenv.Load()

	if os.Getenv("WEBINTEL_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	app := &cli.App{
		Name:  "webintel",
		Usage: "extract product and Q&A intelligence from forum and shop URLs",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to YAML config file"},
		},
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "run a model analysis over source URLs and save the dataset",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "urls", Usage: "comma-separated source URLs (default: saved sources)"},
					&cli.StringFlag{Name: "topic", Usage: "focus the analysis on a topic"},
					&cli.IntFlag{Name: "max-results", Usage: "cap on products and Q&A items"},
					&cli.IntFlag{Name: "depth", Usage: "how many linked pages per source to consider"},
				},
				Action: analyze.AnalyzeAction,
			},
			{
				Name:  "query",
				Usage: "filter and sort a saved dataset, printed as YAML",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "input", Usage: "dataset artifact path (default: latest)"},
					&cli.BoolFlag{Name: "stats", Usage: "print summary stats of the view instead of the data"},
				}, common.CriteriaFlags...),
				Action: queryaction.QueryAction,
			},
			{
				Name:  "summary",
				Usage: "print headline stats for a saved dataset",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Usage: "dataset artifact path (default: latest)"},
				},
				Action: queryaction.SummaryAction,
			},
			{
				Name:  "export",
				Usage: "render a dataset view to a CSV or HTML file",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "input", Usage: "dataset artifact path (default: latest)"},
					&cli.StringFlag{Name: "format", Value: "csv", Usage: "csv or html"},
					&cli.StringFlag{Name: "report", Value: "full", Usage: "full, products, qa, parts, mentions, product, qa-item"},
					&cli.StringFlag{Name: "id", Usage: "item id for product / qa-item reports"},
					&cli.StringFlag{Name: "output", Usage: "override the output filename"},
				}, common.CriteriaFlags...),
				Action: exportaction.ExportAction,
			},
			{
				Name:  "sources",
				Usage: "manage the persisted source-URL list",
				Subcommands: []*cli.Command{
					{Name: "list", Usage: "print saved sources", Action: sources.ListAction},
					{Name: "add", Usage: "add a source URL", ArgsUsage: "<url>", Action: sources.AddAction},
					{Name: "remove", Usage: "remove a source URL", ArgsUsage: "<url>", Action: sources.RemoveAction},
					{Name: "clear", Usage: "remove all saved sources", Action: sources.ClearAction},
				},
			},
			{
				Name:  "runs",
				Usage: "inspect recorded analysis runs",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "max runs to list"},
				},
				Action: runs.RunsAction,
				Subcommands: []*cli.Command{
					{Name: "show", Usage: "show one run", ArgsUsage: "<id>", Action: runs.RunAction},
				},
			},
			{
				Name:  "serve",
				Usage: "expose the pipeline over HTTP",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Usage: "listen address (default from config)"},
				},
				Action: server.ServeAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
