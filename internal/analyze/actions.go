package analyze

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/opsecfreak/webintel/internal/common"
	"github.com/opsecfreak/webintel/models"
	"github.com/opsecfreak/webintel/pkg/db"
	"github.com/opsecfreak/webintel/pkg/genai"
	"github.com/opsecfreak/webintel/pkg/summary"
)

// AnalyzeAction runs one full analysis: resolve source URLs, call the model,
// validate, save the dataset artifact, and record the run.
func AnalyzeAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	database, err := common.OpenDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	urls, err := resolveSources(c, database)
	if err != nil {
		return err
	}

	opts := models.ScrapeOptions{
		URLs:       urls,
		Topic:      c.String("topic"),
		MaxResults: c.Int("max-results"),
		CrawlDepth: c.Int("depth"),
	}

	client := genai.NewClient(cfg)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Analyzing %d source(s) with %s...", len(urls), cfg.Model)
	s.Start()
	data, analyzeErr := client.Analyze(c.Context, opts)
	s.Stop()

	run := db.Run{
		Model:    cfg.Model,
		Topic:    opts.Topic,
		URLCount: len(opts.URLs),
	}
	if analyzeErr != nil {
		run.Status = db.RunStatusFailed
		run.ErrorMessage = analyzeErr.Error()
		if _, recErr := database.RecordRun(run); recErr != nil {
			log.Warn("failed to record run", "err", recErr)
		}
		return analyzeErr
	}

	store, err := common.OpenStorage(cfg)
	if err != nil {
		return err
	}
	artifactPath, err := store.SaveDataset(data)
	if err != nil {
		return err
	}

	run.Status = db.RunStatusOK
	run.ProductCount = len(data.Products)
	run.QACount = len(data.QAItems)
	run.ArtifactPath = artifactPath
	if _, err := database.RecordRun(run); err != nil {
		log.Warn("failed to record run", "err", err)
	}

	printSummary(data, artifactPath)
	return nil
}

// resolveSources takes URLs from --urls when given, otherwise from the
// persisted source list. Invalid URLs are reported and skipped; at least one
// valid URL must remain.
func resolveSources(c *cli.Context, store interface {
	LoadSources() ([]string, error)
}) ([]string, error) {
	var raw []string
	if urlsStr := c.String("urls"); urlsStr != "" {
		raw = strings.Split(urlsStr, ",")
	} else {
		saved, err := store.LoadSources()
		if err != nil {
			return nil, err
		}
		raw = saved
	}

	valid, invalid := common.SanitizeAndValidateURLs(raw)
	for _, u := range invalid {
		log.Warn("skipping invalid source URL", "url", u)
	}
	if len(valid) == 0 {
		return nil, genai.ErrNoSources
	}
	return valid, nil
}

func printSummary(data *models.ScrapedData, artifactPath string) {
	stats := summary.Compute(data)

	fmt.Fprintf(os.Stdout, "Analysis complete.\n")
	fmt.Fprintf(os.Stdout, "  Products:   %d (%d priced)\n", stats.ProductCount, stats.PricedCount)
	fmt.Fprintf(os.Stdout, "  Q&A items:  %d\n", stats.QACount)
	if stats.PricedCount > 0 {
		fmt.Fprintf(os.Stdout, "  Avg price:  %.2f\n", stats.AveragePrice)
	}
	if len(stats.TopKeywords) > 0 {
		fmt.Fprintf(os.Stdout, "  Keywords:   %s\n", strings.Join(stats.TopKeywords, ", "))
	}
	fmt.Fprintf(os.Stdout, "  Saved to:   %s\n", artifactPath)
}
