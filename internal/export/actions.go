package export

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/opsecfreak/webintel/internal/common"
	"github.com/opsecfreak/webintel/models"
	"github.com/opsecfreak/webintel/pkg/export"
	"github.com/opsecfreak/webintel/pkg/query"
)

// ExportAction renders a dataset view into a CSV or HTML file in the
// output directory. The filter/sort flags shape what gets exported.
func ExportAction(c *cli.Context) error {
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

	file, err := buildExport(c, view)
	if err != nil {
		return err
	}
	if name := c.String("output"); name != "" {
		file.Filename = name
	}

	path, err := store.DeliverExport(file)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %s\n", path)
	return nil
}

func buildExport(c *cli.Context, view *models.ScrapedData) (export.File, error) {
	report := c.String("report")
	format := c.String("format")

	switch report {
	case "full", "":
		if format == "html" {
			content, err := export.FullReportHTML(view)
			if err != nil {
				return export.File{}, err
			}
			return export.HTMLFile("full-report.html", content), nil
		}
		return export.CSVFile("full-report.csv", export.FullReportCSV(view)), nil

	case "products":
		return export.CSVFile("products.csv", export.ProductCSV(view.Products)), nil

	case "qa":
		return export.CSVFile("qa-items.csv", export.QACSV(view.QAItems)), nil

	case "parts":
		return export.CSVFile("parts-list.csv", export.PartsListCSV(view.Products)), nil

	case "mentions":
		return export.CSVFile("mentions.csv", export.MentionsCSV(view.Products)), nil

	case "product":
		p, err := findProduct(view, c.String("id"))
		if err != nil {
			return export.File{}, err
		}
		content, err := export.ProductHTML(p)
		if err != nil {
			return export.File{}, err
		}
		return export.HTMLFile(fmt.Sprintf("product-%s.html", p.ID), content), nil

	case "qa-item":
		qa, err := findQA(view, c.String("id"))
		if err != nil {
			return export.File{}, err
		}
		content, err := export.QAHTML(qa)
		if err != nil {
			return export.File{}, err
		}
		return export.HTMLFile(fmt.Sprintf("qa-%s.html", qa.ID), content), nil
	}

	return export.File{}, fmt.Errorf("unknown report type: %s", report)
}

func findProduct(data *models.ScrapedData, id string) (models.Product, error) {
	if id == "" {
		return models.Product{}, fmt.Errorf("--id is required for a single-product export")
	}
	for _, p := range data.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("product %s not found", id)
}

func findQA(data *models.ScrapedData, id string) (models.QAItem, error) {
	if id == "" {
		return models.QAItem{}, fmt.Errorf("--id is required for a single Q&A export")
	}
	for _, qa := range data.QAItems {
		if qa.ID == id {
			return qa, nil
		}
	}
	return models.QAItem{}, fmt.Errorf("qa item %s not found", id)
}
