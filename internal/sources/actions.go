package sources

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/opsecfreak/webintel/internal/common"
	"github.com/opsecfreak/webintel/pkg/db"
)

func open(c *cli.Context) (*db.DB, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, err
	}
	return common.OpenDB(cfg)
}

// ListAction prints the persisted source URLs in order.
func ListAction(c *cli.Context) error {
	database, err := open(c)
	if err != nil {
		return err
	}
	defer database.Close()

	urls, err := database.LoadSources()
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		fmt.Println("No sources saved")
		return nil
	}
	for i, u := range urls {
		fmt.Printf("%3d. %s\n", i+1, u)
	}
	return nil
}

// AddAction appends a source URL after sanitizing and validating it.
func AddAction(c *cli.Context) error {
	raw := c.Args().First()
	if raw == "" {
		return fmt.Errorf("usage: sources add <url>")
	}
	valid, invalid := common.SanitizeAndValidateURLs([]string{raw})
	if len(invalid) > 0 || len(valid) == 0 {
		return fmt.Errorf("invalid URL: %s", raw)
	}

	database, err := open(c)
	if err != nil {
		return err
	}
	defer database.Close()

	changed, err := database.AddSource(valid[0])
	if err != nil {
		return err
	}
	if !changed {
		fmt.Printf("Already saved: %s\n", valid[0])
		return nil
	}
	fmt.Printf("Added: %s\n", valid[0])
	return nil
}

// RemoveAction deletes a source URL.
func RemoveAction(c *cli.Context) error {
	url := c.Args().First()
	if url == "" {
		return fmt.Errorf("usage: sources remove <url>")
	}

	database, err := open(c)
	if err != nil {
		return err
	}
	defer database.Close()

	changed, err := database.RemoveSource(url)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Printf("Not found: %s\n", url)
		return nil
	}
	fmt.Printf("Removed: %s\n", url)
	return nil
}

// ClearAction empties the persisted source list.
func ClearAction(c *cli.Context) error {
	database, err := open(c)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.SaveSources(nil); err != nil {
		return err
	}
	fmt.Println("Sources cleared")
	return nil
}
