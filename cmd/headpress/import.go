package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/headpress"
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import markdown posts into the SQLite mirror",
	Long: `import reads every *.md file in dir. Each file starts with a YAML front
matter block (title, slug, date, categories, author, image, format) followed
by a markdown or HTML body. Posts are upserted by slug.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(v)
		if err != nil {
			return err
		}
		defer logger.Sync()

		cfg := siteConfig(v)
		store, err := headpress.NewStore(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		n, err := headpress.NewImporter(store, cfg.StaticDir, logger).ImportDir(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		logger.Info("import finished", zap.Int("posts", n), zap.String("database", cfg.DatabasePath))
		return nil
	},
}
