package cmd

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/unitgraph/unitgraph/internal/conversion"
	"github.com/unitgraph/unitgraph/internal/db"
	"github.com/unitgraph/unitgraph/internal/log"
	"github.com/unitgraph/unitgraph/internal/numeric"
)

// CacheCommand represents the cache command group.
type CacheCommand struct{}

// GetCobraCommand returns the cobra command for factor cache operations.
func (c *CacheCommand) GetCobraCommand() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the persistent conversion factor cache",
	}

	cacheCmd.AddCommand(
		(&CacheListCommand{}).GetCobraCommand(),
		(&CachePurgeCommand{}).GetCobraCommand(),
	)

	return cacheCmd
}

// CacheListCommand lists cached conversion factors.
type CacheListCommand struct{}

// GetCobraCommand returns the cobra command for listing cached factors.
func (c *CacheListCommand) GetCobraCommand() *cobra.Command {
	var dimension string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List cached conversion factors",
		RunE: func(_ *cobra.Command, _ []string) error {
			conn, err := openFactorDB()
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			repo := db.NewFactorRepository(conn)
			var factors []db.Factor
			if dimension != "" {
				factors, err = repo.FindByDimension(dimension)
			} else {
				factors, err = repo.FindAll()
			}
			if err != nil {
				return err
			}

			headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
			columnFmt := color.New(color.FgYellow).SprintfFunc()
			tbl := table.New("ID", "Dimension", "From", "To", "Factor", "Abs Error", "Created At")
			tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

			for _, f := range factors {
				tbl.AddRow(f.ID, f.Dimension, f.SrcUnit, f.DestUnit, f.Value, f.AbsError, f.CreatedAt)
			}

			tbl.Print()
			return nil
		},
	}

	listCmd.Flags().StringVarP(&dimension, "dimension", "d", "", "Only list factors of this dimension code")

	return listCmd
}

// CachePurgeCommand drops cached conversion factors.
type CachePurgeCommand struct{}

// GetCobraCommand returns the cobra command for purging cached factors.
func (c *CachePurgeCommand) GetCobraCommand() *cobra.Command {
	var dimension string

	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove cached conversion factors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := openFactorDB()
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			repo := db.NewFactorRepository(conn)
			if dimension != "" {
				if err := repo.PurgeDimension(dimension); err != nil {
					return err
				}
				cmd.Printf("Purged cached factors for dimension %s\n", dimension)
				return nil
			}

			factors, err := repo.FindAll()
			if err != nil {
				return err
			}
			for _, f := range factors {
				if err := repo.Delete(f.ID); err != nil {
					return err
				}
			}
			cmd.Printf("Purged %d cached factors\n", len(factors))
			return nil
		},
	}

	purgeCmd.Flags().StringVarP(&dimension, "dimension", "d", "", "Only purge factors of this dimension code")

	return purgeCmd
}

// openFactorDB migrates and opens the factor cache database, creating its
// parent directory on first use.
func openFactorDB() (*sql.DB, error) {
	if dir := filepath.Dir(cfg.CacheDBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	if err := db.Up(*cfg); err != nil {
		return nil, err
	}
	return db.Connect()
}

// saveFactor writes one discovered conversion to the factor cache.
func saveFactor(conv *conversion.Conversion) error {
	dim := conv.SrcUnit().Dimension()
	conn, err := openFactorDB()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	repo := db.NewFactorRepository(conn)
	_, err = repo.Save(&db.Factor{
		Dimension: dim,
		SrcUnit:   conv.SrcUnit().String(),
		DestUnit:  conv.DestUnit().String(),
		Value:     conv.Factor().Value(),
		AbsError:  conv.Factor().AbsoluteError(),
	})
	return err
}

// warmConverter seeds a dimension converter from the factor cache. Missing
// or unreadable cache databases are not an error.
func warmConverter(dimension string) {
	if _, err := os.Stat(cfg.CacheDBPath); errors.Is(err, os.ErrNotExist) {
		return
	}
	conn, err := openFactorDB()
	if err != nil {
		log.GetLogger().Debug("Factor cache unavailable", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	cv, err := conversion.GetByDimension(dimension)
	if err != nil {
		return
	}
	factors, err := db.NewFactorRepository(conn).FindByDimension(cv.Dimension())
	if err != nil {
		log.GetLogger().Debug("Factor cache unreadable", "error", err)
		return
	}
	for _, f := range factors {
		entry := conversion.CacheEntry{
			SrcUnit:  f.SrcUnit,
			DestUnit: f.DestUnit,
			Factor:   numeric.NewWithError(f.Value, f.AbsError),
		}
		if err := cv.WarmCache(entry); err != nil {
			log.GetLogger().Debug("Skipping cached factor", "src", f.SrcUnit, "dest", f.DestUnit, "error", err)
		}
	}
}
