// Command landtree renders the land ownership tree of a company from the
// company relations and land ownership CSV sources.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/asakaida/landtree/internal/infrastructure/config"
	"github.com/asakaida/landtree/internal/repositories/csvstore"
	"github.com/asakaida/landtree/internal/services"
)

const (
	defaultRelationsPath = "company_relations.csv"
	defaultOwnershipPath = "land_ownership.csv"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		fromRoot      bool
		relationsPath string
		ownershipPath string
	)

	cmd := &cobra.Command{
		Use:   "landtree <company_id>",
		Short: "Visualise corporate structure and quantity of land ownership",
		Long: `landtree reads company relations and land ownership CSV data and prints
an indented company tree. Each line carries the aggregate number of land
parcels owned by that company and all of its descendants.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			relations, ownership := resolveDataPaths(relationsPath, ownershipPath)
			return run(cmd.Context(), cmd.OutOrStdout(), args[0], fromRoot, relations, ownership)
		},
	}

	cmd.Flags().BoolVar(&fromRoot, "from_root", false, "render from the company's top-level ancestor")
	cmd.Flags().StringVar(&relationsPath, "relations", "", "path to the company relations CSV (default from config)")
	cmd.Flags().StringVar(&ownershipPath, "ownership", "", "path to the land ownership CSV (default from config)")

	return cmd
}

// resolveDataPaths fills missing path flags from configuration, falling back
// to the conventional filenames when no configuration is reachable (e.g. the
// binary runs outside a project checkout).
func resolveDataPaths(relations, ownership string) (string, string) {
	if relations != "" && ownership != "" {
		return relations, ownership
	}

	defRelations, defOwnership := defaultRelationsPath, defaultOwnershipPath
	if err := config.InitConfig(os.Getenv("ENV")); err == nil {
		if cfg, err := config.Load(); err == nil {
			defRelations = cfg.Data.RelationsPath
			defOwnership = cfg.Data.OwnershipPath
		}
	}

	if relations == "" {
		relations = defRelations
	}
	if ownership == "" {
		ownership = defOwnership
	}
	return relations, ownership
}

func run(ctx context.Context, out io.Writer, companyID string, fromRoot bool, relationsPath, ownershipPath string) error {
	store := csvstore.New(relationsPath, ownershipPath)

	registry, err := services.LoadRegistry(ctx, store, store)
	if err != nil {
		return err
	}

	tree, err := registry.Tree(companyID, fromRoot)
	if err != nil {
		return err
	}

	fmt.Fprint(out, tree)
	return nil
}
