package cmd

import (
	"fmt"
	"os"

	"github.com/KaramelBytes/eda-cli/internal/app"
	cfgpkg "github.com/KaramelBytes/eda-cli/internal/config"
	"github.com/KaramelBytes/eda-cli/internal/utils"
	"github.com/spf13/cobra"
)

// programDir locates the directory the dataset and output live in.
var programDir = utils.ProgramDir

var rootCmd = &cobra.Command{
	Use:   "eda",
	Short: "Exploratory analysis of datos_sinteticos.csv",
	Long: `eda loads datos_sinteticos.csv from the directory of the executable, prints
head rows, shape, column types, null counts, descriptive statistics, duplicate
rows and categorical value counts, and writes histograms, boxplots and a
correlation heatmap into output/.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := programDir()
		if err != nil {
			return err
		}
		cfg, err := cfgpkg.Load(base)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return app.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr()).Run()
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}
