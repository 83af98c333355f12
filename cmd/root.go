package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Alijeyrad/crm_backend/cmd/http"
	systemcmd "github.com/Alijeyrad/crm_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "crm",
	Short: "CRM case board: pipelines, stages and the case Kanban.",
	Long: `crm serves the case board of the CRM: per-organization pipelines with
ordered stages, a Kanban read model in status or pipeline mode, and drag and
drop moves with fractional ordering and WIP limits.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
