package http

import "github.com/spf13/cobra"

// NewHTTPCommand groups the commands that run the board API.
func NewHTTPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "http",
		Aliases: []string{"api"},
		Short:   "Run the case board HTTP API",
	}
	cmd.AddCommand(NewStartCommand())
	return cmd
}
