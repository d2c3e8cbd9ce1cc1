package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/aruizdev/fisioclinic_backend/cmd/http"
	systemcmd "github.com/aruizdev/fisioclinic_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "fisioclinic",
	Short: "Multi-tenant scheduling backend for physiotherapy clinics.",
	Long: `Fisioclinic is a multi-tenant scheduling backend for physiotherapy clinics.
It manages practitioner availability, appointments, group activities and the
calendars built from them, one deployment serving every clinic.`,
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
