package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mablo/mablo/internal/config"
	"github.com/mablo/mablo/internal/service"
	"github.com/mablo/mablo/internal/tui/styles"
	"github.com/spf13/cobra"
)

var inquiriesCmd = &cobra.Command{
	Use:   "inquiries",
	Short: "List contact form submissions kept in the local outbox",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		list, err := service.NewContactService(a.outbox, 0, a.logger).Inquiries()
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No inquiries yet.")
			return nil
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(styles.SlateLight)).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return styles.LabelStyle.Padding(0, 1)
				}
				return lipgloss.NewStyle().Padding(0, 1)
			}).
			Headers("Fecha", "Nombre", "Correo", "Mensaje")
		for _, inq := range list {
			t.Row(
				inq.SubmittedAt.Local().Format("2006-01-02 15:04"),
				inq.Name,
				inq.Email,
				styles.Truncate(inq.Message, 40),
			)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a config.yaml with the default settings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.DefaultConfigPath()
		if len(args) == 1 {
			dir = args[0]
		}
		if err := config.SaveConfig(v, config.DefaultConfig(), dir); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration saved to %s\n", dir)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mablo %s\n", Version)
	},
}
