package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// manifestsCommand creates the command that prints the effective manifest
// registry and exclusion set.
func (c *CLI) manifestsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "manifests",
		Short: "List recognized manifest files and excluded directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			ui := newUI(c.Out)
			ui.title("Manifests")
			for _, lang := range cfg.Registry {
				ui.keyValue(lang.Name, strings.Join(lang.Filenames, ", "))
			}
			ui.newline()
			ui.title("Excluded directories")
			if names := cfg.Exclusions.Names(); len(names) > 0 {
				ui.detail(strings.Join(names, ", "))
			} else {
				ui.detail("none")
			}
			if cfg.Path != "" {
				ui.newline()
				ui.detail(fmt.Sprintf("from %s", cfg.Path))
			}
			return nil
		},
	}
}
