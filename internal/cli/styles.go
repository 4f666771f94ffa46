package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/avatar"
)

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles FILE",
		Short: "List the styles defined in a TOML style sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := avatar.LoadStyleSheet(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			names := append([]string{avatar.DefaultStyleName}, sheet.Names()...)
			for _, name := range names {
				cfg, err := sheet.Config(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-16s border_width=%d border_color=%s border_overlay=%t fill_color=%s\n",
					name, cfg.BorderWidth, avatar.FormatColor(cfg.BorderColor), cfg.BorderOverlay, avatar.FormatColor(cfg.FillColor))
			}
			return nil
		},
	}
}
