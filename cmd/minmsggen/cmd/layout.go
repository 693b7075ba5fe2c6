package cmd

import (
	"io"

	"github.com/rawbytedev/minmsg/internal/gen"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var layoutCmd = &cobra.Command{
	Use:               "layout [type...]",
	Short:             "Print the wire layout of struct types as YAML",
	Args:              cobra.MinimumNArgs(1),
	PersistentPreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, _, err := loadGenerator()
		if err != nil {
			return err
		}
		return printLayouts(g, args, cmd.OutOrStdout())
	},
}

func printLayouts(g *gen.Generator, names []string, w io.Writer) error {
	layouts := make([]*gen.TypeLayout, 0, len(names))
	for _, name := range names {
		l, err := g.Layout(name)
		if err != nil {
			return err
		}
		layouts = append(layouts, l)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(layouts); err != nil {
		return err
	}
	return enc.Close()
}
