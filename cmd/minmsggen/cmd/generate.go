package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/rawbytedev/minmsg/internal/gen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate [type...]",
	Short: "Write *_minmsg.go files for the named struct types",
	Long: `Write Shape, Pack and Unpack methods for each named struct type. Struct
types nested by value in the same package are generated as well, one file
per type, next to the package sources unless --outdir is set.`,
	Args:              cobra.MinimumNArgs(1),
	PersistentPreRunE: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, dir, err := loadGenerator()
		if err != nil {
			return err
		}
		if out := viper.GetString("outdir"); out != "" {
			dir = out
		}
		if viper.GetBool("stdout") {
			return emit(g, args, cmd.OutOrStdout())
		}
		return writeFiles(g, args, dir, viper.GetBool("verbose"))
	},
}

func init() {
	key := "outdir"
	generateCmd.Flags().String(key, "", WrapString("directory for generated files, defaults to the package directory"))
	key = "stdout"
	generateCmd.Flags().Bool(key, false, WrapString("print generated source instead of writing files"))
}

func generateAll(g *gen.Generator, names []string) error {
	for _, name := range names {
		if err := g.Generate(name); err != nil {
			return err
		}
	}
	return nil
}

// writeFiles generates names and writes one file per produced type to dir.
func writeFiles(g *gen.Generator, names []string, dir string, verbose bool) error {
	if err := generateAll(g, names); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, typ := range g.Types() {
		path := filepath.Join(dir, gen.FileName(typ))
		if err := os.WriteFile(path, g.Source(typ), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if verbose {
			log.Printf("wrote %s", path)
		}
	}
	return nil
}

func emit(g *gen.Generator, names []string, w io.Writer) error {
	if err := generateAll(g, names); err != nil {
		return err
	}
	for _, typ := range g.Types() {
		if _, err := w.Write(g.Source(typ)); err != nil {
			return err
		}
	}
	return nil
}
