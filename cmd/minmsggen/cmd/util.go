package cmd

import (
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rawbytedev/minmsg/internal/gen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString reflows text so that no line is longer than Wrap, unless a
// single word is.
func WrapString(text string) string {
	var b strings.Builder
	col := 0
	for _, word := range strings.Fields(text) {
		switch {
		case col == 0:
		case col+1+len(word) > Wrap:
			b.WriteByte('\n')
			col = 0
		default:
			b.WriteByte(' ')
			col++
		}
		b.WriteString(word)
		col += len(word)
	}
	return b.String()
}

// InitConfig loads .env files and maps MINMSGGEN_* environment variables
// onto flags.
func InitConfig() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix("minmsggen")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// bindFlags binds a command's flags to viper
func bindFlags(cmd *cobra.Command, _ []string) error {
	return viper.BindPFlags(cmd.Flags())
}

// loadGenerator loads the package named by the pkg flag.
func loadGenerator() (*gen.Generator, string, error) {
	pkg, err := gen.Load(viper.GetString("pkg"))
	if err != nil {
		return nil, "", err
	}
	dir := "."
	if len(pkg.GoFiles) > 0 {
		dir = filepath.Dir(pkg.GoFiles[0])
	}
	return gen.New(pkg.Types, pkg.Fset), dir, nil
}
