package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
)

var (
	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "minmsggen",
		Short: "generate minmsg methods for Go struct types",
		Long: fmt.Sprintf(`minmsggen (v%s)

Generates Shape, Pack and Unpack methods so that struct types can be
written to and read from minmsg buffers. Fields are encoded in
declaration order with no tags or headers.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of minmsggen",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "minmsggen v%s\n", Version)
		},
	}
)

func init() {
	cobra.OnInitialize(InitConfig)

	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(layoutCmd)
	RootCmd.AddCommand(versionCmd)

	key := "pkg"
	RootCmd.PersistentFlags().String(key, ".", WrapString("package pattern containing the struct types"))
	key = "verbose"
	RootCmd.PersistentFlags().BoolP(key, "v", false, WrapString("log every file written"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	log.SetFlags(0)
	log.SetPrefix("minmsggen: ")
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
