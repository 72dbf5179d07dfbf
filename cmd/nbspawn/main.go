package main

import (
	"os"

	"github.com/nbspawn/nbspawn/cmd/render"
	"github.com/nbspawn/nbspawn/pkg/logd"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var log = logd.Get().WithName("nbspawn")

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "nbspawn",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		render.New(afero.Afero{Fs: afero.NewOsFs()}, os.Stdout),
	)

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error(err, "command failed")
		os.Exit(1)
	}
}
