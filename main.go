package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/thegoanwedding/marketplace/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(cli.ExitCode(err))
	}
}
