package main

import (
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/lvlath-mst/internal/cli"
)

var Version = "dev"

func main() {
	if err := cli.NewRootCmd(Version).Execute(); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
