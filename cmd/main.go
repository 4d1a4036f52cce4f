package main

import (
	"flag"
	"os"

	"github.com/SystemBuilders/ringlist/internal/lockservice"
	"github.com/SystemBuilders/ringlist/internal/node"
	"github.com/rs/zerolog"
)

func main() {
	ip := flag.String("ip", "127.0.0.1", "address to serve the lockservice on")
	port := flag.String("port", "1234", "port to serve the lockservice on")
	debug := flag.Bool("debug", false, "log lock operations")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.GlobalLevel())
	ls := lockservice.NewSimpleLockService(log)

	scfg := lockservice.NewSimpleConfig(*ip, *port)
	if err := node.Start(ls, scfg, log); err != nil {
		log.Fatal().Err(err).Msg("lockservice stopped")
	}
}
