package main

import (
	"os"

	"github.com/robinjoseph08/golib/logger"
	"github.com/shishobooks/archivist/pkg/config"
	"github.com/shishobooks/archivist/pkg/errcodes"
)

func main() {
	log := logger.New()

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	app := newApp(cfg, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		if errcodes.IsRetryable(err) {
			log.Err(err).Fatal("upstream unavailable, try again later")
		}
		log.Err(err).Fatal("app run error")
	}
}
