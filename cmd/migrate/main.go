// migrate runs DB migrations from embedded SQL; use with go run ./cmd/migrate -direction up|down.
package main

import (
	"errors"
	"flag"

	"github.com/sirupsen/logrus"

	"org-access-control/internal/config"
	"org-access-control/internal/db/migrate"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	dir, err := migrate.ParseDirection(*direction)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := migrate.Run(cfg.DatabaseURL, dir); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.Info("migrate: no change")
			return
		}
		logrus.Fatalf("migrate: %v", err)
	}
	logrus.WithField("direction", dir).Info("migrate: done")
}
