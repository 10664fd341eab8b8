// Command ticketsrv serves the ticket reservation protocol over UDP.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kresge/ticketsrv/catalog"
	"github.com/kresge/ticketsrv/config"
	"github.com/kresge/ticketsrv/internal/logging"
	"github.com/kresge/ticketsrv/reservation"
	"github.com/kresge/ticketsrv/server"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(argv []string) error {
	cfg, err := config.ParseArgs(argv)
	if err != nil {
		return err
	}

	entries, err := config.ParseSeedFile(cfg.SeedPath)
	if err != nil {
		return err
	}

	cat := catalog.New(entries)
	ledger := reservation.NewLedger(cat)
	handler := server.NewHandler(cat, ledger, time.Duration(cfg.TimeoutSeconds)*time.Second)

	ep, err := server.Listen(cfg.Port)
	if err != nil {
		return err
	}
	defer ep.Close()

	logging.Infof("ticketsrv listening on %s (%d events, timeout %ds)", ep.Addr(), len(entries), cfg.TimeoutSeconds)
	return ep.Run(handler.HandleDatagram)
}
