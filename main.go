package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"frontdesk/pkg/frontdesk/config"
	"frontdesk/pkg/frontdesk/i18n"
	"frontdesk/pkg/frontdesk/menu"
	"frontdesk/pkg/frontdesk/renderer"
	"frontdesk/pkg/frontdesk/renderer/tui"
	"frontdesk/pkg/frontdesk/state"
	"frontdesk/pkg/hotel/catalog"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.LookupEnv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Cannot load configuration: %v", err)
	}

	if err := i18n.Load(cfg.Lang); err != nil {
		log.Fatalf("Cannot load translations: %v", err)
	}

	renderer.SetRenderer(tui.New(os.Stdin, os.Stdout, tui.Options{NoColor: cfg.NoColor}))
	renderer.Init()
	renderer.Clear()

	// The session owns the catalog for the lifetime of the process.
	s := state.NewSession(catalog.Seed())

	if err := menu.RunMainMenu(s, cfg.Credentials); err != nil && !errors.Is(err, io.EOF) {
		log.Fatalf("Cannot read input: %v", err)
	}
}
