package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	opts := options{}
	flag.StringVar(&opts.configPath, "config", "config/tracker.env", "dotenv file loaded in the local environment")
	flag.StringVar(&opts.mode, "mode", "", "driver, rider, dispatcher or route; derived from the signed-in role when empty")
	flag.BoolVar(&opts.advance, "advance", false, "driver: move the active trip to its next status")
	flag.StringVar(&opts.sosNote, "sos", "", "raise an SOS with this note and exit")
	flag.Int64Var(&opts.routeID, "route", 0, "route: id of the route to edit")
	flag.StringVar(&opts.add, "add", "", "route: comma separated employee ids to append as stops")
	flag.StringVar(&opts.move, "move", "", "route: move a stop, INDEX:up or INDEX:down")
	flag.Int64Var(&opts.remove, "remove", 0, "route: id of the stop to delete")
	flag.BoolVar(&opts.optimize, "optimize", false, "route: let the backend reorder the stops")
	flag.BoolVar(&opts.createTrip, "create-trip", false, "route: schedule a trip on the route")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a, err := newApp(ctx, opts)
	if err != nil {
		stop()
		log.Fatalf("Failed to start tracker: %v", err)
	}

	err = a.run(ctx)
	stop()
	a.close()
	if err != nil {
		log.Fatalf("Tracker stopped: %v", err)
	}
}
