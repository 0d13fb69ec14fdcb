package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/piresc/saferoute/internal/pkg/logger"
	"github.com/piresc/saferoute/internal/pkg/retry"
	"github.com/piresc/saferoute/services/routes"
	routeuc "github.com/piresc/saferoute/services/routes/usecase"
	tripuc "github.com/piresc/saferoute/services/trips/usecase"
)

// runRoute applies the requested edits to one route in a fixed order
// (add, move, remove, optimize) and prints the resulting stop list
func (a *app) runRoute(ctx context.Context) error {
	if a.opts.routeID <= 0 {
		return errors.New("route mode needs -route")
	}

	employeeIDs, err := parseIDs(a.opts.add)
	if err != nil {
		return err
	}
	var (
		moveIndex int
		moveDir   routes.Direction
	)
	if a.opts.move != "" {
		if moveIndex, moveDir, err = parseMove(a.opts.move); err != nil {
			return err
		}
	}

	reload := retry.New(routeuc.ReloadRetryConfig(a.configs.Backend.Retries), a.logger)
	seq := routeuc.NewSequencer(a.opts.routeID, a.routeGW, reload, a.collector)
	if err := seq.Load(ctx); err != nil {
		return fmt.Errorf("load route %d: %w", a.opts.routeID, err)
	}

	if len(employeeIDs) > 0 {
		if err := seq.AddStops(ctx, employeeIDs); err != nil {
			return err
		}
	}
	if moveDir != "" {
		if err := seq.MoveStop(ctx, moveIndex, moveDir); err != nil {
			return err
		}
	}
	if a.opts.remove > 0 {
		if err := seq.RemoveStop(ctx, a.opts.remove); err != nil {
			return err
		}
	}
	if a.opts.optimize {
		if err := seq.Optimize(ctx); err != nil {
			return err
		}
	}

	if a.opts.createTrip {
		tripUC := tripuc.NewTripUC(a.tripGW, a.locGW, a.provider, a.collector, a.configs.Backend.Timeout)
		trip, err := tripUC.CreateTrip(ctx, *seq.Route())
		if err != nil {
			return err
		}
		logger.Info("Trip scheduled",
			logger.Int64("trip_id", trip.ID),
			logger.Int64("route_id", trip.RouteID))
	}

	return printJSON(seq.Stops())
}

// parseIDs splits a comma separated id list, skipping blanks
func parseIDs(s string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid employee id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseMove reads INDEX:up or INDEX:down
func parseMove(s string) (int, routes.Direction, error) {
	idx, dir, ok := strings.Cut(s, ":")
	if !ok {
		return 0, "", fmt.Errorf("invalid move %q, want INDEX:up or INDEX:down", s)
	}
	index, err := strconv.Atoi(idx)
	if err != nil {
		return 0, "", fmt.Errorf("invalid move index %q", idx)
	}
	switch d := routes.Direction(strings.ToLower(dir)); d {
	case routes.DirectionUp, routes.DirectionDown:
		return index, d, nil
	default:
		return 0, "", fmt.Errorf("invalid move direction %q", dir)
	}
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
