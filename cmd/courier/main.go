package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - location: Publish one driver position
// - status:   Publish one order status change
// - drive:    Simulate a delivery from pickup to drop-off

func main() {
	locationCmd := flag.NewFlagSet("location", flag.ExitOnError)
	statusCmd := flag.NewFlagSet("status", flag.ExitOnError)
	driveCmd := flag.NewFlagSet("drive", flag.ExitOnError)

	// location parameters
	locationOrder := locationCmd.Int64("order", 0, "Order ID the driver is delivering")
	locationLat := locationCmd.Float64("lat", 0, "Driver latitude")
	locationLng := locationCmd.Float64("lng", 0, "Driver longitude")

	// status parameters
	statusOrder := statusCmd.Int64("order", 0, "Order ID")
	statusValue := statusCmd.String("status", "", "New status (pending, processing, out_for_delivery, completed, cancelled)")

	// drive parameters
	driveOrder := driveCmd.Int64("order", 0, "Order ID")
	driveFrom := driveCmd.String("from", "", "Pickup position as lat,lng")
	driveTo := driveCmd.String("to", "", "Drop-off position as lat,lng")
	driveSteps := driveCmd.Int("steps", 20, "Number of position updates along the way")
	driveInterval := driveCmd.Duration("interval", 2*time.Second, "Delay between position updates")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := courierFlags{
		Location: locationFlags{
			cmd:   locationCmd,
			order: locationOrder,
			lat:   locationLat,
			lng:   locationLng,
		},
		Status: statusFlags{
			cmd:    statusCmd,
			order:  statusOrder,
			status: statusValue,
		},
		Drive: driveFlags{
			cmd:      driveCmd,
			order:    driveOrder,
			from:     driveFrom,
			to:       driveTo,
			steps:    driveSteps,
			interval: driveInterval,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type courierFlags struct {
	Location locationFlags
	Status   statusFlags
	Drive    driveFlags
}

type locationFlags struct {
	cmd   *flag.FlagSet
	order *int64
	lat   *float64
	lng   *float64
}

type statusFlags struct {
	cmd    *flag.FlagSet
	order  *int64
	status *string
}

type driveFlags struct {
	cmd      *flag.FlagSet
	order    *int64
	from     *string
	to       *string
	steps    *int
	interval *time.Duration
}

func runSubcommand(ctx context.Context, flags *courierFlags) error {
	switch os.Args[1] {
	case "location":
		return handleLocation(ctx, flags)
	case "status":
		return handleStatus(ctx, flags)
	case "drive":
		return handleDrive(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleLocation(ctx context.Context, flags *courierFlags) error {
	if err := flags.Location.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse location flags")
	}

	if *flags.Location.order <= 0 {
		return errors.New("--order flag is required for location command")
	}

	return runLocation(ctx, *flags.Location.order, *flags.Location.lat, *flags.Location.lng)
}

func handleStatus(ctx context.Context, flags *courierFlags) error {
	if err := flags.Status.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse status flags")
	}

	if *flags.Status.order <= 0 {
		return errors.New("--order flag is required for status command")
	}

	return runStatus(ctx, *flags.Status.order, *flags.Status.status)
}

func handleDrive(ctx context.Context, flags *courierFlags) error {
	if err := flags.Drive.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse drive flags")
	}

	if *flags.Drive.order <= 0 {
		return errors.New("--order flag is required for drive command")
	}

	from, err := parseCoordinate(*flags.Drive.from)
	if err != nil {
		return errors.Wrap(err, "invalid --from")
	}
	to, err := parseCoordinate(*flags.Drive.to)
	if err != nil {
		return errors.Wrap(err, "invalid --to")
	}

	return runDrive(ctx, *flags.Drive.order, from, to, *flags.Drive.steps, *flags.Drive.interval)
}

func printUsage() {
	fmt.Println("Usage: courier <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  location    Publish one driver position")
	fmt.Println("  status      Publish one order status change")
	fmt.Println("  drive       Simulate a delivery from pickup to drop-off")
	fmt.Println("")
	fmt.Println("Events go to the publisher configured under pubsub in the config file.")
	fmt.Println("Use 'courier <command> -h' for more information about a command.")
}
