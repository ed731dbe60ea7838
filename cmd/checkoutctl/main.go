package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
)

var Version = "dev"

func newApp() *cli.App {
	return &cli.App{
		Name:    "checkoutctl",
		Usage:   "Create and inspect hosted checkout sessions through the checkout API",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "Checkout API base URL",
				Value:   "http://localhost:3000",
				EnvVars: []string{"CHECKOUTCTL_SERVER"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "HTTP timeout per request",
				Value: 15 * time.Second,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print machine-readable output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "create",
				Aliases: []string{"c"},
				Usage:   "Open a checkout session for a single product",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Product name",
						Required: true,
					},
					&cli.Int64Flag{
						Name:     "price",
						Aliases:  []string{"p"},
						Usage:    "Unit price in minor currency units (9999 = 99.99)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Customer e-mail",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "image",
						Usage: "Product image URL",
					},
					&cli.StringFlag{
						Name:  "idempotency-key",
						Usage: "Reuse a key to safely retry a create",
					},
					&cli.BoolFlag{
						Name:  "idempotent",
						Usage: "Generate an idempotency key when none is given",
					},
				},
				Action: createCommand,
			},
			{
				Name:      "status",
				Usage:     "Show the payment status of a checkout session",
				ArgsUsage: "<session-id>",
				Action:    statusCommand,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
