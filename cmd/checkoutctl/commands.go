package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"checkout-orchestrator/internal/domain/checkout"
	reqdto "checkout-orchestrator/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func clientFromContext(c *cli.Context) *apiClient {
	return newAPIClient(c.String("server"), c.Duration("timeout"))
}

// createCommand opens a checkout session and prints the redirect URL
func createCommand(c *cli.Context) error {
	body := reqdto.CheckoutSessionRequest{
		ProductName:   c.String("name"),
		ProductPrice:  c.Int64("price"),
		CustomerEmail: c.String("email"),
	}
	if c.IsSet("image") {
		image := c.String("image")
		body.ImageURL = &image
	}

	key := c.String("idempotency-key")
	if key == "" && c.Bool("idempotent") {
		key = uuid.NewString()
	}

	result, err := clientFromContext(c).CreateSession(c.Context, body, key)
	if err != nil {
		return printAPIError(c, err)
	}

	if c.Bool("json") {
		return json.NewEncoder(c.App.Writer).Encode(map[string]any{
			"url":             result.RedirectURL,
			"idempotency_key": key,
			"replayed":        result.Replayed,
		})
	}

	fmt.Fprintln(c.App.Writer, result.RedirectURL)
	if key != "" {
		fmt.Fprintf(c.App.ErrWriter, "idempotency key: %s (replayed: %t)\n", key, result.Replayed)
	}
	return nil
}

// statusCommand prints the payment status of a checkout session
func statusCommand(c *cli.Context) error {
	sessionID := c.Args().First()
	if sessionID == "" {
		return errors.New("session id argument is required")
	}

	status, err := clientFromContext(c).SessionStatus(c.Context, sessionID)
	if err != nil {
		return printAPIError(c, err)
	}

	if c.Bool("json") {
		return json.NewEncoder(c.App.Writer).Encode(status)
	}

	settled := checkout.PaymentStatus(status.PaymentStatus).IsSettled()
	fmt.Fprintf(c.App.Writer, "status:   %s\n", status.PaymentStatus)
	fmt.Fprintf(c.App.Writer, "settled:  %t\n", settled)
	fmt.Fprintf(c.App.Writer, "amount:   %d\n", status.Amount)
	fmt.Fprintf(c.App.Writer, "customer: %s <%s>\n", status.CustomerName, status.CustomerEmail)
	return nil
}

func printAPIError(c *cli.Context, err error) error {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		return err
	}

	if details, ok := apiErr.Body.Detail.([]any); ok {
		for _, d := range details {
			if m, ok := d.(map[string]any); ok {
				fmt.Fprintf(c.App.ErrWriter, "  %v: %v\n", m["path"], m["message"])
			}
		}
	}
	return apiErr
}
