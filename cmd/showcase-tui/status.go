// ABOUTME: Status subcommand showing backend reachability and identity
// ABOUTME: Probes an admin call to report the elevation the backend grants

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/brigadress/showcase-tui/internal/api"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend reachability and your identity",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, ident, client, err := setup()
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	// Unlike the UI paths, cap the probes so a dead host cannot hang
	// the command
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	fmt.Println()
	cyan.Println("  Showcase")
	cyan.Println("  --------")

	yellow.Printf("  Backend:   ")
	items, err := client.FAQ(ctx)
	if err != nil {
		color.Red("UNREACHABLE (%v)\n", err)
	} else {
		green.Printf("reachable ")
		fmt.Printf("%s (%d faq items)\n", cfg.Server.BaseURL, len(items))
	}

	yellow.Printf("  Identity:  ")
	if ident.InHost() {
		green.Printf("host ")
		if ident.DisplayName != "" {
			fmt.Printf("(%s)\n", ident.DisplayName)
		} else {
			fmt.Println()
		}
	} else {
		fmt.Println("browser mode (set SHOWCASE_INIT_DATA)")
	}

	// The client never evaluates elevation itself; it only observes the
	// effect of the credential on an admin-only call
	yellow.Printf("  Admin:     ")
	leads, err := client.AdminLeads(ctx, 1)
	switch {
	case err == nil:
		green.Printf("elevated ")
		fmt.Printf("(%d lead(s) visible)\n", len(leads))
	default:
		var reqErr *api.RequestError
		if errors.As(err, &reqErr) {
			fmt.Printf("restricted (%s)\n", reqErr.Error())
		} else {
			fmt.Printf("unknown (%v)\n", err)
		}
	}

	fmt.Println()
	return nil
}
