// Copyright (c) 2026 The cidrkit Authors
// SPDX-License-Identifier: MIT

// Command cidrkit converts a newline-delimited list of CIDR prefixes on
// stdin into a compress / complete / aggregate rendering on stdout. See
// package driver for the implementation.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/cidrkit/cidrkit/cidr"
	"github.com/cidrkit/cidrkit/internal/driver"
)

var (
	flagIPv4      bool
	flagIPv6      bool
	flagAny       bool
	flagComplete  bool
	flagAggregate bool
	flagInvert    bool
	flagStats     bool
)

func buildConfig() (driver.Config, error) {
	familyFlags := 0
	for _, b := range []bool{flagIPv4, flagIPv6, flagAny} {
		if b {
			familyFlags++
		}
	}
	if familyFlags != 1 {
		return driver.Config{}, fmt.Errorf("%w: need exactly one of --ipv4/--ipv6/--any", driver.ErrArgumentConflict)
	}
	if flagComplete && flagAggregate {
		return driver.Config{}, fmt.Errorf("%w: --complete and --aggregate are mutually exclusive", driver.ErrArgumentConflict)
	}

	cfg := driver.Config{
		Any:    flagAny,
		Invert: flagInvert,
		Stats:  flagStats,
	}
	if flagIPv6 {
		cfg.Family = cidr.V6
	} else {
		cfg.Family = cidr.V4
	}
	switch {
	case flagComplete:
		cfg.Mode = driver.ModeComplete
	case flagAggregate:
		cfg.Mode = driver.ModeAggregate
	default:
		cfg.Mode = driver.ModeCompress
	}
	return cfg, nil
}

var rootCmd = &cobra.Command{
	Use:     "cidrkit",
	Short:   "Render a CIDR list as a minimal include/exclude rule list",
	Long:    "cidrkit converts a newline-delimited list of CIDR prefixes into an equivalent but more economical description expressed as an ordered list of signed include/exclude prefix rules.",
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return driver.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	},
	SilenceUsage: true,
}

func init() {
	log.SetFlags(log.Lmicroseconds)

	flags := rootCmd.Flags()
	flags.BoolVarP(&flagIPv4, "ipv4", "4", false, "IPv4 mode")
	flags.BoolVarP(&flagIPv6, "ipv6", "6", false, "IPv6 mode")
	flags.BoolVar(&flagAny, "any", false, "detect address family per input line")
	flags.BoolVarP(&flagComplete, "complete", "c", false, "full partition of the address space")
	flags.BoolVarP(&flagAggregate, "aggregate", "a", false, "include-tagged subset of the complete rendering")
	flags.BoolVarP(&flagInvert, "invert", "i", false, "invert polarity (describe the complement set)")
	flags.BoolVar(&flagStats, "stats", false, "print input/output counts to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.New(os.Stderr, "", 0).Print(err)
		os.Exit(1)
	}
}
