// Copyright (c) 2026 The cidrkit Authors
// SPDX-License-Identifier: MIT

package driver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cidrkit/cidrkit/cidr"
	"github.com/cidrkit/cidrkit/define"
	"github.com/cidrkit/cidrkit/radixset"
)

// Run reads newline-delimited CIDR prefixes from in, builds a radixset.Set
// per family, selects a rendering per cfg and writes it to out, one rule
// per line. Parse failures are fatal for the run, matching the original
// driver's read() (spec section 6-7): the first bad line aborts with an
// error and nothing is written.
//
// ctx is honoured only around the (potentially large) stdin read, the
// sole blocking operation the driver performs; the core packages
// (radixset, define) never see it.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	sets := map[cidr.Family]*radixset.Set{
		cidr.V4: new(radixset.Set),
		cidr.V6: new(radixset.Set),
	}
	leaves := 0

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fam := cfg.Family
		if cfg.Any {
			fam = cidr.V4
			if strings.Contains(line, ":") {
				fam = cidr.V6
			}
		}

		p, err := cidr.ParsePrefix(fam, line)
		if err != nil {
			return fmt.Errorf("cidrkit: %q: %w", line, err)
		}
		sets[fam].Insert(&p)
		leaves++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cidrkit: reading input: %w", err)
	}

	w := bufio.NewWriter(out)
	defer w.Flush()

	families := []cidr.Family{cfg.Family}
	if cfg.Any {
		families = []cidr.Family{cidr.V4, cidr.V6}
	}

	ruleCount := 0
	for _, fam := range families {
		rules := render(cfg.Mode, sets[fam], fam, cfg.Invert)
		ruleCount += len(rules)
		for _, r := range rules {
			if cfg.Mode == ModeAggregate {
				fmt.Fprintln(w, r.Bare())
			} else {
				fmt.Fprintln(w, r.String())
			}
		}
	}

	if cfg.Stats {
		fmt.Fprintf(stderr, "cidrkit: %d input prefixes, %d output rules\n", leaves, ruleCount)
	}
	return nil
}

func render(mode Mode, s *radixset.Set, fam cidr.Family, invert bool) []define.Rule {
	null := cidr.Null(fam).Clone()
	switch mode {
	case ModeComplete:
		return define.Complete(s, null, invert)
	case ModeAggregate:
		return define.Aggregate(s, null, invert)
	default:
		return define.Compress(s, null, invert)
	}
}
