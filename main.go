package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tenthirty/ftth/internal/logio"
)

func main() {
	ctx := context.Background()

	var logger logio.Logger
	logger.SetOutput(os.Stderr)

	var timeout time.Duration
	var trace, quiet bool
	var memLimit int
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "log a per-opcode dispatch trace in addition to the always-on error channel")
	flag.BoolVar(&quiet, "q", false, "suppress the startup banner")
	flag.IntVar(&memLimit, "mem-limit", 0, "override the dictionary arena capacity in bytes")
	flag.Parse()

	// The error sink is always wired: unknown words, bad directive context,
	// and every other outer-interpreter diagnostic must reach the error
	// channel whether or not -trace is passed. -trace only adds a verbose
	// per-opcode dispatch line on top of that.
	opts := []VMOption{WithLogf(logger.Leveledf("ERROR"))}
	if trace {
		opts = append(opts, WithTrace(logger.Leveledf("TRACE")))
	}
	if memLimit > 0 {
		opts = append(opts, WithArenaCapacity(uint(memLimit)))
	}
	opts = append(opts, WithOutput(os.Stdout))
	vm := New(opts...)
	defer vm.Close()

	args := flag.Args()
	if len(args) > 0 {
		name := args[0]
		if strings.HasSuffix(strings.ToLower(name), ".fbc") {
			f, err := os.Open(name)
			if err != nil {
				logger.Errorf("%v", err)
				os.Exit(logger.ExitCode())
			}
			err = vm.loadImage(f)
			f.Close()
			if err != nil {
				logger.Errorf("%v", err)
				os.Exit(logger.ExitCode())
			}
		} else {
			f, err := os.Open(name)
			if err != nil {
				logger.Errorf("%v", err)
				os.Exit(logger.ExitCode())
			}
			vm.Input.Queue = append(vm.Input.Queue, f)
			vm.closers = append(vm.closers, f)
		}

		if len(args) > 1 {
			for _, line := range args[1:] {
				vm.Input.Queue = append(vm.Input.Queue, strings.NewReader(line+"\n"))
			}
		} else {
			vm.Input.Queue = append(vm.Input.Queue, os.Stdin)
		}
	} else {
		vm.Input.Queue = append(vm.Input.Queue, os.Stdin)
	}

	if !quiet {
		fmt.Fprintln(os.Stdout, "ftth ready")
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := vm.Run(ctx); err != nil {
		logger.Errorf("%+v", err)
	}
	os.Exit(logger.ExitCode())
}
