// This file is part of Gopherbeeb.
//
// Gopherbeeb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherbeeb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherbeeb.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"golang.org/x/term"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware"
	"github.com/jetsetilly/gopherbeeb/hardware/clocks"
	"github.com/jetsetilly/gopherbeeb/hardware/memory"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherbeeb/imageloader"
	"github.com/jetsetilly/gopherbeeb/logger"
	"github.com/jetsetilly/gopherbeeb/modalflag"
	"github.com/jetsetilly/gopherbeeb/performance"
	"github.com/jetsetilly/gopherbeeb/performance/limiter"
	"github.com/jetsetilly/gopherbeeb/statsview"
	"github.com/jetsetilly/gopherbeeb/version"
)

func main() {
	// #ctrlc stops the emulation at the end of the current batch of
	// instructions
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	os.Exit(launch(os.Stdout, os.Args[1:], intChan))
}

// launch parses the command line and runs the selected mode. returns the
// value to be used with os.Exit()
func launch(output io.Writer, args []string, interrupt <-chan os.Signal) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output, interrupt)
	case "PERFORMANCE":
		err = perform(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// the flags used to attach an image to memory. shared by all modes
type imageFlags struct {
	origin    *uint16
	useOrigin *bool
	reset     *uint16
	useReset  *bool
}

func addImageFlags(md *modalflag.Modes) imageFlags {
	var f imageFlags
	f.origin, f.useOrigin = md.AddAddress("origin", 0x0000, "load address of image (default: image ends at top of memory)")
	f.reset, f.useReset = md.AddAddress("reset", 0x0000, "override reset vector")
	return f
}

// setup creates a Beeb with the image named on the command line attached to
// its memory. The Beeb has been reset.
func setup(md *modalflag.Modes, f imageFlags) (*hardware.Beeb, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, curated.Errorf("image required for %s mode", md)
	case 1:
	default:
		return nil, curated.Errorf("too many arguments for %s mode", md)
	}

	ld := imageloader.NewLoader(md.GetArg(0))
	ld.Origin = *f.origin
	ld.UseOrigin = *f.useOrigin

	mem := memory.NewMemory()
	err := ld.Attach(mem)
	if err != nil {
		return nil, err
	}

	if *f.useReset {
		mem.SetVector(cpubus.Reset, *f.reset)
	}

	beeb := hardware.NewBeeb(mem)
	err = beeb.Reset()
	if err != nil {
		return nil, err
	}

	return beeb, nil
}

// setEcho echoes the log to the output. colour is used if the output is a
// terminal
func setEcho(echo bool, output io.Writer) {
	if !echo {
		logger.SetEcho(nil)
		return
	}
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.SetEcho(logger.NewColorizer(output))
		return
	}
	logger.SetEcho(output)
}

func run(md *modalflag.Modes, output io.Writer, interrupt <-chan os.Signal) error {
	md.NewMode()

	f := addImageFlags(md)
	limit := md.AddInt("limit", 0, "maximum number of instructions to run (0 for no limit)")
	realtime := md.AddBool("realtime", false, "run at the speed of the real machine")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	memvizFile := md.AddString("memviz", "", "write graphviz dot file of machine state on exit")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log, output)
	defer logger.SetEcho(nil)

	fmt.Fprintln(output, version.String())

	if *stats {
		if statsview.Available() {
			stop := statsview.Launch(output, statsview.DefaultAddress)
			defer stop()
		} else {
			fmt.Fprintln(output, "* statsview not available in this build")
		}
	}

	beeb, err := setup(md, f)
	if err != nil {
		return err
	}

	if *realtime {
		beeb.AddHardware(limiter.NewLimiter())
	}

	reason, err := runBeeb(beeb, *limit, interrupt)
	if err != nil {
		fmt.Fprintln(output, beeb.CPU)
		if !*log {
			logger.Tail(output, 10)
		}
		return err
	}

	fmt.Fprintf(output, "%s after %d instructions (%d cycles, %s)\n", reason,
		beeb.Instructions(), beeb.Cycles(), clocks.Duration(beeb.Cycles()))
	fmt.Fprintln(output, beeb.CPU)
	fmt.Fprintln(output, beeb.CPU.LastResult)

	if *memvizFile != "" {
		err = writeMemviz(*memvizFile, beeb)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "machine state written to %s\n", *memvizFile)
	}

	return nil
}

// the reason runBeeb() returned
type stopReason string

const (
	stopLimit       stopReason = "instruction limit reached"
	stopHalted      stopReason = "halted"
	stopInterrupted stopReason = "interrupted"
)

// halted returns true if the most recent instruction was a jump to itself
// while interrupts are disabled. the emulation can never leave such a loop
func halted(beeb *hardware.Beeb) bool {
	r := beeb.CPU.LastResult
	return r.Final && r.InterruptCycles == 0 &&
		beeb.CPU.Status.InterruptDisable &&
		beeb.CPU.PC.Address() == r.Address
}

// runBeeb runs the emulation until the instruction limit is reached, the
// program halts or the interrupt channel receives a signal. a limit of zero
// means no limit
func runBeeb(beeb *hardware.Beeb, limit int, interrupt <-chan os.Signal) (stopReason, error) {
	for {
		n := hardware.PerformanceBrake
		if limit > 0 {
			remaining := int64(limit) - beeb.Instructions()
			if remaining <= 0 {
				return stopLimit, nil
			}
			n = int(min(int64(n), remaining))
		}

		throttle, err := beeb.Run(n)
		if err != nil {
			return "", err
		}

		if halted(beeb) {
			return stopHalted, nil
		}

		if throttle > 0 {
			time.Sleep(throttle)
		}

		select {
		case <-interrupt:
			return stopInterrupted, nil
		default:
		}
	}
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	f := addImageFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is no lead time)")
	profile := md.AddBool("profile", false, "write cpu and memory profiles to working directory")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log, output)
	defer logger.SetEcho(nil)

	beeb, err := setup(md, f)
	if err != nil {
		return err
	}

	return performance.Check(output, *profile, beeb, *duration)
}
