// Command ie32run loads a flat IE32 binary into ROM and runs it to
// completion. This is the CLI surface spec.md §6 describes as an external
// collaborator, built the way master-g-childhood's Go tools build their
// CLIs: a single urfave/cli.v2 App with one Action.
package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/urfave/cli.v2"

	"github.com/dankbox/ie32vm/internal/bus"
	"github.com/dankbox/ie32vm/internal/cpu"
	"github.com/dankbox/ie32vm/internal/device"
	"github.com/dankbox/ie32vm/internal/loader"
)

func main() {
	log.SetFlags(0)

	app := &cli.App{
		Name:      "ie32run",
		Usage:     "run a flat IE32 binary",
		ArgsUsage: "BINFILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable verbose tracing to standard output",
			},
			&cli.BoolFlag{
				Name:  "tcp-console",
				Usage: "attach a TCP-backed console device in addition to the UART",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	path := c.Args().Get(0)
	if path == "" {
		return fmt.Errorf("usage: ie32run [-v] BINFILE")
	}

	b := bus.New()
	b.Registry.Register(device.NewUART(device.UARTBase, os.Stdout))

	if c.Bool("tcp-console") {
		console, err := device.NewTCPConsole(device.ConsoleBase)
		if err != nil {
			return err
		}
		defer console.Close()
		log.Printf("ie32run: console listening on %s", console.Addr())
		b.Registry.Register(console)
	}

	if err := loader.Load(b, path); err != nil {
		return err
	}

	machine := cpu.New(b)
	machine.Out = os.Stdout
	if c.Bool("verbose") {
		machine.Trace = os.Stdout
	}

	machine.Run()
	return nil
}
