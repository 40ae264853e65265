// Command ie32asm assembles an IE32 assembly source file into a flat binary
// image suitable for ie32run. Like ie32run, it is a thin urfave/cli.v2
// wrapper over a single internal package, following the teacher's
// cmd/pkg split.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/urfave/cli.v2"

	"github.com/dankbox/ie32vm/internal/asm"
)

func main() {
	log.SetFlags(0)

	app := &cli.App{
		Name:      "ie32asm",
		Usage:     "assemble an IE32 source file into a flat binary",
		ArgsUsage: "SRCFILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output binary path (default: SRCFILE with .bin extension)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print each assembled word and its byte offset in the image",
			},
		},
		Action: assemble,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func assemble(c *cli.Context) error {
	in := c.Args().Get(0)
	if in == "" {
		return fmt.Errorf("usage: ie32asm [-o OUTFILE] [-v] SRCFILE")
	}

	out := c.String("out")
	if out == "" {
		out = defaultOutputPath(in)
	}

	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	image, err := asm.Assemble(src)
	if err != nil {
		return err
	}

	if c.Bool("verbose") {
		for offset := 0; offset+4 <= len(image); offset += 4 {
			word := uint32(image[offset]) | uint32(image[offset+1])<<8 |
				uint32(image[offset+2])<<16 | uint32(image[offset+3])<<24
			fmt.Printf("0x%08x: 0x%08x\n", offset, word)
		}
	}

	return os.WriteFile(out, image, 0o644)
}

func defaultOutputPath(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + ".bin"
}
