// Command snes runs the core emulator headlessly for a fixed number of
// frames and dumps the resulting framebuffer as a PPM image, so the
// core can be exercised without the GUI shell spec.md places out of
// scope.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/flga/snes/snes"
)

func run(romPath string, frames int, outPath string) error {
	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("unable to read rom: %w", err)
	}

	sys := snes.New(log.New(os.Stderr, "snes: ", 0))
	if err := sys.LoadROM(rom); err != nil {
		return fmt.Errorf("unable to load rom: %w", err)
	}
	sys.PowerOn()

	for i := 0; i < frames; i++ {
		sys.RunFrame()
	}

	return writePPM(outPath, sys.Framebuffer())
}

func writePPM(path string, rgba []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer f.Close()

	const width, height = 256, 224
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height)
	for i := 0; i < width*height; i++ {
		w.Write(rgba[i*4 : i*4+3])
	}
	return w.Flush()
}

func main() {
	romPath := flag.String("rom", "", "path to a raw SNES ROM image")
	frames := flag.Int("frames", 60, "number of frames to run before dumping output")
	out := flag.String("out", "frame.ppm", "output PPM path for the final framebuffer")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "snes: -rom is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*romPath, *frames, *out); err != nil {
		log.Fatalf("snes: %s", err)
	}
}
