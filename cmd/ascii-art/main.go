package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	ascii "github.com/RoJac88/ascii-art/core"
	"github.com/RoJac88/ascii-art/utils"
	"golang.org/x/term"
)

const banner = `
┌─┐┌─┐┌─┐┬┬  ┌─┐┬─┐┌┬┐
├─┤└─┐│  ││  ├─┤├┬┘ │
┴ ┴└─┘└─┘┴┴  ┴ ┴┴└─ ┴

Converts an image to ascii art.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// stdinTimeout bounds the wait for a piped-in path so an interactive
// terminal with nothing to read does not hang the program.
const stdinTimeout = 50 * time.Millisecond

const charsUsage = "provide a list of chars from least to most intense, separated by whitespace"

// Version indicates the current build version.
var Version string

func main() {
	var (
		chars  string
		scale  int
		output string
	)
	flag.StringVar(&chars, "chars", ascii.DefaultChars, charsUsage)
	flag.StringVar(&chars, "c", ascii.DefaultChars, "alias for -chars")
	flag.IntVar(&scale, "scale", ascii.DefaultScale, "scale factor as a positive integer")
	flag.IntVar(&scale, "s", ascii.DefaultScale, "alias for -scale")
	flag.StringVar(&output, "out", "", "also render the grid to a png/jpeg file")

	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, banner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if scale < 1 {
		log.Fatal(&ascii.Error{Kind: ascii.KindConfig, Detail: fmt.Sprintf("scale must be a positive integer, got %d", scale)})
	}

	path, err := ascii.ResolveSource(flag.Arg(0), os.Stdin, os.Stdout, stdinTimeout)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("selected img %s\n", path)

	printer := ascii.NewPrinter()
	if path == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			log.Fatalln("`-` should be used with a pipe for stdin")
		}
		printer.LoadImageReader(os.Stdin)
	} else {
		printer.LoadImage(path)
	}
	printer.SetChars(stripWhitespace(chars)).SetScale(scale)

	lines, err := printer.Lines()
	if err != nil {
		log.Fatal(err)
	}
	if err := ascii.WriteLines(os.Stdout, lines); err != nil {
		log.Fatal(err)
	}

	if output != "" {
		saveImage(output, lines)
	}
}

// saveImage re-renders the grid to a bitmap file, teacher-terminal style:
// spinner on stderr while encoding, extension picks the format.
func saveImage(output string, lines []string) {
	fileTypes := []string{".jpg", ".jpeg", ".png"}
	ext := filepath.Ext(output)

	if !inSlice(ext, fileTypes) {
		log.Fatalf("Output file type not supported: %v", ext)
	}

	fn, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		log.Fatalf("Unable to open output file: %v", err)
	}
	defer fn.Close()

	ind := utils.NewProgressIndicator("Saving image...", time.Millisecond*100)
	ind.Start()

	if err := ascii.RenderImage(fn, lines, ext); err != nil {
		ind.StopMsg = "Saving image... failed ✗"
		ind.Stop()
		log.Fatal(err)
	}
	ind.StopMsg = fmt.Sprintf("Saving image... done ✔ (%s)", output)
	ind.Stop()
}

// stripWhitespace drops every whitespace rune from a raw chars list.
func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// inSlice checks if the item exists in the slice.
func inSlice(item string, slice []string) bool {
	for _, it := range slice {
		if it == item {
			return true
		}
	}
	return false
}
