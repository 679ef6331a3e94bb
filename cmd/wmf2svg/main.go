// Command wmf2svg reads a WMF file and writes its SVG equivalent.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-wmf/wmf2svg"
)

func main() {
	var (
		namespace   = flag.String("ns", "", "namespace prefix for emitted SVG tags")
		verbose     = flag.Bool("verbose", false, "log per-record diagnostics to stderr")
		noDelimiter = flag.Bool("no-delimiter", false, "omit the XML prolog and <svg> wrapper")
		width       = flag.Float64("width", 0, "target image width in CSS pixels")
		height      = flag.Float64("height", 0, "target image height in CSS pixels")
		outPath     = flag.String("o", "", "output path (default: stdout)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] input.wmf\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "wmf2svg: %v\n", err)
		os.Exit(1)
	}

	result, err := wmf2svg.Convert(data, wmf2svg.Options{
		Namespace:    *namespace,
		Verbose:      *verbose,
		SVGDelimiter: !*noDelimiter,
		ImgWidth:     *width,
		ImgHeight:    *height,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "wmf2svg: %v (status %d)\n", err, result.Status)
		os.Exit(1)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wmf2svg: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if _, err := out.Write(result.SVG); err != nil {
		fmt.Fprintf(os.Stderr, "wmf2svg: %v\n", err)
		os.Exit(1)
	}
}
