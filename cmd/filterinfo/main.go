// Command filterinfo prints the coefficients and frequency response of a
// parametric biquad filter.
//
// Usage:
//
//	filterinfo [flags] [filter-type ...]
//
// Without arguments it prints info for all known filter types.
//
// Examples:
//
//	filterinfo lowpass
//	filterinfo -freq 2000 -q 2 bandpass notch
//	filterinfo -freq 1000 -gain 6 peak
//	filterinfo -points 16 lowpass
//	filterinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-rtdsp/dsp/filter/design"
)

func main() {
	freq := flag.Float64("freq", 1000, "center/corner frequency in Hz")
	q := flag.Float64("q", 1/math.Sqrt2, "quality factor")
	gain := flag.Float64("gain", 0, "gain in dB (shelf and peak types)")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	points := flag.Int("points", 0, "print an n-point log-spaced response table per filter")
	all := flag.Bool("all", false, "show all filter types")
	list := flag.Bool("list", false, "list available filter type names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags] [filter-type ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints coefficients and frequency response of parametric biquad filters.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all filter types.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo lowpass highpass\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -freq 1000 -gain 6 peak\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -points 16 lowpass\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = allNames()
	}

	types := resolveTypes(names)
	if len(types) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching filter types\n")
		os.Exit(1)
	}

	descs := make([]design.Descriptor, 0, len(types))
	for _, typ := range types {
		d := design.Descriptor{
			Type:       typ,
			Frequency:  *freq,
			Q:          *q,
			GainDB:     *gain,
			SampleRate: *rate,
		}
		if err := d.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		descs = append(descs, d)
	}

	printCoefficients(descs)
	if *points > 0 {
		for _, d := range descs {
			printResponse(d, *points)
		}
	}
}

func allNames() []string {
	names := make([]string, 0, int(design.TypePeak)+1)
	for t := design.TypeLowPass; t <= design.TypePeak; t++ {
		names = append(names, t.String())
	}
	return names
}

func printList() {
	names := allNames()
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveTypes(names []string) []design.Type {
	var result []design.Type
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		typ, err := design.ParseType(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: unknown filter type %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, typ)
	}
	return result
}

func printCoefficients(descs []design.Descriptor) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Filter\tB0\tB1\tB2\tA1\tA2\tGain@f0 [dB]\n")
	fmt.Fprintf(tw, "------\t--\t--\t--\t--\t--\t------------\n")

	for _, d := range descs {
		c, err := design.FromDescriptor(d)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		label := d.Type.String()
		switch d.Type {
		case design.TypeLowShelf, design.TypeHighShelf, design.TypePeak:
			label = fmt.Sprintf("%s (%+.1f dB)", label, d.GainDB)
		}

		fmt.Fprintf(tw, "%s\t%.8f\t%.8f\t%.8f\t%.8f\t%.8f\t%.2f\n",
			label, c.B0, c.B1, c.B2, c.A1, c.A2,
			c.MagnitudeDB(d.Frequency, d.SampleRate),
		)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// printResponse tabulates magnitude and phase at n log-spaced frequencies
// from 10 Hz up to just below Nyquist.
func printResponse(d design.Descriptor, n int) {
	c, err := design.FromDescriptor(d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}

	fmt.Printf("\n%s  f0=%.1f Hz  Q=%.3f  rate=%.0f Hz\n", d.Type, d.Frequency, d.Q, d.SampleRate)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tMagnitude [dB]\tPhase [deg]\n")
	fmt.Fprintf(tw, "---------\t--------------\t-----------\n")

	lo := math.Log10(10)
	hi := math.Log10(d.SampleRate / 2 * 0.99)
	for i := range n {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		f := math.Pow(10, lo+frac*(hi-lo))
		fmt.Fprintf(tw, "%.1f\t%.3f\t%.2f\n",
			f,
			c.MagnitudeDB(f, d.SampleRate),
			c.Phase(f, d.SampleRate)*180/math.Pi,
		)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
