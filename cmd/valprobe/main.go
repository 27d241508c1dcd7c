// valprobe exercises the scriptval value runtime from the command line:
// it loads an optional TOML configuration, runs a handful of representative
// operations, and prints the aggregate-size accounting. Useful as a smoke
// test and as a worked example of the API.
package main

import (
	"flag"
	"fmt"
	"os"

	scriptval "github.com/phroun/scriptval"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	debug := flag.Bool("debug", false, "enable debug logging for all categories")
	flag.Parse()

	config := scriptval.DefaultConfig()
	if *configPath != "" {
		loaded, err := scriptval.LoadConfigFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "valprobe: %v\n", err)
			os.Exit(1)
		}
		config = loaded
	}
	if *debug {
		config.Debug = true
	}

	e := scriptval.New(config)
	if *debug {
		e.Logger().EnableAllCategories()
	}

	fmt.Printf("int width: %d, unchecked: %v, limits: %+v\n",
		e.BitWidth(), config.Unchecked, config.Limits)

	// Text: trim, pad, search
	name := scriptval.NewText(" Bob C. Davis ")
	e.TextTrim(name)
	if err := e.TextPad(name, 15, "$"); err != nil {
		fmt.Fprintf(os.Stderr, "valprobe: pad: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("text: %q (chars=%d, bytes=%d), index_of($)=%d\n",
		name.String(), name.Len(), name.ByteLen(), e.TextIndexOf(name, "$", 0))

	// Array: insert with clamping, nesting
	a := scriptval.NewArray(int64(2), int64(3))
	check(e.ArrayInsert(a, 0, int64(1)))
	check(e.ArrayInsert(a, 999, int64(4)))
	check(e.ArrayPush(a, name))
	fmt.Printf("array: %v (len=%d)\n", a, a.Len())

	// Bit fields
	v := int64(0b0000_0000_0010_1010)
	fmt.Printf("bits: value=%#x low3=%#b bits4..11=%#b\n",
		v, e.GetBitsCount(v, 0, 3), e.GetBits(v, scriptval.RangeSpec{Start: 4, End: 11, Inclusive: true}))

	// Aggregate accounting
	items, textBytes, blobBytes := e.Sizes().AggregateSizes(a)
	fmt.Printf("aggregate: array items=%d text bytes=%d blob bytes=%d\n",
		items, textBytes, blobBytes)
	if err := e.Sizes().CheckAggregate(a, "valprobe"); err != nil {
		fmt.Fprintf(os.Stderr, "valprobe: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("aggregate check: ok")
}

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "valprobe: %v\n", err)
		os.Exit(1)
	}
}
