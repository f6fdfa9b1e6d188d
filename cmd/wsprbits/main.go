package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/neurlang/wsprsim/wspr"
	"github.com/spf13/pflag"
)

func main() {
	count := pflag.IntP("count", "n", 14, "Number of symbols to print")
	pflag.Parse()

	filename := "wspr_normal.bits"
	if pflag.NArg() > 0 {
		filename = pflag.Arg(0)
	}

	buf, err := wspr.ReadBitsPrefix(filename, *count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(format(buf))
}

func format(buf []byte) string {
	parts := make([]string, len(buf))
	for i, b := range buf {
		parts[i] = fmt.Sprint(int(b))
	}
	return strings.Join(parts, " ")
}
