package main

import (
	"fmt"
	"os"

	"gobpc/pkg/compiler"
)

const testSource = `read a and b
,>,<
[
    >[->+>+<<]
    >>[-<<+>>]
    <<<-
]
print a*b
>>.
`

func main() {
	src := testSource
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = string(data)
	}

	events, err := compiler.Scan(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "scan error:", err)
		os.Exit(1)
	}

	fmt.Printf("Events (%d)\n", len(events))
	for _, ev := range events {
		fmt.Println(" ", ev)
	}
	fmt.Println()

	for _, tier := range []compiler.Tier{compiler.TierDirect, compiler.TierFused, compiler.TierOffset} {
		cfg := compiler.DefaultConfig()
		cfg.MemorySize = 16
		cfg.Comments = true
		cfg.Tier = tier

		code, err := compiler.Compile(src, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tier %d (%s) error: %v\n", int(tier), tier, err)
			os.Exit(1)
		}
		fmt.Printf("Tier %d (%s)\n", int(tier), tier)
		fmt.Print(code)
		fmt.Println()
	}
}
