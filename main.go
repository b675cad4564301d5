package main

import (
	"fmt"
	"os"

	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/cmd"
)

func main() {
	if err := cmd.NewCLI().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
