// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/chip8asm/chip8"
)

var (
	symbols bool
	listing bool
	output  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "chip8asm FILE",
	Short:         "Assemble machine language code for the Chip 8",
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&symbols, "symbols", "s", false, "print out the symbol table")
	flags.BoolVarP(&listing, "print", "p", false, "print out the assembled statements when finished")
	flags.StringVarP(&output, "output", "o", "", "store the assembled program in FILE")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose mode")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	input, err := os.Open(args[0])
	if err != nil {
		return err
	}

	prog := &chip8.Program{}
	err = prog.Parse(input)
	input.Close()
	if err != nil {
		return err
	}

	if err := prog.TranslateStatements(); err != nil {
		return err
	}
	prog.SetAddresses()
	if err := prog.FixOpcodes(); err != nil {
		return err
	}

	if symbols {
		fmt.Println("-- Symbol Table --")
		labels := make([]string, 0, len(prog.Symbols))
		for label := range prog.Symbols {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Printf("0x%04X %v\n", prog.Symbols[label], label)
		}
	}

	if listing {
		fmt.Println("-- Assembled Statements --")
		for _, st := range prog.Statements {
			fmt.Println(st)
		}
	}

	if output != "" {
		out, err := os.Create(output)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := prog.Save(out); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
