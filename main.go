/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ossian/death/predict"
	"github.com/ossian/death/reasons"
)

func main() {
	app := &cli.App{
		Name:           "death",
		HelpName:       "death",
		Usage:          "Predict your date of death",
		Version:        "0.1.0",
		DefaultCommand: "predict",
		Commands: []*cli.Command{
			predict.Command,
			reasons.Command,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
