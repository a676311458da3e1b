/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

package reasons

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ossian/death/logging"
)

var listopts struct {
	reasonsFile string
}

var Command = &cli.Command{
	Name:   "reasons",
	Usage:  "List the death reasons that predictions choose from.",
	Action: list,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:        "death-reasons",
			Aliases:     []string{"d"},
			Usage:       "File containing custom death reasons, one per line",
			Destination: &listopts.reasonsFile,
		},
	}, logging.Flags...),
}

func list(cc *cli.Context) error {
	logging.Setup()

	for _, r := range FromFile(listopts.reasonsFile) {
		fmt.Println(r)
	}
	return nil
}
