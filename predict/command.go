/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

package predict

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ossian/death/date"
	"github.com/ossian/death/identifier"
	"github.com/ossian/death/logging"
	"github.com/ossian/death/reasons"
)

var predictopts struct {
	name          string
	birthday      string
	reasonsFile   string
	lifespan      int
	deterministic bool
}

var Command = &cli.Command{
	Name:   "predict",
	Usage:  "Predict a date and cause of death.",
	Action: predictCmd,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:        "name",
			Aliases:     []string{"n"},
			Usage:       "Your name",
			Destination: &predictopts.name,
		},
		&cli.StringFlag{
			Name:        "birthday",
			Aliases:     []string{"b"},
			Usage:       "Your birthday, such as 27/10/1986 or \"27 October 1986\"",
			Destination: &predictopts.birthday,
		},
		&cli.StringFlag{
			Name:        "death-reasons",
			Aliases:     []string{"d"},
			Usage:       "File containing custom death reasons, one per line",
			Destination: &predictopts.reasonsFile,
		},
		&cli.IntFlag{
			Name:        "lifespan",
			Usage:       "Exact lifespan in years to use instead of deriving one",
			Destination: &predictopts.lifespan,
		},
		&cli.BoolFlag{
			Name:        "deterministic",
			Usage:       "Omit the random perturbation so output is reproducible",
			Destination: &predictopts.deterministic,
		},
	}, logging.Flags...),
}

func predictCmd(cc *cli.Context) error {
	logging.Setup()

	name := predictopts.name
	if name == "" {
		var err error
		name, err = prompt("What is your name? ")
		if err != nil {
			return err
		}
	}

	input := predictopts.birthday
	if input == "" {
		var err error
		input, err = prompt("When were you born? ")
		if err != nil {
			return err
		}
	}

	birthday, err := date.Parse(input)
	if err != nil {
		return fmt.Errorf("birthday: %w", err)
	}

	rs := reasons.FromFile(predictopts.reasonsFile)

	seed := identifier.Seed(name)
	age := birthday.YearsSince(date.Today())
	logging.Debug("built profile", "id", identifier.New(name), "age", age, "reasons", len(rs))

	p := NewSeeded(seed)

	lifespan := predictopts.lifespan
	if lifespan == 0 {
		lifespan = p.Lifespan(age)
	}

	deathDate := p.DeathDate(birthday, lifespan, predictopts.deterministic)
	reason, err := p.Reason(rs)
	if err != nil {
		return fmt.Errorf("pick reason: %w", err)
	}

	if logging.Opts.VeryVerbose {
		logging.Dump(struct {
			Name     string
			Birthday date.Date
			Age      int
			Lifespan int
		}{name, birthday, age, lifespan})
	}

	fmt.Println()
	fmt.Println("DATE OF DEATH")
	fmt.Println(deathDate.Long())
	fmt.Printf("Be aware of: %s\n", reason)

	return nil
}

func prompt(question string) (string, error) {
	fmt.Print(question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
