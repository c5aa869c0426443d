package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	app := cli.NewApp()

	app.Version = version
	app.Name = "ammsim"
	app.Usage = "Simulate a constant product pool of Endcoin and Gaiacoin priced with an external signal"
	app.Commands = append(
		app.Commands,
		&simulate,
		&quote,
		&emissionCmd,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func printJSON(resp interface{}) {
	buf, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to encode response: ", err)
		return
	}

	fmt.Println(string(buf))
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[ammsim] %v\n", err)
	}
	os.Exit(1)
}
