package main

import (
	"fmt"
	"os"

	"go-jobboard-backend/cmd/jobboard/commands"
)

func main() {
	if err := commands.NewRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
