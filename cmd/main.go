package main

import (
	"github.com/Dosada05/swiss-tournament/cli"
)

func main() {
	cli.Execute()
}
