package main

import (
	"flag"

	"github.com/timoha/aistore/cmd"
)

func main() {
	flag.Parse()

	cmd.Execute()
}
