package main

import (
	"github.com/pinpt/lexoffice/cmd"
)

// these values go from the go build, do not change them
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
