package main

import (
	"github.com/pkgtools/depmatch/cmd"
)

func main() {
	cmd.Execute()
}
