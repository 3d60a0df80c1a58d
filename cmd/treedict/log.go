package main

import (
	"os"

	"github.com/signadot/treedict/debug"
)

var theLog = debug.NewLogger(os.Stderr)
