package main

import (
	"github.com/GabrielleBarskyGiles/AtomDB/cmd/atomdb/cmd"
)

func main() {
	cmd.Execute()
}
