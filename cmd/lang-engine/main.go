package main

import (
	"github.com/neonvision/lang-engine/internal/cmd"
)

func main() {
	cmd.Execute()
}
