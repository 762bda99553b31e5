// stickercube - apply, render and save 3x3 cube states from standard notation.
package main

import (
	"github.com/SeamusWaldron/stickercube/internal/cli"
)

func main() {
	cli.Execute()
}
