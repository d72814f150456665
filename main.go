package main

import (
	"animal-savior/cli"
)

func main() {
	cli.Start()
}
