package main

import "github.com/mcoot/tictactoe-client/internal/cli"

func main() {
	cli.Execute()
}
