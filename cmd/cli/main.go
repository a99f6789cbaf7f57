package main

import "gestorfichas/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
