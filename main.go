package main

import "github.com/prxgr4mm3r/swanky-cli/cmd"

func main() {
	cmd.Execute()
}
