package main

import "linerev/cmd/linerev/cmd"

func main() {
	cmd.Execute()
}
