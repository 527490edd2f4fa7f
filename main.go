package main

import "localfm/cmd"

func main() {
	cmd.Execute()
}
