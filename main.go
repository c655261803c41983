package main

import "microscan/cmd"

func main() {
	cmd.Execute()
}
