package main

import "parambuster/cmd"

func main() {
	cmd.Execute()
}
