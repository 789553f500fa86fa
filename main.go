package main

import "github.com/khanhnv2901/iotscan/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
