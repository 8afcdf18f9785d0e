package main

import "nathanbeddoewebdev/bwdash/cmd"

func main() {
	cmd.Execute()
}
