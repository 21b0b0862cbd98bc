package main

import "commsctl/cmd"

func main() {
	cmd.Execute()
}
