package main

import "github.com/wkalt/prioq/cli/cmd"

func main() {
	cmd.Execute()
}
