package main

import "github.com/iw2rmb/nibble/cmd/nibble/cmd"

func main() {
	cmd.Execute()
}
