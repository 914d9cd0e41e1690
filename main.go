package main

import "github.com/fitfocus/fitfocus-cli/cmd/fitfocus"

func main() {
	fitfocus.Execute()
}
