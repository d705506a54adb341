package main

import "github.com/timvw/port-patrol/cmd"

func main() {
	cmd.Execute()
}
