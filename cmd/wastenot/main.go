// Command wastenot is a terminal client for the Waste Not food donation service.
package main

import "github.com/wastenot/wastenot/internal/commands"

func main() {
	commands.Execute()
}
