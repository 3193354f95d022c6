package main

import "github.com/matkrin/mvg-cli/cmd"

func main() {
	cmd.Execute()
}
