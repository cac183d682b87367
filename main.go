package main

import "github.com/Johannes-Berggren/GitBuilding/cmd"

func main() {
	cmd.Execute()
}
