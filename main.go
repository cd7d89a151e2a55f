package main

import "github.com/vitacli/vita/cmd/vita"

func main() {
	vita.Execute()
}
