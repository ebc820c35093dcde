package main

import "github.com/attasm/attasm/cmd/attasm/cmd"

func main() {
	cmd.Execute()
}
