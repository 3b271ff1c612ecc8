package main

import "github.com/oshokin/plug-resources/cmd/prepare-resources/cmd"

func main() {
	cmd.Execute()
}
