package main

import "github.com/apvd-go/apvd/cmd/apvd/cmd"

func main() {
	cmd.Execute()
}
