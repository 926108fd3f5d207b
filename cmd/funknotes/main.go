package main

import "funknotes/cmd/funknotes/cmd"

func main() {
	cmd.Execute()
}
