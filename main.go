package main

import "github.com/mselser95/profitrade/cmd"

func main() {
	cmd.Execute()
}
