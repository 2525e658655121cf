package main

import "github/walletops/fordefi-cli/cmd"

func main() {
	cmd.Execute()
}
