package main

import "github.com/jhoicas/pos-crm-api/cmd/crmctl/commands"

func main() {
	commands.Execute()
}
