package main

import "github.com/Alijeyrad/crm_backend/cmd"

func main() {
	cmd.Execute()
}
