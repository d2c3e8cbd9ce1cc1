package main

import "github.com/aruizdev/fisioclinic_backend/cmd"

func main() {
	cmd.Execute()
}
