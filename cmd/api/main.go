package main

import (
	"os"

	"petclinic/cmd/api/commands"
)

// @title Pet Clinic API
// @version 1.0
// @description Owners, mascotas, visitas y veterinarios de la clínica.
// @BasePath /
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
