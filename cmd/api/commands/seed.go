package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"petclinic/internal/domain/clinic"
	"petclinic/internal/platform/config"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Carga los datos de ejemplo en el storage configurado",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Storage == config.StorageMemory {
				return fmt.Errorf("seed needs a persistent storage (--storage postgres|sqlite)")
			}

			svc, closeDB, err := openService(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = closeDB() }()

			err = clinic.Seed(cmd.Context(), svc)
			if errors.Is(err, clinic.ErrAlreadySeeded) {
				fmt.Println("Store already has data; nothing to seed.")
				return nil
			}
			if err != nil {
				return err
			}
			owners, err := svc.FindAllOwners(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Seed done. Owners: %d\n", len(owners))
			return nil
		},
	}
}
