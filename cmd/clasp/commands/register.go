package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"clasp/internal/domain"
	"clasp/internal/registry"
)

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register [owner-ref]",
		Short: "Publish your signing key to the identity registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner := domain.PartyRef(args[0])
			if wire.Registry == nil {
				return fmt.Errorf("no registry configured (--registry)")
			}

			id, err := wire.Identities.LoadIdentity(passphrase)
			if err != nil {
				return err
			}

			req := registry.NewRegisterRequest(owner, id)
			if err := wire.Registry.Register(cmd.Context(), req); err != nil {
				return err
			}

			fmt.Printf("Registered signing key for %s\n", owner)
			return nil
		},
	}
}
