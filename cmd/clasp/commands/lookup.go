package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"clasp/internal/crypto"
	"clasp/internal/domain"
)

func lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [owner-ref]",
		Short: "Fetch a party's registered signing key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner := domain.PartyRef(args[0])
			if wire.Registry == nil {
				return fmt.Errorf("no registry configured (--registry)")
			}

			key, ok, err := wire.Registry.Lookup(cmd.Context(), owner)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s is not registered", owner)
			}

			fmt.Printf("Signing key: %x\n", key.Slice())
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(key.Slice()))
			return nil
		},
	}
}
