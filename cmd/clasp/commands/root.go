package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"clasp/internal/app"
)

var (
	home        string
	passphrase  string
	registryURL string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "clasp",
		Short: "Authenticated key exchange and identity registry CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".clasp")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			w, err := app.NewWire(app.Config{
				Home:        home,
				RegistryURL: registryURL,
			})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.clasp)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys")
	root.PersistentFlags().StringVar(&registryURL, "registry", "", "registry base URL (e.g. http://127.0.0.1:8080)")

	root.AddCommand(initCmd(), fingerprintCmd(), registerCmd(), lookupCmd())
	return root.Execute()
}
