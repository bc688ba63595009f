package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth/app"
	"github.com/etnz/networth/store"
	"github.com/google/subcommands"
)

// encryptCmd holds the flags for the 'encrypt' subcommand.
type encryptCmd struct {
	passphrase string
	disable    bool
}

func (*encryptCmd) Name() string     { return "encrypt" }
func (*encryptCmd) Synopsis() string { return "enable, change or disable data encryption" }
func (*encryptCmd) Usage() string {
	return `nw encrypt
nw encrypt -passphrase <passphrase>
nw encrypt -disable

  Without flags, tells whether the data is encrypted.

  The data is saved again right away under the new setting. When the stored
  data could not be decrypted, -passphrase unlocks it instead.
`
}

func (c *encryptCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.passphrase, "passphrase", "", "Encrypt the data with this passphrase.")
	f.BoolVar(&c.disable, "disable", false, "Store the data unencrypted.")
}

func (c *encryptCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.passphrase != "" && c.disable {
		fmt.Fprintln(os.Stderr, "Error: -passphrase and -disable are exclusive")
		return subcommands.ExitUsageError
	}

	return withController(ctx, false, func(ctl *app.Controller) subcommands.ExitStatus {
		if res := ctl.LoadResult(); (res == store.Malformed || res == store.Unreadable) && (c.passphrase != "" || c.disable) {
			fmt.Fprintf(os.Stderr, "Error: stored data is %s, refusing to overwrite it\n", res)
			return subcommands.ExitFailure
		}
		switch {
		case c.passphrase != "":
			if err := ctl.SetPassphrase(c.passphrase); err != nil {
				fmt.Fprintf(os.Stderr, "Error enabling encryption: %v\n", err)
				return subcommands.ExitFailure
			}
		case c.disable:
			if res := ctl.LoadResult(); res == store.Locked || res == store.Undecryptable {
				fmt.Fprintf(os.Stderr, "Error: stored data is %s, unlock it with -passphrase first\n", res)
				return subcommands.ExitFailure
			}
			if err := ctl.SetPassphrase(""); err != nil {
				fmt.Fprintf(os.Stderr, "Error disabling encryption: %v\n", err)
				return subcommands.ExitFailure
			}
		}

		if res := ctl.LoadResult(); res == store.Locked || res == store.Undecryptable {
			fmt.Printf("Encryption enabled: %t (stored data is %s)\n", ctl.EncryptionEnabled(), res)
			return subcommands.ExitSuccess
		}
		fmt.Printf("Encryption enabled: %t\n", ctl.EncryptionEnabled())
		return subcommands.ExitSuccess
	})
}
