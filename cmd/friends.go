package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zhubert/dinechat/internal/api"
	perrors "github.com/zhubert/dinechat/internal/errors"
)

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "List your accepted friends",
	RunE:  runFriends,
}

func init() {
	rootCmd.AddCommand(friendsCmd)
}

type friendLister interface {
	Friends(ctx context.Context, customerID int64) ([]api.Friend, error)
}

func runFriends(cmd *cobra.Command, args []string) error {
	cfg, err := loadAccount()
	if err != nil {
		return err
	}
	return printFriends(cmd.Context(), os.Stdout, api.NewClient(cfg), cfg.GetCustomerID())
}

// printFriends writes one line per friend: customer ID and username.
func printFriends(ctx context.Context, w io.Writer, lister friendLister, customerID int64) error {
	friends, err := lister.Friends(ctx, customerID)
	if err != nil {
		return fmt.Errorf("%s: %w", perrors.UserMessage(err, "Error loading friends."), err)
	}
	if len(friends) == 0 {
		fmt.Fprintln(w, "You have no friends yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME")
	for _, f := range friends {
		fmt.Fprintf(tw, "%d\t%s\n", f.CustomerID, f.Username)
	}
	return tw.Flush()
}
