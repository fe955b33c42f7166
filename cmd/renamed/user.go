package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "user",
		Short: "Show the authenticated user and remaining credits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			user, err := client.Account.GetWithContext(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("user: %s", user.Email)
			if user.Name != "" {
				fmt.Printf(" (%s)", user.Name)
			}
			fmt.Println()
			if user.Team != nil {
				fmt.Printf("team: %s\n", user.Team.Name)
			}
			fmt.Printf("credits: %d\n", user.Credits)
			return nil
		},
	}
}
