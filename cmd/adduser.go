/*
Copyright © 2025 Theo Marsden <theo@reviseapp.dev>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	adapterrepo "github.com/reviseapp/revise/internal/adapter/repository"
	"github.com/reviseapp/revise/internal/infrastructure/config"
	"github.com/reviseapp/revise/internal/infrastructure/database"
	"github.com/reviseapp/revise/internal/usecase"
)

// addUserCmd represents the add-user command
var addUserCmd = &cobra.Command{
	Use:   "add-user",
	Short: "Create a user account from the command line",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		client, cleanup, err := database.NewEntClient(cfg)
		if err != nil {
			return fmt.Errorf("create ent client: %w", err)
		}
		defer cleanup()

		users := usecase.NewUserUsecase(adapterrepo.NewUserRepository(client))
		user, err := users.Register(cmd.Context(), email, username, password)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		cmd.Printf("created user %d (%s)\n", user.ID, user.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addUserCmd)

	addUserCmd.Flags().String("email", "", "email address (login name)")
	addUserCmd.Flags().String("username", "", "display name")
	addUserCmd.Flags().String("password", "", "password, at least 8 characters")
	_ = addUserCmd.MarkFlagRequired("email")
	_ = addUserCmd.MarkFlagRequired("username")
	_ = addUserCmd.MarkFlagRequired("password")
}
