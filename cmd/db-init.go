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
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/reviseapp/revise/internal/infrastructure/config"
	"github.com/reviseapp/revise/internal/infrastructure/database"
	entdb "github.com/reviseapp/revise/internal/infrastructure/database/ent"
	enttasktype "github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktype"
)

// dbInitCmd applies the ent-managed schema and seeds reference data.
var dbInitCmd = &cobra.Command{
	Use:   "db-init",
	Short: "Run database migrations and seed the default task types",
	Long:  "Applies the ent-managed schema to the configured database and seeds the built-in task types. Use --schema-only to skip seeding. Note: the sqlite3 driver needs CGO_ENABLED=1 builds.",
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaOnly, _ := cmd.Flags().GetBool("schema-only")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		client, cleanup, err := database.NewEntClient(cfg)
		if err != nil {
			return fmt.Errorf("create ent client: %w", err)
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := client.Schema.Create(ctx); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		cmd.Println("migrations applied")

		if schemaOnly {
			return nil
		}

		seeded, err := seedTaskTypes(ctx, client)
		if err != nil {
			return fmt.Errorf("seed task types: %w", err)
		}
		cmd.Printf("task types seeded: %d new\n", seeded)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbInitCmd)
	dbInitCmd.Flags().Bool("schema-only", false, "only run migrations, do not seed reference data")
}

// seedTaskTypes inserts the built-in task types, skipping names that already
// exist so the command stays idempotent.
func seedTaskTypes(ctx context.Context, client *entdb.Client) (int, error) {
	defaults := []struct {
		name, description string
	}{
		{"revision", "Review notes and consolidate understanding"},
		{"practice", "Work through exam-style questions"},
		{"uplearn", "Complete the matching online course section"},
	}

	created := 0
	for _, tt := range defaults {
		exists, err := client.TaskType.Query().
			Where(enttasktype.NameEQ(tt.name)).
			Exist(ctx)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		if _, err := client.TaskType.Create().
			SetName(tt.name).
			SetDescription(tt.description).
			Save(ctx); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
