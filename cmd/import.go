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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	adapterrepo "github.com/reviseapp/revise/internal/adapter/repository"
	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/infrastructure/config"
	"github.com/reviseapp/revise/internal/infrastructure/database"
	"github.com/reviseapp/revise/internal/repository"
)

// curriculumFile is the on-disk layout of a curriculum import file. Papers
// nest category topics under "categories"; flat subjects put subtopics
// directly on their topics.
type curriculumFile struct {
	Subjects []subjectNode `json:"subjects"`
}

type subjectNode struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Group       string      `json:"group,omitempty"`
	Topics      []topicNode `json:"topics"`
}

type topicNode struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Categories  []topicNode    `json:"categories,omitempty"`
	Subtopics   []subtopicNode `json:"subtopics,omitempty"`
}

type subtopicNode struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Duration    int    `json:"duration,omitempty"`
}

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a curriculum file",
	Long:  "Loads subjects, topics and subtopics from a JSON curriculum file into the database. The import is atomic: a failed run leaves nothing behind. Use - to read from standard input.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		client, cleanup, err := database.NewEntClient(cfg)
		if err != nil {
			return fmt.Errorf("create ent client: %w", err)
		}
		defer cleanup()

		if err := client.Schema.Create(ctx); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		var reader io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			file, openErr := os.Open(filepath.Clean(args[0]))
			if openErr != nil {
				return fmt.Errorf("open curriculum file: %w", openErr)
			}
			defer func() {
				if cerr := file.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			reader = file
		}

		var curriculum curriculumFile
		decoder := json.NewDecoder(reader)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&curriculum); err != nil {
			return fmt.Errorf("decode curriculum file: %w", err)
		}
		if len(curriculum.Subjects) == 0 {
			return fmt.Errorf("curriculum file contains no subjects")
		}

		repo := adapterrepo.NewCurriculumRepository(client)
		stats, err := repo.Import(ctx, lo.Map(curriculum.Subjects, func(s subjectNode, _ int) repository.SubjectImport {
			return subjectImportFromNode(s)
		}))
		if err != nil {
			return fmt.Errorf("import curriculum: %w", err)
		}

		cmd.Printf("imported %d subjects, %d topics, %d subtopics\n",
			stats.Subjects, stats.Topics, stats.Subtopics)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func subjectImportFromNode(node subjectNode) repository.SubjectImport {
	return repository.SubjectImport{
		Subject: entity.Subject{
			Title:       node.Title,
			Description: node.Description,
			Group:       node.Group,
		},
		Topics: lo.Map(node.Topics, func(t topicNode, _ int) repository.TopicImport {
			return topicImportFromNode(t)
		}),
	}
}

func topicImportFromNode(node topicNode) repository.TopicImport {
	return repository.TopicImport{
		Topic: entity.Topic{
			Title:       node.Title,
			Description: node.Description,
		},
		Subtopics: lo.Map(node.Subtopics, func(s subtopicNode, _ int) entity.Subtopic {
			duration := s.Duration
			if duration < entity.MinSubtopicMinutes {
				duration = entity.MinSubtopicMinutes
			}
			return entity.Subtopic{
				Title:             s.Title,
				Description:       s.Description,
				EstimatedDuration: duration,
			}
		}),
		Categories: lo.Map(node.Categories, func(t topicNode, _ int) repository.TopicImport {
			return topicImportFromNode(t)
		}),
	}
}
