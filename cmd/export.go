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

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the curriculum as a JSON file",
	Long:  "Writes the stored curriculum in the same JSON layout the import command reads, so an export can be re-imported into a fresh database. Use --output - for standard output.",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		client, cleanup, err := database.NewEntClient(cfg)
		if err != nil {
			return fmt.Errorf("create ent client: %w", err)
		}
		defer cleanup()

		curriculum, err := collectCurriculum(cmd.Context(),
			adapterrepo.NewSubjectRepository(client),
			adapterrepo.NewTopicRepository(client),
			adapterrepo.NewSubtopicRepository(client),
		)
		if err != nil {
			return err
		}

		var writer io.Writer = cmd.OutOrStdout()
		if output != "-" {
			file, createErr := os.Create(filepath.Clean(output))
			if createErr != nil {
				return fmt.Errorf("create output file: %w", createErr)
			}
			defer func() {
				if cerr := file.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			writer = file
		}

		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(curriculum); err != nil {
			return fmt.Errorf("encode curriculum: %w", err)
		}

		if output != "-" {
			cmd.Printf("exported %d subjects to %s\n", len(curriculum.Subjects), output)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "-", "output file path, - for standard output")
}

// collectCurriculum rebuilds the nested file layout from the stored rows.
func collectCurriculum(
	ctx context.Context,
	subjects repository.SubjectRepository,
	topics repository.TopicRepository,
	subtopics repository.SubtopicRepository,
) (*curriculumFile, error) {
	stored, err := subjects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	out := &curriculumFile{Subjects: make([]subjectNode, 0, len(stored))}
	for _, subject := range stored {
		papers, err := topics.ListPapers(ctx, subject.ID)
		if err != nil {
			return nil, fmt.Errorf("list topics of %q: %w", subject.Title, err)
		}

		node := subjectNode{
			Title:       subject.Title,
			Description: subject.Description,
			Group:       subject.Group,
		}
		for _, paper := range papers {
			paperNode, err := topicNodeFor(ctx, topics, subtopics, paper)
			if err != nil {
				return nil, err
			}
			node.Topics = append(node.Topics, paperNode)
		}
		out.Subjects = append(out.Subjects, node)
	}
	return out, nil
}

func topicNodeFor(
	ctx context.Context,
	topics repository.TopicRepository,
	subtopics repository.SubtopicRepository,
	topic entity.Topic,
) (topicNode, error) {
	stored, err := subtopics.ListByTopic(ctx, topic.ID)
	if err != nil {
		return topicNode{}, fmt.Errorf("list subtopics of %q: %w", topic.Title, err)
	}

	node := topicNode{
		Title:       topic.Title,
		Description: topic.Description,
		Subtopics: lo.Map(stored, func(s entity.Subtopic, _ int) subtopicNode {
			return subtopicNode{
				Title:       s.Title,
				Description: s.Description,
				Duration:    s.EstimatedDuration,
			}
		}),
	}

	children, err := topics.ListChildren(ctx, topic.ID)
	if err != nil {
		return topicNode{}, fmt.Errorf("list categories of %q: %w", topic.Title, err)
	}
	for _, child := range children {
		childNode, err := topicNodeFor(ctx, topics, subtopics, child)
		if err != nil {
			return topicNode{}, err
		}
		node.Categories = append(node.Categories, childNode)
	}
	return node, nil
}
