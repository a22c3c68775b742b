package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage play tags",
	Long:  `Show, set, and clear the tags assigned to plays, and inspect the vocabulary.`,
}

var tagsShowCmd = &cobra.Command{
	Use:   "show <play-id>",
	Short: "Show the tags assigned to a play",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, closeTags, err := openTags()
		if err != nil {
			return fmt.Errorf("failed to open tag store: %w", err)
		}
		defer closeTags()

		labels := tags.Get(args[0])
		if len(labels) == 0 {
			fmt.Printf("%s: no tags\n", args[0])
			return nil
		}
		fmt.Printf("%s: %s\n", args[0], strings.Join(labels, ", "))
		return nil
	},
}

var tagsSetCmd = &cobra.Command{
	Use:   "set <play-id> <label>...",
	Short: "Replace a play's tag set",
	Long:  `Replace the full tag set of a play. Labels not yet in the vocabulary are added to it.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, closeTags, err := openTags()
		if err != nil {
			return fmt.Errorf("failed to open tag store: %w", err)
		}
		defer closeTags()

		playID := args[0]
		if err := tags.Set(playID, args[1:]); err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", playID, strings.Join(tags.Get(playID), ", "))
		return nil
	},
}

var tagsClearCmd = &cobra.Command{
	Use:   "clear <play-id>",
	Short: "Remove all tags from a play",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, closeTags, err := openTags()
		if err != nil {
			return fmt.Errorf("failed to open tag store: %w", err)
		}
		defer closeTags()

		if err := tags.Set(args[0], nil); err != nil {
			return err
		}
		fmt.Printf("%s: cleared\n", args[0])
		return nil
	},
}

var tagsVocabCmd = &cobra.Command{
	Use:   "vocab [query]",
	Short: "List the tag vocabulary",
	Long:  `List every known label, optionally narrowed by a fuzzy query (substring or token prefix).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, closeTags, err := openTags()
		if err != nil {
			return fmt.Errorf("failed to open tag store: %w", err)
		}
		defer closeTags()

		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		for _, l := range tags.FilterVocabulary(query) {
			fmt.Println(l)
		}
		return nil
	},
}

func init() {
	tagsCmd.AddCommand(tagsShowCmd)
	tagsCmd.AddCommand(tagsSetCmd)
	tagsCmd.AddCommand(tagsClearCmd)
	tagsCmd.AddCommand(tagsVocabCmd)
	rootCmd.AddCommand(tagsCmd)
}
