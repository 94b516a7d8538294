package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mealplanr/aisle/internal/cli"
	"github.com/mealplanr/aisle/internal/engine"
	"github.com/mealplanr/aisle/internal/model"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func categorizeCmd() *cobra.Command {
	var (
		filePath string
		asJSON   bool
		grouped  bool
	)

	cmd := &cobra.Command{
		Use:   "categorize [text]",
		Short: "Categorize ingredient descriptions",
		Long: `Categorize a single ingredient description, or a batch of
newline-separated descriptions with --file (use - for stdin).`,
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			eng := engine.Default()

			if filePath != "" {
				return categorizeBatch(eng, filePath, asJSON, grouped)
			}

			if len(args) == 0 {
				return fmt.Errorf("provide ingredient text or --file")
			}

			result := eng.Categorize(strings.Join(args, " "))
			if asJSON {
				return writeJSON(os.Stdout, result)
			}

			printResult(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "read newline-separated descriptions from a file (- for stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON output")
	cmd.Flags().BoolVar(&grouped, "group", false, "group batch results by aisle")

	return cmd
}

func categorizeBatch(eng *engine.Engine, filePath string, asJSON, grouped bool) error {
	lines, err := readLines(filePath)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(lines),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Categorizing..."),
	)

	results := make([]model.CategorizedIngredient, 0, len(lines))
	for _, line := range lines {
		results = append(results, eng.Categorize(line))
		if err := bar.Add(1); err != nil {
			return fmt.Errorf("failed to update progress bar: %w", err)
		}
	}
	fmt.Fprintln(os.Stderr)

	switch {
	case grouped:
		printGroups(engine.GroupByCategory(results))
	case asJSON:
		for _, result := range results {
			if err := writeJSON(os.Stdout, result); err != nil {
				return err
			}
		}
	default:
		for _, result := range results {
			printResult(result)
		}
	}

	return nil
}

func readLines(filePath string) ([]string, error) {
	var reader io.Reader
	if filePath == "-" {
		reader = os.Stdin
	} else {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var lines []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return lines, nil
}

func writeJSON(w io.Writer, result model.CategorizedIngredient) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

func printResult(result model.CategorizedIngredient) {
	fmt.Printf("%s %s %s %s\n",
		result.Category.Icon,
		cli.BoldStyle.Render(result.DisplayName),
		cli.SubtleStyle.Render(result.Category.Name),
		cli.InfoStyle.Render(fmt.Sprintf("(%.0f%%)", result.Confidence*100)))
}

func printGroups(groups []engine.Group) {
	for _, group := range groups {
		fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s %s", group.Category.Icon, group.Category.Name)))
		for _, item := range group.Items {
			fmt.Printf("  %s %s\n",
				cli.BoldStyle.Render(item.DisplayName),
				cli.SubtleStyle.Render(fmt.Sprintf("(%s)", item.OriginalText)))
		}
	}
}
