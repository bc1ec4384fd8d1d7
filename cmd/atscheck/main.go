package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-scorer/internal/analyses"
	"resume-scorer/internal/extract"
)

var rootCmd = &cobra.Command{
	Use:   "atscheck",
	Short: "Score a resume against a job description",
	Long:  "atscheck runs the ATS scoring pipeline offline: extract text from a resume file, compare it against a job description, and print the full result as JSON.",
}

var (
	resumePath string
	jobPath    string
	industry   string
	pretty     bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Run the scoring pipeline and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		resumeText, err := readDocument(resumePath)
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}
		jobText, err := readDocument(jobPath)
		if err != nil {
			return fmt.Errorf("read job description: %w", err)
		}

		analysis, err := analyses.NewService().Analyze(analyses.Input{
			ResumeText:     resumeText,
			JobDescription: jobText,
			Industry:       industry,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		if pretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(analysis)
	},
}

// readDocument loads a file and extracts plain text from it, treating
// unknown extensions as plain text.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text, err := extract.Text(data, "", filepath.Base(path))
	if err == nil {
		return text, nil
	}
	return string(data), nil
}

func init() {
	scoreCmd.Flags().StringVar(&resumePath, "resume", "", "path to the resume file (pdf, docx, or txt)")
	scoreCmd.Flags().StringVar(&jobPath, "job", "", "path to the job description file")
	scoreCmd.Flags().StringVar(&industry, "industry", "", "industry label carried into the result")
	scoreCmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(scoreCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
