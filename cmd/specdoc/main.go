package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"specdoc/internal/config"
	"specdoc/internal/pipeline"
	"specdoc/internal/splitter"
)

var (
	rootCmd = &cobra.Command{
		Use:   "specdoc",
		Short: "Render extended API blueprints to HTML or PDF",
	}
	configPath string
)

var (
	inputPath      string
	outputDir      string
	templatePath   string
	pdfOutput      bool
	noClearTempDir bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the YAML config file")

	renderCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Specification file to render")
	renderCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Destination directory")
	renderCmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template overriding the configured one")
	renderCmd.Flags().BoolVar(&pdfOutput, "pdf", false, "Paginate the rendered document into a PDF")
	renderCmd.Flags().BoolVar(&noClearTempDir, "no-clear-temp-dir", false, "Keep the per-job work directory")
	_ = renderCmd.MarkFlagRequired("input")
	_ = renderCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(splitCmd)
}

func loadConfig() *config.Config {
	if configPath == "" {
		cfg, err := config.LoadConfig("specdoc.yaml")
		if err == nil {
			return cfg
		}
		return config.Default()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Convert a specification file into an HTML page or a PDF",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		job := pipeline.NewRenderJob(cfg, inputPath, outputDir)
		job.TemplatePath = templatePath
		job.PDF = pdfOutput
		job.KeepTempDir = noClearTempDir

		fmt.Printf("🚀 Rendering %s...\n", inputPath)
		start := time.Now()

		if err := job.Run(context.Background()); err != nil {
			log.Fatalf("Render failed: %v", err)
		}

		fmt.Printf("🎉 Done in %v.\n", time.Since(start).Round(time.Millisecond))
	},
}

var splitCmd = &cobra.Command{
	Use:   "split [spec]",
	Short: "Split a specification into its blueprint and metadata streams",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := splitter.SplitFile(args[0])
		if err != nil {
			log.Fatalf("Split failed: %v", err)
		}

		fmt.Println("===== blueprint =====")
		fmt.Print(result.Blueprint)
		fmt.Println("===== metadata =====")
		fmt.Print(result.Metadata)
	},
}
