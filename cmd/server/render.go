package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/internal/config"
	"resume-builder/internal/model"
	"resume-builder/internal/rendering"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	renderIn  string
	renderOut string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a document file to HTML or PDF",
	Long: `Reads a resume document from a JSON or YAML file and writes its preview
as a standalone HTML page or, for a .pdf output, prints it with headless Chrome.

Example:
  resume-builder render --in ada.yaml --out ada.pdf`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderIn, "in", "", "document file (.json, .yaml)")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "output file (.html, .pdf)")
	_ = renderCmd.MarkFlagRequired("in")
	_ = renderCmd.MarkFlagRequired("out")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	doc, err := model.LoadDocument(renderIn)
	if err != nil {
		return err
	}
	pages, err := rendering.New()
	if err != nil {
		return err
	}
	html, err := pages.Printable(usecase.RenderWithLimit(doc, cfg.SummarySoftLimit))
	if err != nil {
		return err
	}

	var out []byte
	switch ext := strings.ToLower(filepath.Ext(renderOut)); ext {
	case ".html", ".htm":
		out = []byte(html)
	case ".pdf":
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		out, err = infra.NewChromedpRenderer(cfg.ChromePath, cfg.ExportTimeout).RenderHTMLToPDF(ctx, html)
		if err != nil {
			return fmt.Errorf("render pdf: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	if err := os.WriteFile(renderOut, out, 0o644); err != nil {
		return err
	}
	logger.Info("wrote document", zap.String("path", renderOut), zap.Int("bytes", len(out)))
	return nil
}
