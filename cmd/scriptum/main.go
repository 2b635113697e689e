// -----------------------------------------------------------------------
// Scriptum - document structure analysis CLI
// Ingests documents, analyzes their structure and manages the results
// -----------------------------------------------------------------------

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ternarybob/scriptum/internal/app"
	"github.com/ternarybob/scriptum/internal/common"
	"github.com/ternarybob/scriptum/internal/interfaces"
	"github.com/ternarybob/scriptum/internal/services/export"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:     "scriptum",
		Short:   "Document structure analyzer",
		Long:    "Scriptum extracts text from documents, segments it into titles,\nsections, clauses, tables and signatures, and keeps the results in a\nlocal store for export and certification.",
		Version: common.GetFullVersion(),
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (TOML)")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(getCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(certificateCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp loads config, initializes logging and wires the application.
func newApp() (*app.App, error) {
	cfg, err := common.LoadFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := common.InitLogger(cfg)
	common.PrintBanner(common.GetVersion())

	return app.New(cfg, logger)
}

func analyzeCmd() *cobra.Command {
	var mimeType string

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Extract, analyze and store a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			doc, err := a.DocumentService.Ingest(context.Background(), args[0], mimeType)
			if err != nil {
				return err
			}

			fmt.Printf("Stored %s\n", doc.ID)
			fmt.Printf("  Type:       %s\n", doc.Extraction.DocumentType)
			fmt.Printf("  Confidence: %.2f\n", doc.Extraction.Confidence)
			if doc.Structured.Title != "" {
				fmt.Printf("  Title:      %s\n", doc.Structured.Title)
			}
			fmt.Printf("  Clauses:    %d\n", len(doc.Structured.Clauses))
			fmt.Printf("  Sections:   %d\n", len(doc.Structured.Sections))
			fmt.Printf("  Tables:     %d\n", len(doc.Structured.Tables))
			fmt.Printf("  Signatures: %d\n", len(doc.Structured.Signatures))
			return nil
		},
	}
	cmd.Flags().StringVar(&mimeType, "mime-type", "", "mime type hint, inferred from extension when empty")
	return cmd
}

func listCmd() *cobra.Command {
	var docType string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			docs, err := a.DocumentService.ListDocuments(context.Background(), &interfaces.ListOptions{
				DocumentType: docType,
				Limit:        limit,
			})
			if err != nil {
				return err
			}

			if len(docs) == 0 {
				fmt.Println("No documents stored.")
				return nil
			}
			for _, doc := range docs {
				docTypeLabel := "Unknown"
				if doc.Extraction != nil {
					docTypeLabel = doc.Extraction.DocumentType
				}
				fmt.Printf("%s  %-16s  %s\n", doc.ID, docTypeLabel, doc.FileName)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&docType, "type", "", "filter by classified document type")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum documents to list, 0 = all")
	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print a stored document as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			doc, err := a.DocumentService.GetDocument(context.Background(), args[0])
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.DocumentService.DeleteDocument(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show document store statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			stats, err := a.DocumentService.GetStats(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Documents: %d\n", stats.TotalDocuments)
			for docType, count := range stats.DocumentsByType {
				fmt.Printf("  %-20s %d\n", docType, count)
			}
			if !stats.LastUpdated.IsZero() {
				fmt.Printf("Last updated: %s\n", stats.LastUpdated.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var format string
	var toFile bool

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a document's structured content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exportFormat, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			doc, err := a.DocumentService.GetDocument(context.Background(), args[0])
			if err != nil {
				return err
			}

			if toFile {
				path, err := a.ExportService.Write(doc, exportFormat)
				if err != nil {
					return err
				}
				fmt.Printf("Written %s\n", path)
				return nil
			}

			content, err := a.ExportService.Render(doc, exportFormat)
			if err != nil {
				return err
			}
			fmt.Println(content)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "export format: text, json or structured")
	cmd.Flags().BoolVarP(&toFile, "output", "o", false, "write to the configured export directory instead of stdout")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(common.GetFullVersion())
		},
	}
}

func certificateCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "certificate <document-id>",
		Short: "Issue or verify the admissibility certificate record for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := context.Background()

			if verify {
				cert, err := a.CertificateService.GetByDocument(ctx, args[0])
				if err != nil {
					return err
				}
				ok, err := a.CertificateService.Verify(ctx, cert.ID)
				if err != nil {
					return err
				}
				if ok {
					fmt.Printf("Certificate %s verified: digest matches\n", cert.ID)
				} else {
					fmt.Printf("Certificate %s INVALID: document text has changed\n", cert.ID)
				}
				return nil
			}

			cert, err := a.CertificateService.Issue(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Issued %s\n", cert.ID)
			fmt.Printf("  Document: %s\n", cert.DocumentID)
			fmt.Printf("  Digest:   %s\n", cert.ContentDigest)
			if len(cert.Parties) > 0 {
				fmt.Printf("  Parties:  %s\n", strings.Join(cert.Parties, "; "))
			}
			fmt.Println()
			fmt.Println(cert.Statement)
			return nil
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "verify the stored certificate against the current document text")
	return cmd
}
