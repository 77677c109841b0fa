// Package mcp exposes outline extraction as MCP tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/docsift/pdfoutline/internal/config"
	"github.com/docsift/pdfoutline/internal/outline"
	"github.com/docsift/pdfoutline/internal/pdf"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server instance
type Server struct {
	config    *config.Config
	extractor *outline.Extractor
	validator *pdf.Validator
	search    *pdf.Search
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:    cfg,
		extractor: outline.NewExtractor(cfg.IsDebug()),
		validator: pdf.NewValidator(cfg.MaxFileSize),
		search:    pdf.NewSearch(cfg.MaxFileSize),
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	extractOutlineTool := mcp.NewTool(
		"pdf_extract_outline",
		mcp.WithDescription("Extract the title and hierarchical heading outline from a PDF file"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'text' (default) or 'json'"),
		),
	)
	s.mcpServer.AddTool(extractOutlineTool, s.handleExtractOutline)

	validateFileTool := mcp.NewTool(
		"pdf_validate_file",
		mcp.WithDescription("Validate if a file is a readable PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(validateFileTool, s.handleValidateFile)

	searchDirectoryTool := mcp.NewTool(
		"pdf_search_directory",
		mcp.WithDescription("Search for PDF files in a directory with optional name filtering"),
		mcp.WithString("directory",
			mcp.Description("Directory path to search (uses default if empty)"),
		),
		mcp.WithString("query",
			mcp.Description("Optional case-insensitive substring filter on file names"),
		),
	)
	s.mcpServer.AddTool(searchDirectoryTool, s.handleSearchDirectory)
}

// Handler functions
func (s *Server) handleExtractOutline(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.validator.ValidateFile(path); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.extractor.Extract(path)

	args := request.GetArguments()
	if format, ok := args["format"].(string); ok && format == "json" {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(encoded)), nil
	}

	return mcp.NewToolResultText(s.formatOutlineResult(path, result)), nil
}

func (s *Server) handleValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if err := s.validator.ValidateFile(path); err != nil {
		responseText = fmt.Sprintf("PDF validation failed for %s: %s", path, err.Error())
	} else {
		responseText = fmt.Sprintf("PDF file %s is valid and readable", path)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleSearchDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.PDFDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	query := ""
	if q, ok := args["query"].(string); ok {
		query = q
	}

	files, err := s.search.FindPDFs(directory, query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(files) == 0 {
		responseText := fmt.Sprintf("No PDF files found in directory: %s", directory)
		if query != "" {
			responseText += fmt.Sprintf(" (searched for: %s)", query)
		}
		return mcp.NewToolResultText(responseText), nil
	}

	return mcp.NewToolResultText(s.formatSearchResult(directory, query, files)), nil
}

// Formatting methods
func (s *Server) formatOutlineResult(path string, result *outline.Result) string {
	if result.Failed() {
		return fmt.Sprintf("Outline extraction failed for %s: %s", path, result.Error)
	}

	text := fmt.Sprintf("Outline for: %s\n", path)
	text += fmt.Sprintf("Title: %s\n", result.Title)
	text += fmt.Sprintf("Method: %s\n", result.Method)
	text += fmt.Sprintf("Headings: %d\n", len(result.Outline))

	if len(result.Outline) > 0 {
		text += "\nOutline:\n"
		for _, entry := range result.Outline {
			indent := ""
			switch entry.Level {
			case outline.LevelH2:
				indent = "  "
			case outline.LevelH3:
				indent = "    "
			}
			text += fmt.Sprintf("%s%s %s (page %d)\n", indent, entry.Level, entry.Text, entry.Page)
		}
	}

	return text
}

func (s *Server) formatSearchResult(directory, query string, files []pdf.FileInfo) string {
	text := fmt.Sprintf("Found %d PDF file(s) in directory: %s\n", len(files), directory)
	if query != "" {
		text += fmt.Sprintf("Search query: %s\n", query)
	}
	text += "\nFiles:\n"

	for i, file := range files {
		text += fmt.Sprintf("%d. %s\n", i+1, file.Name)
		text += fmt.Sprintf("   Path: %s\n", file.Path)
		text += fmt.Sprintf("   Size: %d bytes\n", file.Size)
		text += fmt.Sprintf("   Modified: %s\n", file.ModifiedTime)
		if i < len(files)-1 {
			text += "\n"
		}
	}

	return text
}

// Run starts the MCP server over stdio
func (s *Server) Run(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting PDF outline MCP server in stdio mode")
		log.Printf("PDF directory: %s", s.config.PDFDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
