package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/splinterwood/readmegen/internal/generate"
	"github.com/splinterwood/readmegen/internal/render"
	"github.com/splinterwood/readmegen/internal/tree"
)

// --- Generate tool ---

// GenerateInput is the input for the generate tool.
type GenerateInput struct {
	TemplateDir string `json:"template_dir,omitempty" jsonschema:"fragment directory (default: project/global/built-in resolution)"`
	Binary      string `json:"binary,omitempty"       jsonschema:"path or PATH name of the documented binary"`
	Name        string `json:"name,omitempty"         jsonschema:"tool name used for CLI_NAME (default: binary basename)"`
	Output      string `json:"output,omitempty"       jsonschema:"output path (default: README.md)"`
	DryRun      bool   `json:"dry_run,omitempty"      jsonschema:"render without writing the output file"`
}

// GenerateOutput is the output for the generate tool.
type GenerateOutput struct {
	Path          string `json:"path"           jsonschema:"output path"`
	Written       bool   `json:"written"        jsonschema:"whether the file was written"`
	Version       string `json:"version"        jsonschema:"version extracted from the documented binary"`
	TreeSource    string `json:"tree_source"    jsonschema:"tier that produced the embedded tree"`
	FragmentCount int    `json:"fragment_count" jsonschema:"number of fragments rendered"`
	Tree          string `json:"tree,omitempty" jsonschema:"normalized tree text (dry run only)"`
}

func handleGenerate() mcp.ToolHandlerFor[GenerateInput, GenerateOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
		result, err := generate.Run(ctx, generate.Options{
			TemplateDir: input.TemplateDir,
			Binary:      input.Binary,
			Name:        input.Name,
			Output:      input.Output,
		})
		if err != nil {
			return nil, GenerateOutput{}, fmt.Errorf("generating README: %w", err)
		}

		out := GenerateOutput{
			Path:          result.OutputPath,
			Version:       result.Version,
			TreeSource:    string(result.Tree.Source),
			FragmentCount: len(result.Fragments),
		}

		if input.DryRun {
			out.Tree = result.Tree.Text()
			return nil, out, nil
		}

		if err := result.Write(); err != nil {
			return nil, GenerateOutput{}, fmt.Errorf("writing README: %w", err)
		}
		out.Written = true
		return nil, out, nil
	}
}

// --- Tree tool ---

// TreeInput is the input for the tree tool.
type TreeInput struct {
	Dir string `json:"dir,omitempty" jsonschema:"directory to list (default: current directory)"`
}

// TreeOutput is the output for the tree tool.
type TreeOutput struct {
	Source string `json:"source" jsonschema:"tier that produced the tree: preferred, fallback, or unavailable"`
	Text   string `json:"text"   jsonschema:"normalized tree text"`
}

func handleTree() mcp.ToolHandlerFor[TreeInput, TreeOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TreeInput) (*mcp.CallToolResult, TreeOutput, error) {
		dir := input.Dir
		if dir == "" {
			dir = "."
		}

		result := tree.Produce(ctx, dir)

		return nil, TreeOutput{
			Source: string(result.Source),
			Text:   result.Text(),
		}, nil
	}
}

// --- Fragments tool ---

// FragmentsInput is the input for the fragments tool.
type FragmentsInput struct {
	TemplateDir string `json:"template_dir,omitempty" jsonschema:"fragment directory (default: project/global/built-in resolution)"`
}

// FragmentInfo describes one resolved fragment.
type FragmentInfo struct {
	Name   string `json:"name"           jsonschema:"fragment filename"`
	Source string `json:"source"         jsonschema:"tier the fragment came from"`
	Path   string `json:"path,omitempty" jsonschema:"on-disk path (empty for built-in)"`
}

// FragmentsOutput is the output for the fragments tool.
type FragmentsOutput struct {
	Fragments []FragmentInfo `json:"fragments" jsonschema:"fragments in render order"`
}

func handleFragments() mcp.ToolHandlerFor[FragmentsInput, FragmentsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input FragmentsInput) (*mcp.CallToolResult, FragmentsOutput, error) {
		fragments, err := render.Resolve(input.TemplateDir, nil)
		if err != nil {
			return nil, FragmentsOutput{}, fmt.Errorf("resolving fragments: %w", err)
		}

		out := FragmentsOutput{Fragments: make([]FragmentInfo, 0, len(fragments))}
		for _, frag := range fragments {
			out.Fragments = append(out.Fragments, FragmentInfo{
				Name:   frag.Name,
				Source: frag.Source,
				Path:   frag.Path,
			})
		}
		return nil, out, nil
	}
}
