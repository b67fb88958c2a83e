package stockroom

import (
	"os"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// parseReadmeBlocks parses README.md and returns the content of every
// fenced code block, keyed by its info string (the language tag).
func parseReadmeBlocks(t *testing.T) map[string][]string {
	t.Helper()

	content, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	blocks := make(map[string][]string)
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		lang := string(fcb.Info.Segment.Value(content))
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.WriteString(string(line.Value(content)))
		}
		blocks[lang] = append(blocks[lang], b.String())
		return ast.WalkContinue, nil
	})
	return blocks
}

// TestReadmeCoversEverySubcommand ensures the README stays in sync with
// the command surface: every subcommand must have at least one bash
// example invoking it.
func TestReadmeCoversEverySubcommand(t *testing.T) {
	// Mirrors cmd.Commands; importing cmd here would be a cycle.
	subcommands := []string{
		"sell", "add", "restock", "list", "update",
		"delete", "search", "lowstock", "history",
	}

	blocks := parseReadmeBlocks(t)
	bash := strings.Join(blocks["bash"], "\n")

	for _, name := range subcommands {
		if !strings.Contains(bash, "stk "+name) {
			t.Errorf("README.md has no bash example for the %q subcommand", name)
		}
	}
}

// TestReadmeConfigExample checks the documented config keys against the
// real ones, so a renamed key cannot silently leave the docs stale.
func TestReadmeConfigExample(t *testing.T) {
	blocks := parseReadmeBlocks(t)
	if len(blocks["yaml"]) == 0 {
		t.Fatal("README.md has no yaml config example")
	}
	yaml := strings.Join(blocks["yaml"], "\n")

	for _, key := range []string{
		"data_dir", "inventory_file", "ledger_file", "history_file",
		"low_stock_threshold", "currency", "categories",
	} {
		if !strings.Contains(yaml, key+":") {
			t.Errorf("config example does not document %q", key)
		}
	}
	for _, cat := range DefaultCategories {
		if !strings.Contains(yaml, cat) {
			t.Errorf("config example does not list default category %q", cat)
		}
	}
}
