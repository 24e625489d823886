package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/treeline-sh/treeline/pkg/config"
	"github.com/treeline-sh/treeline/pkg/content"
	"github.com/treeline-sh/treeline/pkg/export"
	"github.com/treeline-sh/treeline/pkg/nav"
	"github.com/treeline-sh/treeline/pkg/ui"
)

const version = "0.1.0"

func main() {
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	contentDir := flag.String("content", "", "Content directory (overrides config)")
	configPath := flag.String("config", "", "Config file path (default: discover .treeline.yaml upward)")
	exportTOC := flag.String("export-toc", "", "Write a markdown table of contents to a file and exit")
	title := flag.String("title", "Contents", "Title for --export-toc output")
	watch := flag.Bool("watch", false, "Rescan when content files change")
	expandAll := flag.Bool("expand-all", false, "Start with every section expanded")
	drafts := flag.Bool("drafts", false, "Include documents marked draft")
	noState := flag.Bool("no-state", false, "Do not persist expand/collapse state")
	flag.Parse()

	if *help {
		fmt.Println("Usage: treeline [options]")
		fmt.Println("\nA terminal browser for folders of markdown documentation.")
		flag.PrintDefaults()
		os.Exit(0)
	}
	if *versionFlag {
		fmt.Printf("treeline %s\n", version)
		os.Exit(0)
	}

	cfg, baseDir, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *expandAll {
		cfg.ExpandAll = true
	}
	if *drafts {
		cfg.IncludeDrafts = true
	}

	dir := cfg.ResolveContentDir(baseDir)
	if *contentDir != "" {
		dir = *contentDir
	}

	scanOpts := content.ScanOptions{
		FolderPriority: cfg.FolderPriority,
		DropEmpty:      cfg.DropEmpty,
		IncludeDrafts:  cfg.IncludeDrafts,
	}

	result, err := content.Scan(dir, scanOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", dir, err)
		os.Exit(1)
	}

	if *exportTOC != "" {
		printWarnings(result)
		out, err := export.GenerateTOC(result.Roots, *title)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating TOC: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*exportTOC, []byte(out), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *exportTOC, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *exportTOC)
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "treeline needs a terminal; use --export-toc for batch output")
		os.Exit(1)
	}

	m := buildModel(cfg, result, baseDir, *noState)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	var watcher *content.Watcher
	if *watch {
		watcher, err = content.NewWatcher(dir, func() {
			res, err := content.Scan(dir, scanOpts)
			if err != nil {
				log.Printf("warning: rescan failed: %v", err)
				return
			}
			p.Send(ui.RescanMsg{Result: res})
		})
		if err == nil {
			err = watcher.Start()
		}
		if err != nil {
			log.Printf("warning: watch disabled: %v", err)
			watcher = nil
		}
	}
	if watcher != nil {
		defer watcher.Stop()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running treeline: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the explicit file when given, otherwise discovers one
// upward from the working directory.
func loadConfig(path string) (config.Config, string, error) {
	if path != "" {
		cfg, err := config.Load(path)
		return cfg, filepath.Dir(path), err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return config.Default(), ".", err
	}
	return config.Discover(cwd)
}

// buildModel wires the scan result into the engine, sidebar and app.
func buildModel(cfg config.Config, result *content.Result, baseDir string, noState bool) ui.Model {
	theme := ui.ThemeByName(cfg.Theme, lipgloss.DefaultRenderer())
	engine := nav.New(nav.Options{
		Expand: nav.ExpandOptions{ExpandAll: cfg.ExpandAll},
	}, result.Roots...)
	sidebar := ui.NewSidebar(theme, engine)

	if !noState {
		stateDir := filepath.Join(baseDir, content.StateDirName)
		sidebar.SetStateDir(stateDir)
		if err := content.EnsureStateIgnored(baseDir); err != nil {
			log.Printf("warning: could not update .gitignore: %v", err)
		}
	}
	return ui.NewModel(theme, sidebar, result.Warnings)
}

func printWarnings(result *content.Result) {
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", w.Path, w.Message)
	}
}
