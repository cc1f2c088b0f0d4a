package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/cascade/pkg/catalog"
	"github.com/ajxudir/cascade/pkg/config"
	"github.com/ajxudir/cascade/pkg/errors"
	"github.com/ajxudir/cascade/pkg/filtering"
	"github.com/ajxudir/cascade/pkg/page"
	"github.com/ajxudir/cascade/pkg/verbose"
)

// inputFlags are the flags shared by commands that read a catalog.
type inputFlags struct {
	config     string
	catalog    string
	page       string
	selections []string
	output     string
}

// addInputFlags registers the catalog source and selection flags on cmd.
// The output flag is only added when withOutput is set.
func addInputFlags(cmd *cobra.Command, f *inputFlags, withOutput bool) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "Config file path")
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "Catalog file (.yml, .yaml, .json or .xml)")
	cmd.Flags().StringVar(&f.page, "page", "", "HTML page to read the catalog from")
	cmd.Flags().StringArrayVarP(&f.selections, "select", "s", nil, "Selection as dimension=value, applied in order (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("catalog", "page")
	if withOutput {
		cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output format: json, csv, xml (default: table)")
	}
}

// input is a loaded catalog with the configuration it was read under.
// doc is only set when the catalog came from a page.
type input struct {
	cfg     *config.Config
	catalog filtering.Catalog
	doc     *page.Document
	source  string
}

// loadInput loads the configuration and the catalog named by f.
//
// Parameters:
//   - f: Parsed flags
//
// Returns:
//   - *input: Configuration and catalog
//   - error: ExitError with ExitConfigError for configuration problems or a
//     missing source; read and parse failures are returned as-is
func loadInput(f *inputFlags) (*input, error) {
	workDir, _ := os.Getwd()
	cfg, err := loadAndValidateConfig(f.config, workDir)
	if err != nil {
		return nil, err
	}

	in := &input{cfg: cfg}
	switch {
	case f.catalog != "":
		in.source = f.catalog
		in.catalog, err = catalog.LoadFile(f.catalog, cfg.GetMaxCatalogFileSize())
	case f.page != "":
		in.source = f.page
		in.doc, in.catalog, err = loadPage(cfg, f.page)
	default:
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("no catalog source: pass --catalog or --page"))
	}
	if err != nil {
		return nil, err
	}

	verbose.Infof("Loaded %d items from %s", len(in.catalog), in.source)
	return in, nil
}

// loadPage parses an HTML page and reads its catalog.
func loadPage(cfg *config.Config, path string) (*page.Document, filtering.Catalog, error) {
	data, err := cfg.ReadFileLimited(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read page: %w", err)
	}
	doc, err := page.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	items, err := doc.Catalog(cfg)
	if err != nil {
		return nil, nil, err
	}
	return doc, items, nil
}

// engine builds the filter engine with the configured cascade rules.
func (in *input) engine() (*filtering.Engine, error) {
	rules, err := in.cfg.Rules()
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("invalid cascade rules: %w", err))
	}
	return filtering.NewEngine(in.catalog, rules), nil
}

// selection is one parsed --select argument.
type selection struct {
	arg   string
	dim   filtering.Dimension
	value string
}

// parseSelections parses dimension=value arguments. The dimension may be a
// key (dim1, 2) or a configured label; an empty value unsets the dimension.
//
// Parameters:
//   - cfg: Configuration providing labels
//   - args: Raw --select values
//
// Returns:
//   - []selection: Parsed selections in argument order
//   - error: ValidationError naming the first malformed argument
func parseSelections(cfg *config.Config, args []string) ([]selection, error) {
	sels := make([]selection, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.NewSelectionValidationError(arg, "expected dimension=value")
		}
		d, err := cfg.ResolveDimension(name)
		if err != nil {
			return nil, errors.NewSelectionValidationError(arg, err.Error())
		}
		sels = append(sels, selection{arg: arg, dim: d, value: strings.TrimSpace(value)})
	}
	return sels, nil
}

// applySelections feeds the selections to session in order, the way a user
// would change the dropdowns one after another.
//
// Returns:
//   - []filtering.Dimension: Dimensions cleared along the way that are still unset
//   - error: SelectionError for the first change the engine rejects
func applySelections(session *filtering.Session, cfg *config.Config, sels []selection) ([]filtering.Dimension, error) {
	clearedSet := make(map[filtering.Dimension]bool)
	for _, s := range sels {
		cleared, err := session.Apply(s.dim, s.value)
		if err != nil {
			return nil, errors.NewSelectionError(cfg.Label(s.dim), s.value, err)
		}
		labels := make([]string, 0, len(cleared))
		for _, d := range cleared {
			clearedSet[d] = true
			labels = append(labels, cfg.Label(d))
		}
		verbose.ChangeApplied(cfg.Label(s.dim), s.value, labels)
	}

	state := session.State()
	var out []filtering.Dimension
	for _, d := range filtering.Dimensions {
		if clearedSet[d] && !state.IsSet(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

// newSession loads the input, builds a session and applies the selections.
func newSession(f *inputFlags) (*input, *filtering.Session, []filtering.Dimension, error) {
	in, err := loadInput(f)
	if err != nil {
		return nil, nil, nil, err
	}
	sels, err := parseSelections(in.cfg, f.selections)
	if err != nil {
		return nil, nil, nil, err
	}
	engine, err := in.engine()
	if err != nil {
		return nil, nil, nil, err
	}
	session := filtering.NewSession(engine)
	cleared, err := applySelections(session, in.cfg, sels)
	if err != nil {
		return nil, nil, nil, err
	}
	return in, session, cleared, nil
}
