package page

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/ajxudir/cascade/pkg/config"
	"github.com/ajxudir/cascade/pkg/filtering"
)

// selectors holds the compiled selectors of one configuration.
type selectors struct {
	items  cascadia.Selector
	reset  cascadia.Selector
	count  cascadia.Selector
	idAttr string
	dims   map[filtering.Dimension]dimSelectors
}

type dimSelectors struct {
	control cascadia.Selector
	tag     cascadia.Selector
}

func compileSelectors(cfg *config.Config) (*selectors, error) {
	s := &selectors{
		idAttr: cfg.Page.IDAttr,
		dims:   make(map[filtering.Dimension]dimSelectors, len(filtering.Dimensions)),
	}

	var err error
	if strings.TrimSpace(cfg.Page.Items) == "" {
		return nil, fmt.Errorf("page.items: item selector cannot be empty")
	}
	if s.items, err = compile("page.items", cfg.Page.Items); err != nil {
		return nil, err
	}
	if s.reset, err = compile("page.reset", cfg.Page.Reset); err != nil {
		return nil, err
	}
	if s.count, err = compile("page.count", cfg.Page.Count); err != nil {
		return nil, err
	}

	for _, d := range filtering.Dimensions {
		dc := cfg.Dimension(d)
		var ds dimSelectors
		if ds.control, err = compile("dimensions."+d.String()+".select", dc.Select); err != nil {
			return nil, err
		}
		if ds.tag, err = compile("dimensions."+d.String()+".item", dc.Item); err != nil {
			return nil, err
		}
		s.dims[d] = ds
	}
	return s, nil
}

// compile returns nil for an empty selector.
func compile(field, sel string) (cascadia.Selector, error) {
	if strings.TrimSpace(sel) == "" {
		return nil, nil
	}
	c, err := cascadia.Compile(sel)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid CSS selector %q: %w", field, sel, err)
	}
	return c, nil
}

func first(sel cascadia.Selector, n *html.Node) *html.Node {
	if sel == nil {
		return nil
	}
	return sel.MatchFirst(n)
}

func all(sel cascadia.Selector, n *html.Node) []*html.Node {
	if sel == nil {
		return nil
	}
	return sel.MatchAll(n)
}
