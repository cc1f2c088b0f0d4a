package page

import (
	"strings"

	"golang.org/x/net/html"
)

// setHidden adds or removes display:none in the inline style of n while
// keeping every other declaration.
func setHidden(n *html.Node, hidden bool) {
	style, _ := getAttr(n, "style")

	var decls []string
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		prop, _, _ := strings.Cut(decl, ":")
		if strings.EqualFold(strings.TrimSpace(prop), "display") {
			continue
		}
		decls = append(decls, decl)
	}
	if hidden {
		decls = append(decls, "display:none")
	}

	if len(decls) == 0 {
		removeAttr(n, "style")
		return
	}
	setAttr(n, "style", strings.Join(decls, "; "))
}

// isHidden reports whether n carries display:none inline.
func isHidden(n *html.Node) bool {
	style, _ := getAttr(n, "style")
	for _, decl := range strings.Split(style, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if ok && strings.EqualFold(strings.TrimSpace(prop), "display") &&
			strings.EqualFold(strings.TrimSpace(val), "none") {
			return true
		}
	}
	return false
}
