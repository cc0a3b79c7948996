// Static accessibility checker for the card templates. Strips template
// actions, parses the remaining markup, and verifies the interaction
// affordances the cards rely on: alt text, ARIA state, keyboard reachability.
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"playlist-server/templates"
)

// Finding is one failed check.
type Finding struct {
	Rule    string
	Message string
	Element string
}

var actionRe = regexp.MustCompile(`{{[^}]*}}`)

// stripActions replaces template actions with a placeholder token so the
// markup still parses.
func stripActions(tpl string) string {
	return actionRe.ReplaceAllString(tpl, "x")
}

func render(n *html.Node) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(n.Data)
	for _, attr := range n.Attr {
		fmt.Fprintf(&sb, " %s=%q", attr.Key, attr.Val)
	}
	sb.WriteByte('>')
	return sb.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attr(n, key)
	return ok
}

// check walks one parsed template and collects findings.
func check(root *html.Node) []Finding {
	var findings []Finding
	fail := func(rule, message string, n *html.Node) {
		findings = append(findings, Finding{Rule: rule, Message: message, Element: render(n)})
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "img":
				if !hasAttr(n, "alt") {
					fail("img-alt", "image without alt text", n)
				}
			case "button":
				if v, _ := attr(n, "type"); v != "button" && v != "submit" {
					fail("button-type", "button without explicit type", n)
				}
				if !hasAttr(n, "aria-label") && !hasText(n) {
					fail("button-label", "icon button without accessible name", n)
				}
			case "a":
				if !hasAttr(n, "href") {
					fail("link-href", "anchor without href", n)
				}
			case "video":
				if !hasAttr(n, "controls") {
					fail("video-controls", "video without user controls", n)
				}
			case "table":
				if !hasDescendant(n, "th") {
					fail("table-headers", "table without header cells", n)
				}
			case "i":
				// Icon glyphs must be labelled or hidden from the tree.
				if !hasAttr(n, "aria-label") && !hasAttr(n, "aria-hidden") {
					fail("icon-label", "icon neither labelled nor aria-hidden", n)
				}
			}

			// Anything wired as a custom control needs keyboard access and
			// announced state.
			if role, _ := attr(n, "role"); role == "button" {
				if !hasAttr(n, "tabindex") {
					fail("control-tabindex", "custom control not keyboard reachable", n)
				}
				if !hasAttr(n, "aria-expanded") && !hasAttr(n, "aria-pressed") {
					fail("control-state", "custom control without announced state", n)
				}
			}
			if hasAttr(n, "h-get") {
				if trigger, _ := attr(n, "h-trigger"); !strings.Contains(trigger, "keyup") {
					fail("trigger-keyboard", "hypermedia trigger without keyboard binding", n)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return findings
}

func hasText(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return true
		}
		if hasText(c) {
			return true
		}
	}
	return false
}

func hasDescendant(n *html.Node, tag string) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return true
		}
		if hasDescendant(c, tag) {
			return true
		}
	}
	return false
}

func main() {
	verbose := flag.Bool("v", false, "print passing template sets too")
	flag.Parse()

	sources := map[string]string{
		"card":   templates.GetCardTemplates(),
		"banner": templates.GetBannerTemplates(),
		"pages":  templates.GetPageTemplates(),
	}

	failed := 0
	for name, source := range sources {
		root, err := html.Parse(strings.NewReader(stripActions(source)))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: parse error: %v\n", name, err)
			failed++
			continue
		}
		findings := check(root)
		if len(findings) == 0 {
			if *verbose {
				fmt.Printf("%s: ok\n", name)
			}
			continue
		}
		failed++
		for _, f := range findings {
			fmt.Printf("%s: [%s] %s\n    %s\n", name, f.Rule, f.Message, f.Element)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
	fmt.Println("all template sets pass")
}
