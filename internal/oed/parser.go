package oed

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// All structural selectors for the OED markup live in this file. When the site
// changes its markup, this is the only file that needs to follow.

var whitespacePattern = regexp.MustCompile(`\s+`)

// ExtractWordOfTheDayPath extracts the word-of-the-day link from the OED
// homepage HTML. Returns the href path, e.g. "/word-of-the-day/shrapnel".
func ExtractWordOfTheDayPath(content string) (string, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", &ParseError{Marker: "homepage HTML"}
	}

	wotdDiv := findByClass(doc, "div", "wotd")
	if wotdDiv == nil {
		return "", &ParseError{Marker: `div "wotd"`}
	}
	link := findElement(wotdDiv, "a")
	if link == nil {
		return "", &ParseError{Marker: "word of the day link"}
	}
	href := attrValue(link, "href")
	if href == "" {
		return "", &ParseError{Marker: "word of the day link href"}
	}
	return href, nil
}

// ParseWordEntry creates a WordEntry from an OED word page. The headword and at
// least one definition are required. Pronunciation, part of speech, date
// ranges, quotations, and subject tags are optional and degrade to empty
// values when absent.
func ParseWordEntry(content string) (WordEntry, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return WordEntry{}, &ParseError{Marker: "word page HTML"}
	}

	headwordGroup := findByClass(doc, "", "headword-group")
	if headwordGroup == nil {
		return WordEntry{}, &ParseError{Marker: `element "headword-group"`}
	}
	headword := findByClass(headwordGroup, "", "headword")
	if headword == nil {
		return WordEntry{}, &ParseError{Marker: "headword"}
	}
	entry := WordEntry{
		Word: cleanText(textContent(headword)),
	}
	if entry.Word == "" {
		return WordEntry{}, &ParseError{Marker: "headword"}
	}

	if node := findByClass(headwordGroup, "", "pronunciation"); node != nil {
		entry.Pronunciation = cleanText(textContent(node))
	}
	if node := findByClass(headwordGroup, "", "part-of-speech"); node != nil {
		entry.PartOfSpeech = cleanText(textContent(node))
	}

	meaningSection := findByID(doc, "section", "meaning_and_use")
	if meaningSection == nil {
		return WordEntry{}, &ParseError{Marker: `section "meaning_and_use"`}
	}

	for _, sense := range collectSenseItems(meaningSection) {
		definition := parseSense(sense)
		if definition == nil {
			// container for subsenses, not a definition of its own
			continue
		}
		entry.Definitions = append(entry.Definitions, *definition)
	}
	if len(entry.Definitions) == 0 {
		return WordEntry{}, &ParseError{Marker: "definition"}
	}

	return entry, nil
}

// ParseEtymology creates an EtymologyEntry from an OED etymology tab page.
func ParseEtymology(content string) (EtymologyEntry, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return EtymologyEntry{}, &ParseError{Marker: "etymology page HTML"}
	}

	section := findByID(doc, "section", "etymology")
	if section == nil {
		return EtymologyEntry{}, &ParseError{Marker: `section "etymology"`}
	}
	summaryDiv := findByClass(section, "div", "etymology-summary")
	if summaryDiv == nil {
		return EtymologyEntry{}, &ParseError{Marker: "etymology summary"}
	}
	summaryText := findElement(summaryDiv, "div")
	if summaryText == nil {
		return EtymologyEntry{}, &ParseError{Marker: "etymology summary text"}
	}

	completeDiv := findByID(section, "div", "main_etymology_complete")
	if completeDiv == nil {
		return EtymologyEntry{}, &ParseError{Marker: "main etymology"}
	}
	full := cleanText(spacedTextContent(completeDiv))
	// The expanded section renders a "Show less" toggle as plain text.
	full = strings.TrimSpace(strings.TrimSuffix(full, "Show less"))

	return EtymologyEntry{
		Summary: cleanText(textContent(summaryText)),
		Etymons: extractEtymons(summaryDiv),
		Full:    full,
	}, nil
}

// collectSenseItems finds all list items carrying a sense or item class under
// the meanings section.
func collectSenseItems(n *html.Node) []*html.Node {
	var items []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "li" &&
			(hasClass(node, "sense") || hasClass(node, "item")) {
			items = append(items, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return items
}

func parseSense(sense *html.Node) *Definition {
	defDiv := findByClass(sense, "div", "definition")
	if defDiv == nil {
		return nil
	}

	definition := Definition{
		Text: cleanText(textContent(defDiv)),
	}
	if node := findByClass(sense, "div", "item-enumerator"); node != nil {
		definition.SenseNumber = cleanText(textContent(node))
	}
	if node := findByClass(sense, "div", "daterange-container"); node != nil {
		definition.DateRange = parseDateRange(cleanText(textContent(node)))
	}

	for _, quotation := range collectByClass(sense, "li", "quotation") {
		date := findByClass(quotation, "div", "quotation-date")
		text := findByClass(quotation, "blockquote", "quotation-text")
		citation := findByClass(quotation, "cite", "citation-text")
		if date == nil || text == nil || citation == nil {
			continue
		}
		definition.Quotations = append(definition.Quotations, Quotation{
			Date:     cleanText(textContent(date)),
			Text:     cleanText(textContent(text)),
			Citation: cleanText(textContent(citation)),
		})
	}

	if tagsDiv := findByClass(sense, "div", "tags"); tagsDiv != nil {
		for _, tag := range collectByClass(tagsDiv, "a", "tag") {
			definition.SubjectTags = append(definition.SubjectTags, cleanText(textContent(tag)))
		}
	}

	return &definition
}

func parseDateRange(text string) DateRange {
	text = strings.ReplaceAll(text, "–", "-")
	parts := strings.SplitN(text, "-", 2)
	dateRange := DateRange{From: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		dateRange.To = strings.TrimSpace(parts[1])
	}
	return dateRange
}

// extractEtymons extracts (language, word form) pairs from the element of the
// summary section whose text mentions "Etymon".
func extractEtymons(summaryDiv *html.Node) []Etymon {
	etymonParent := findTextParent(summaryDiv, "Etymon")
	if etymonParent == nil {
		return nil
	}

	languages := collectByClass(etymonParent, "span", "language-name")
	forms := collectByClass(etymonParent, "span", "foreign-form")

	var etymons []Etymon
	for i := 0; i < len(languages) && i < len(forms); i++ {
		etymons = append(etymons, Etymon{
			Language: cleanText(textContent(languages[i])),
			Form:     cleanText(textContent(forms[i])),
		})
	}
	return etymons
}

// findTextParent returns the parent element of the first text node containing
// the given substring.
func findTextParent(n *html.Node, substr string) *html.Node {
	if n.Type == html.TextNode && strings.Contains(n.Data, substr) {
		if n.Parent != nil && n.Parent.Type == html.ElementNode {
			return n.Parent
		}
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTextParent(c, substr); found != nil {
			return found
		}
	}
	return nil
}

// findElement returns the first descendant element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// findByClass returns the first descendant element with the given tag name
// (any tag when empty) carrying the given class.
func findByClass(n *html.Node, tag, class string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (tag == "" || c.Data == tag) && hasClass(c, class) {
			return c
		}
		if found := findByClass(c, tag, class); found != nil {
			return found
		}
	}
	return nil
}

func collectByClass(n *html.Node, tag, class string) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (tag == "" || c.Data == tag) && hasClass(c, class) {
				nodes = append(nodes, c)
			}
			walk(c)
		}
	}
	walk(n)
	return nodes
}

func findByID(n *html.Node, tag, id string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (tag == "" || c.Data == tag) && attrValue(c, "id") == id {
			return c
		}
		if found := findByID(c, tag, id); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, candidate := range strings.Fields(attrValue(n, "class")) {
		if candidate == class {
			return true
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent concatenates all text nodes under n.
func textContent(n *html.Node) string {
	var builder strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			builder.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return builder.String()
}

// spacedTextContent concatenates text nodes with a space separator, for
// sections where adjacent elements would otherwise run together.
func spacedTextContent(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			if text := strings.TrimSpace(node.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

func cleanText(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
