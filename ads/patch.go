package ads

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Patch runs both passes over doc and returns how many wrappers were
// inserted in total.
func Patch(doc *goquery.Document, cfg Config) int {
	return InjectInContent(doc, cfg.InContent) + InjectEndOfContent(doc, cfg.EndOfContent)
}

// InjectInContent removes previously inserted in-content wrappers and
// inserts one before every BlockInterval-th content block of the content
// container. A nil slot or a missing container leaves doc untouched.
func InjectInContent(doc *goquery.Document, slot *Slot) int {
	if slot == nil {
		return 0
	}
	container := doc.Find("#" + ContentID).First()
	if container.Length() == 0 {
		return 0
	}
	doc.Find("." + InContentWrapperClass).Remove()

	parent := container.Get(0)
	var children []*html.Node
	var blocks []Block
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
		blocks = append(blocks, Block{HasHTML: c.Type == html.ElementNode})
	}

	points := InsertionPoints(blocks)
	for _, i := range points {
		parent.InsertBefore(slot.wrapper(InContentWrapperClass), children[i])
	}
	return len(points)
}

// InjectEndOfContent removes a previously inserted end-of-content wrapper and
// appends a fresh one into the end-of-content placeholder. A nil slot or a
// missing placeholder leaves doc untouched.
func InjectEndOfContent(doc *goquery.Document, slot *Slot) int {
	if slot == nil {
		return 0
	}
	placeholder := doc.Find("#" + EndOfContentID).First()
	if placeholder.Length() == 0 {
		return 0
	}
	doc.Find("." + EndContentWrapperClass).Remove()
	placeholder.AppendNodes(slot.wrapper(EndContentWrapperClass))
	return 1
}

// wrapper builds <div class=...><div id=...></div><script src=... async></script></div>.
func (s Slot) wrapper(class string) *html.Node {
	w := element(atom.Div, html.Attribute{Key: "class", Val: class})
	w.AppendChild(element(atom.Div, html.Attribute{Key: "id", Val: s.ID}))
	w.AppendChild(element(atom.Script,
		html.Attribute{Key: "src", Val: s.ScriptURL},
		html.Attribute{Key: "async"},
	))
	return w
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
