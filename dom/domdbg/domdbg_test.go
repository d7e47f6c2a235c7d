package domdbg

import (
	"strings"
	"testing"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/dom"
)

func TestOutline(t *testing.T) {
	doc, err := dom.ParseHTML(`<html><head></head><body>
		<div id="hero" class="card" style="color: red">Hello World and more text</div>
	</body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := Outline(doc, &b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "div#hero.card [color: red]") {
		t.Errorf("expected element label in outline, have:\n%s", out)
	}
	if !strings.Contains(out, `"Hello Worl..."`) {
		t.Errorf("expected shortened text node in outline, have:\n%s", out)
	}
	Dump(doc, t)
}
