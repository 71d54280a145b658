package tools

import (
	"fmt"
	"io"

	"github.com/tablewalk/swtch/core"
	. "github.com/tablewalk/swtch/util/testutil"

	md "github.com/russross/blackfriday/v2"
)

// RenderSwitchHTML writes an HTML rendition of the Switch's
// documentation and case table.
//
// Doc strings are treated as Markdown.
func RenderSwitchHTML(s *core.Switch, out io.Writer) error {
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	f(`<div class="switch"><span class="switchName">%s</span></div>`, s.Name)
	if s.Doc != "" {
		f(`<div class="switchDoc doc">%s</div>`, md.Run([]byte(s.Doc)))
	}

	{ // Cases, in declaration order.
		f(`<div class="cases"><table>`)
		for i, c := range s.Cases {
			if c == nil {
				continue
			}
			f(`<tr class="case"><td><div class="caseNum">%d</div></td><td>`, i)
			f(`<table>`)
			f(`<tr><td>when</td><td><code>%s</code></td></tr>`, JS(c.When))
			if c.Doc != "" {
				f(`<tr><td></td><td><div class="caseDoc doc">%s</div></td></tr>`, md.Run([]byte(c.Doc)))
			}
			if c.HandlerSource != nil {
				f(`<tr><td>run</td><td><div class="code"><pre>%s</pre></div></td></tr>`, c.HandlerSource.Source)
			}
			f(`</table>`)
			f(`</td></tr>`)
		}
		f(`</table></div>`)
	}

	if s.DefaultSource != nil {
		f(`<div class="default"><span>default</span>`)
		f(`<div class="code"><pre>%s</pre></div></div>`, s.DefaultSource.Source)
	} else if s.Default != nil {
		f(`<div class="default"><span>default</span> <code>(native)</code></div>`)
	}

	return nil
}
