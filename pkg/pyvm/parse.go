package pyvm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// cellExpr matches the index of a cell access: "p" or "(p + k) % n".
const cellExpr = `p|\(p [+-] \d+\) % \d+`

var (
	reAlloc      = regexp.MustCompile(`^m = \[0\] \* (\d+)$`)
	rePad        = regexp.MustCompile(`^m \+= \[0\] \* (\d+)$`)
	rePass       = regexp.MustCompile(`^pass$`)
	reResetPtr   = regexp.MustCompile(`^p = 0$`)
	reMovePtr    = regexp.MustCompile(`^p = \((p(?: [+-] \d+)?)\) % (\d+)$`)
	reArith      = regexp.MustCompile(`^m\[(` + cellExpr + `)\] ([+-])= (\d+)$`)
	reRead       = regexp.MustCompile(`^m\[(` + cellExpr + `)\] = int\(sys\.stdin\.readline\(\)\.strip\(\) or 0\)$`)
	rePrintCell  = regexp.MustCompile(`^print\(m\[(` + cellExpr + `)\]\)$`)
	reWhile      = regexp.MustCompile(`^while m\[(` + cellExpr + `)\] != 0:$`)
	rePrintText  = regexp.MustCompile(`^print\('((?:[^'\\]|\\.)*)'\)$`)
	rePrintPtr   = regexp.MustCompile(`^print\('([^']*)', p\)$`)
	reDumpFormat = regexp.MustCompile(`^dump = \('\{:(\d+)d\}' \* (\d+)\)\.format$`)
	reForRange   = regexp.MustCompile(`^for i in range\((\d+), (\d+), (\d+)\):$`)
	rePrintRow   = regexp.MustCompile(`^print\('\{:(\d+)d\} \| \{\}'\.format\(i, dump\(\*m\[i:i \+ (\d+)\]\)\)\)$`)
	reRelative   = regexp.MustCompile(`^\(?p(?: ([+-]) (\d+))?(?:\) % (\d+))?$`)
)

// Program is a parsed generated program.
type Program struct {
	body []node
}

type sourceLine struct {
	num    int // 1-based
	indent string
	text   string
}

// Load parses code. Every non-blank, non-comment line must be one of the
// statements the compiler generates.
func Load(code string) (*Program, error) {
	var lines []sourceLine
	for i, raw := range strings.Split(code, "\n") {
		text := strings.TrimLeft(raw, " \t")
		if text == "" || strings.HasPrefix(text, "#") || text == "import sys" {
			continue
		}
		lines = append(lines, sourceLine{num: i + 1, indent: raw[:len(raw)-len(text)], text: text})
	}

	p := &parser{lines: lines}
	body, err := p.block("")
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.lines) {
		l := p.lines[p.pos]
		return nil, fmt.Errorf("line %d: unexpected indentation", l.num)
	}
	return &Program{body: body}, nil
}

type parser struct {
	lines []sourceLine
	pos   int
}

// block parses consecutive statements indented exactly by indent.
func (p *parser) block(indent string) ([]node, error) {
	var body []node
	for p.pos < len(p.lines) {
		l := p.lines[p.pos]
		if l.indent != indent {
			if len(l.indent) > len(indent) {
				return nil, fmt.Errorf("line %d: unexpected indentation", l.num)
			}
			break
		}
		p.pos++

		n, err := parseStatement(l)
		if err != nil {
			return nil, err
		}
		if hdr, ok := n.(blockNode); ok {
			if p.pos >= len(p.lines) || len(p.lines[p.pos].indent) <= len(indent) ||
				!strings.HasPrefix(p.lines[p.pos].indent, indent) {
				return nil, fmt.Errorf("line %d: expected an indented block", l.num)
			}
			inner, err := p.block(p.lines[p.pos].indent)
			if err != nil {
				return nil, err
			}
			hdr.setBody(inner)
		}
		body = append(body, n)
	}
	return body, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s) // the regexps only capture digits
	return n
}

// parseAddr parses "p", "p + k", "p - k" and the same wrapped in "(…) % n".
func parseAddr(s string) (addr, error) {
	m := reRelative.FindStringSubmatch(s)
	if m == nil {
		return addr{}, fmt.Errorf("unsupported address %q", s)
	}
	a := addr{}
	if m[2] != "" {
		a.offset = atoi(m[2])
		if m[1] == "-" {
			a.offset = -a.offset
		}
	}
	if m[3] != "" {
		a.mod = atoi(m[3])
	}
	return a, nil
}

func parseStatement(l sourceLine) (node, error) {
	text := l.text
	wrap := func(err error) error { return fmt.Errorf("line %d: %w", l.num, err) }

	if m := reAlloc.FindStringSubmatch(text); m != nil {
		return &allocNode{size: atoi(m[1])}, nil
	}
	if m := rePad.FindStringSubmatch(text); m != nil {
		return &padNode{size: atoi(m[1])}, nil
	}
	if rePass.MatchString(text) {
		return &passNode{}, nil
	}
	if reResetPtr.MatchString(text) {
		return &resetPointerNode{}, nil
	}
	if m := reMovePtr.FindStringSubmatch(text); m != nil {
		a, err := parseAddr(m[1])
		if err != nil {
			return nil, wrap(err)
		}
		a.mod = atoi(m[2])
		return &movePointerNode{to: a}, nil
	}
	if m := reArith.FindStringSubmatch(text); m != nil {
		a, err := parseAddr(m[1])
		if err != nil {
			return nil, wrap(err)
		}
		delta := atoi(m[3])
		if m[2] == "-" {
			delta = -delta
		}
		return &arithNode{cell: a, delta: delta}, nil
	}
	if m := reRead.FindStringSubmatch(text); m != nil {
		a, err := parseAddr(m[1])
		if err != nil {
			return nil, wrap(err)
		}
		return &readNode{cell: a}, nil
	}
	if m := rePrintCell.FindStringSubmatch(text); m != nil {
		a, err := parseAddr(m[1])
		if err != nil {
			return nil, wrap(err)
		}
		return &printCellNode{cell: a}, nil
	}
	if m := reWhile.FindStringSubmatch(text); m != nil {
		a, err := parseAddr(m[1])
		if err != nil {
			return nil, wrap(err)
		}
		return &whileNode{cell: a}, nil
	}
	if m := rePrintPtr.FindStringSubmatch(text); m != nil {
		return &printPointerNode{label: m[1]}, nil
	}
	if m := rePrintText.FindStringSubmatch(text); m != nil {
		return &printTextNode{text: unescape(m[1])}, nil
	}
	if m := reDumpFormat.FindStringSubmatch(text); m != nil {
		return &dumpFormatNode{width: atoi(m[1]), cells: atoi(m[2])}, nil
	}
	if m := reForRange.FindStringSubmatch(text); m != nil {
		step := atoi(m[3])
		if step == 0 {
			return nil, wrap(fmt.Errorf("range() step must not be zero"))
		}
		return &forRangeNode{start: atoi(m[1]), stop: atoi(m[2]), step: step}, nil
	}
	if m := rePrintRow.FindStringSubmatch(text); m != nil {
		return &printRowNode{width: atoi(m[1]), cells: atoi(m[2])}, nil
	}
	return nil, wrap(fmt.Errorf("unsupported statement %q", text))
}

// unescape resolves the backslash escapes of a single-quoted literal.
func unescape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
