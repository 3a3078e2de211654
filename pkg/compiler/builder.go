package compiler

import "strings"

// commentMarker starts a comment line in the generated code.
const commentMarker = "#"

// Builder accumulates generated lines and tracks the current block depth.
// One Builder serves exactly one compilation.
type Builder struct {
	lines       []string
	level       int // open blocks
	indentWidth int
	indentChar  byte
}

func NewBuilder(indentWidth int, indentChar byte) *Builder {
	return &Builder{indentWidth: indentWidth, indentChar: indentChar}
}

// StartBlock indents every following line by one more level.
func (b *Builder) StartBlock() {
	b.level++
}

// EndBlock removes one level of indentation. It fails when no block is open.
func (b *Builder) EndBlock() error {
	if b.level == 0 {
		return &StructuralError{Kind: ErrUnmatchedLoopClose}
	}
	b.level--
	return nil
}

// Level returns the number of open blocks.
func (b *Builder) Level() int { return b.level }

// Indent returns the current indentation in characters.
func (b *Builder) Indent() int { return b.level * b.indentWidth }

// Append adds text at the current indentation, one buffered line per
// newline-separated line of text.
func (b *Builder) Append(text string) {
	prefix := strings.Repeat(string(b.indentChar), b.Indent())
	for _, line := range strings.Split(text, "\n") {
		b.lines = append(b.lines, prefix+line)
	}
}

// Lines returns the buffered lines without the blank-line pass.
func (b *Builder) Lines() []string {
	return b.lines
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), commentMarker)
}

// Render joins the buffered lines. A blank line is inserted before every
// comment line that follows a non-comment line.
func (b *Builder) Render() string {
	var sb strings.Builder
	prevComment := false
	for i, line := range b.lines {
		comment := isCommentLine(line)
		if comment && !prevComment && i > 0 {
			sb.WriteByte('\n')
		}
		prevComment = comment
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
