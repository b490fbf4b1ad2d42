package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/moyu-x/similar-file/pkg/normalizer"
)

// DiffPair 渲染一对文件名的着色差分
// 相同部分原样输出，删除/替换/插入部分分别着色，被忽略的字符置灰
func DiffPair(older, newer string, maxWidth int) (string, string) {
	a, b := splitRunes(older), splitRunes(newer)
	opcodes := difflib.NewMatcher(a, b).GetOpCodes()
	return renderSide(a, opcodes, 0, maxWidth), renderSide(b, opcodes, 1, maxWidth)
}

func renderSide(runes []string, opcodes []difflib.OpCode, side int, maxWidth int) string {
	var b strings.Builder
	width := 0

	for _, op := range opcodes {
		var seg []string
		if side == 0 {
			seg = runes[op.I1:op.I2]
		} else {
			seg = runes[op.J1:op.J2]
		}

		for _, ch := range seg {
			w := lipgloss.Width(ch)
			if width+w > maxWidth-3 {
				b.WriteString(dimStyle.Render("..."))
				return b.String()
			}
			b.WriteString(renderRune(ch, op.Tag))
			width += w
		}
	}

	return b.String()
}

func renderRune(ch string, tag byte) string {
	if normalizer.IsIgnored([]rune(ch)[0]) {
		return dimStyle.Render(ch)
	}
	switch tag {
	case 'd':
		return diffDeleteStyle.Render(ch)
	case 'r':
		return diffReplaceStyle.Render(ch)
	case 'i':
		return diffInsertStyle.Render(ch)
	default:
		return ch
	}
}

func splitRunes(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}
