package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/moyu-x/similar-file/internal"
	"github.com/moyu-x/similar-file/pkg/scorer"
)

// Console 终端交互实现
// 严格顺序执行，每次提问阻塞等待操作员输入
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	width int
}

func New(in io.Reader, out io.Writer) *Console {
	width := 80
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		width: width,
	}
}

// AskDuplicate 质询阶段的提问，回答 y/n/q
func (c *Console) AskDuplicate(cand *scorer.DupCand, index, total int) (internal.Answer, error) {
	c.printCand(cand, index, total)

	line, err := c.readAnswer(promptStyle.Render("🤔 是同一内容吗？(后者为删除候选) [y/n/q]: "))
	if err != nil {
		return internal.AnswerNo, err
	}
	switch line {
	case "y":
		fmt.Fprintln(c.out, successStyle.Render("✅ 已加入删除队列"))
		return internal.AnswerYes, nil
	case "q":
		return internal.AnswerQuit, nil
	default:
		fmt.Fprintln(c.out, dimStyle.Render("⏭  跳过"))
		return internal.AnswerNo, nil
	}
}

// AskDelete 删除阶段的提问，回答 y/n/a
func (c *Console) AskDelete(cand *scorer.DupCand, index, total int) (internal.Answer, error) {
	c.printCand(cand, index, total)

	line, err := c.readAnswer(dangerStyle.Render("🗑  删除较新的文件？[y/n/a]: "))
	if err != nil {
		return internal.AnswerNo, err
	}
	switch line {
	case "y":
		return internal.AnswerYes, nil
	case "a":
		fmt.Fprintln(c.out, warnStyle.Render("⚡ 之后的候选将全部删除"))
		return internal.AnswerAll, nil
	default:
		return internal.AnswerNo, nil
	}
}

// readAnswer 读取一行回答，EOF 等价于提前退出
func (c *Console) readAnswer(prompt string) (string, error) {
	fmt.Fprint(c.out, "\n"+prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "q", nil
		}
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

func (c *Console) printCand(cand *scorer.DupCand, index, total int) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, separatorStyle.Render(strings.Repeat("─", c.width)))

	ratio := int(math.Round(cand.Similarity * 100))
	ratioStyle := dimStyle
	switch {
	case ratio >= 95:
		ratioStyle = successStyle
	case ratio >= 90:
		ratioStyle = warnStyle
	}
	fmt.Fprintf(c.out, "[%3d/%3d] %s\n", index, total,
		ratioStyle.Render(fmt.Sprintf("📊 相似度: %d%%", ratio)))

	sizeDiff := cand.Older.Size - cand.Newer.Size
	if sizeDiff < 0 {
		sizeDiff = -sizeDiff
	}
	sizeStyle := dimStyle
	if sizeDiff > internal.SizeWarnBytes {
		sizeStyle = errorStyle
	}
	fmt.Fprintf(c.out, "          %s\n",
		sizeStyle.Render(fmt.Sprintf("📐 大小差: %s (%.1f%%)", internal.FormatBytes(sizeDiff), cand.SizeRatio*100)))

	oldName, newName := DiffPair(
		filepath.Base(cand.Older.Path),
		filepath.Base(cand.Newer.Path),
		c.width-8,
	)
	fmt.Fprintf(c.out, "\n  📁 旧: %s\n", oldName)
	fmt.Fprintf(c.out, "  📄 新: %s\n", newName)
}
