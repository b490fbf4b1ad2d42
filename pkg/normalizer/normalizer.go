package normalizer

import (
	"regexp"
	"strconv"
	"strings"
)

// Key 文件名归一化结果
type Key struct {
	// 用于相似度比较的归一化串，集数和前后篇标记已替换为占位符
	Canonical string
	// 提取到的集数，HasEpisode 为 false 时无效
	Episode    int
	HasEpisode bool
	// 分段标记（"1"=前篇 "2"=后篇），空串表示缺失
	Part string
}

var (
	episodePatterns = []*regexp.Regexp{
		regexp.MustCompile(`第\s*([0-9]{1,3})\s*[話话回集]`),
		regexp.MustCompile(`\bep(?:isode)?\.?\s*([0-9]+)`),
		regexp.MustCompile(`#\s*([0-9]+)`),
	}

	partWordPattern  = regexp.MustCompile(`\bpart\s*([0-9])\b`)
	partKanjiPattern = regexp.MustCompile(`[前後]`)
)

// Normalize 把原始文件名转换为比较键
// 纯函数，不做任何 I/O，对任意输入都不会报错
func Normalize(name string) Key {
	canonical := fold(name)
	key := Key{}

	for i, pat := range episodePatterns {
		loc := pat.FindStringSubmatchIndex(canonical)
		if loc == nil {
			continue
		}
		digits := canonical[loc[2]:loc[3]]
		// 沿用原工具的判断：独立的数字组只有两位以内才视为集数
		if i > 0 && len(digits) > 2 {
			continue
		}
		if n, err := strconv.Atoi(digits); err == nil {
			key.Episode = n
			key.HasEpisode = true
			canonical = canonical[:loc[2]] + "#" + canonical[loc[3]:]
		}
		break
	}

	if loc := partWordPattern.FindStringSubmatchIndex(canonical); loc != nil {
		key.Part = canonical[loc[2]:loc[3]]
		canonical = canonical[:loc[0]] + "@" + canonical[loc[1]:]
	} else if loc := partKanjiPattern.FindStringIndex(canonical); loc != nil {
		if canonical[loc[0]:loc[1]] == "前" {
			key.Part = "1"
		} else {
			key.Part = "2"
		}
		canonical = canonical[:loc[0]] + "@" + canonical[loc[1]:]
	}

	key.Canonical = stripIgnored(canonical)
	return key
}

// fold 大小写折叠和全角字符归一，在分词之前执行
func fold(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '０' && r <= '９':
			return '0' + (r - '０')
		case r == '　', r == '_':
			return ' '
		case r == '＃':
			return '#'
		}
		return r
	}, s)
}

func stripIgnored(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if IsIgnored(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsIgnored 判断该字符在比较时是否被忽略
// 数字、下划线、空格、广播标记和方括号不参与相似度计算
func IsIgnored(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	switch r {
	case '_', ' ', '　', '[', ']', '🈑', '🈞', '字', '再', '前', '後':
		return true
	}
	return false
}
