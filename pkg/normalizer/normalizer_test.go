package normalizer

import "testing"

func TestNormalize_Episode(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		episode    int
		hasEpisode bool
	}{
		{"kanji counter", "番組 第1話.ts", 1, true},
		{"kanji counter full width", "番組　第１２話.ts", 12, true},
		{"ep prefix", "Show EP01.ts", 1, true},
		{"ep prefix lowercase", "show ep2.ts", 2, true},
		{"episode word", "Show Episode 3.ts", 3, true},
		{"hash prefix", "Show #12.ts", 12, true},
		{"no episode", "Show Special.ts", 0, false},
		{"long digit group is not an episode", "Show EP2023.ts", 0, false},
		{"plain digits are not an episode", "Show 2023.ts", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := Normalize(tt.input)
			if key.HasEpisode != tt.hasEpisode {
				t.Errorf("Normalize(%q).HasEpisode = %v, want %v", tt.input, key.HasEpisode, tt.hasEpisode)
			}
			if tt.hasEpisode && key.Episode != tt.episode {
				t.Errorf("Normalize(%q).Episode = %d, want %d", tt.input, key.Episode, tt.episode)
			}
		})
	}
}

func TestNormalize_Part(t *testing.T) {
	tests := []struct {
		name  string
		input string
		part  string
	}{
		{"first half kanji", "映画 前編.ts", "1"},
		{"second half kanji", "映画 後編.ts", "2"},
		{"part word", "Movie Part1.ts", "1"},
		{"part word with space", "Movie part 2.ts", "2"},
		{"no part", "Movie.ts", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := Normalize(tt.input)
			if key.Part != tt.part {
				t.Errorf("Normalize(%q).Part = %q, want %q", tt.input, key.Part, tt.part)
			}
		})
	}
}

func TestNormalize_CaseAndWhitespace(t *testing.T) {
	a := Normalize("SHOW EP01.TS")
	b := Normalize("show  ep01.ts")

	if a.Canonical != b.Canonical {
		t.Errorf("Expected case and whitespace differences to be folded: %q vs %q", a.Canonical, b.Canonical)
	}
	if a.Episode != b.Episode || a.HasEpisode != b.HasEpisode {
		t.Error("Expected episode extraction to be case-insensitive")
	}
}

func TestNormalize_IgnoredCharacters(t *testing.T) {
	a := Normalize("[字]Show_Ep1.ts")
	b := Normalize("Show Ep1.ts")

	if a.Canonical != b.Canonical {
		t.Errorf("Expected brackets, underscores and broadcast marks to be stripped: %q vs %q", a.Canonical, b.Canonical)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	input := "番組 第1話 🈑[再].ts"
	first := Normalize(input)
	second := Normalize(input)

	if first != second {
		t.Errorf("Normalize is not deterministic: %+v vs %+v", first, second)
	}
}

func TestNormalize_MalformedInput(t *testing.T) {
	// 不应当 panic，未识别的内容原样保留
	inputs := []string{"", "....", "\xff\xfe", "🎬🎬🎬", "第話"}
	for _, input := range inputs {
		key := Normalize(input)
		_ = key.Canonical
	}
}

func TestIsIgnored(t *testing.T) {
	for _, r := range []rune{'0', '9', '_', ' ', '　', '[', ']', '🈑', '🈞', '字', '再', '前', '後'} {
		if !IsIgnored(r) {
			t.Errorf("IsIgnored(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', '話', '.', '#', '@'} {
		if IsIgnored(r) {
			t.Errorf("IsIgnored(%q) = true, want false", r)
		}
	}
}
