package domain

// The two catalogs are related 1:1 by (romaji, row). The archaic wi/we pairs
// exist in both scripts here, but correspondence lookups treat a missing
// counterpart as a valid miss rather than an error.

var hiragana = []KanaEntry{
	{Glyph: "あ", Romaji: "a", Row: "a-row", Difficulty: 1},
	{Glyph: "い", Romaji: "i", Row: "a-row", Difficulty: 1},
	{Glyph: "う", Romaji: "u", Row: "a-row", Difficulty: 1},
	{Glyph: "え", Romaji: "e", Row: "a-row", Difficulty: 1},
	{Glyph: "お", Romaji: "o", Row: "a-row", Difficulty: 1},

	{Glyph: "か", Romaji: "ka", Row: "ka-row", Difficulty: 2},
	{Glyph: "き", Romaji: "ki", Row: "ka-row", Difficulty: 2},
	{Glyph: "く", Romaji: "ku", Row: "ka-row", Difficulty: 2},
	{Glyph: "け", Romaji: "ke", Row: "ka-row", Difficulty: 2},
	{Glyph: "こ", Romaji: "ko", Row: "ka-row", Difficulty: 2},

	{Glyph: "さ", Romaji: "sa", Row: "sa-row", Difficulty: 2},
	{Glyph: "し", Romaji: "shi", Row: "sa-row", Difficulty: 3},
	{Glyph: "す", Romaji: "su", Row: "sa-row", Difficulty: 2},
	{Glyph: "せ", Romaji: "se", Row: "sa-row", Difficulty: 2},
	{Glyph: "そ", Romaji: "so", Row: "sa-row", Difficulty: 2},

	{Glyph: "た", Romaji: "ta", Row: "ta-row", Difficulty: 2},
	{Glyph: "ち", Romaji: "chi", Row: "ta-row", Difficulty: 3},
	{Glyph: "つ", Romaji: "tsu", Row: "ta-row", Difficulty: 3},
	{Glyph: "て", Romaji: "te", Row: "ta-row", Difficulty: 2},
	{Glyph: "と", Romaji: "to", Row: "ta-row", Difficulty: 2},

	{Glyph: "な", Romaji: "na", Row: "na-row", Difficulty: 2},
	{Glyph: "に", Romaji: "ni", Row: "na-row", Difficulty: 2},
	{Glyph: "ぬ", Romaji: "nu", Row: "na-row", Difficulty: 2},
	{Glyph: "ね", Romaji: "ne", Row: "na-row", Difficulty: 2},
	{Glyph: "の", Romaji: "no", Row: "na-row", Difficulty: 1},

	{Glyph: "は", Romaji: "ha", Row: "ha-row", Difficulty: 2},
	{Glyph: "ひ", Romaji: "hi", Row: "ha-row", Difficulty: 2},
	{Glyph: "ふ", Romaji: "fu", Row: "ha-row", Difficulty: 3},
	{Glyph: "へ", Romaji: "he", Row: "ha-row", Difficulty: 2},
	{Glyph: "ほ", Romaji: "ho", Row: "ha-row", Difficulty: 2},

	{Glyph: "ま", Romaji: "ma", Row: "ma-row", Difficulty: 2},
	{Glyph: "み", Romaji: "mi", Row: "ma-row", Difficulty: 2},
	{Glyph: "む", Romaji: "mu", Row: "ma-row", Difficulty: 2},
	{Glyph: "め", Romaji: "me", Row: "ma-row", Difficulty: 2},
	{Glyph: "も", Romaji: "mo", Row: "ma-row", Difficulty: 2},

	{Glyph: "や", Romaji: "ya", Row: "ya-row", Difficulty: 2},
	{Glyph: "ゆ", Romaji: "yu", Row: "ya-row", Difficulty: 2},
	{Glyph: "よ", Romaji: "yo", Row: "ya-row", Difficulty: 2},

	{Glyph: "ら", Romaji: "ra", Row: "ra-row", Difficulty: 3},
	{Glyph: "り", Romaji: "ri", Row: "ra-row", Difficulty: 3},
	{Glyph: "る", Romaji: "ru", Row: "ra-row", Difficulty: 3},
	{Glyph: "れ", Romaji: "re", Row: "ra-row", Difficulty: 3},
	{Glyph: "ろ", Romaji: "ro", Row: "ra-row", Difficulty: 3},

	{Glyph: "わ", Romaji: "wa", Row: "wa-row", Difficulty: 2},
	{Glyph: "ゐ", Romaji: "wi", Row: "wa-row", Difficulty: 4},
	{Glyph: "ゑ", Romaji: "we", Row: "wa-row", Difficulty: 4},
	{Glyph: "を", Romaji: "wo", Row: "wa-row", Difficulty: 3},

	{Glyph: "ん", Romaji: "n", Row: "n-row", Difficulty: 2},
}

var katakana = []KanaEntry{
	{Glyph: "ア", Romaji: "a", Row: "a-row", Difficulty: 1},
	{Glyph: "イ", Romaji: "i", Row: "a-row", Difficulty: 1},
	{Glyph: "ウ", Romaji: "u", Row: "a-row", Difficulty: 1},
	{Glyph: "エ", Romaji: "e", Row: "a-row", Difficulty: 1},
	{Glyph: "オ", Romaji: "o", Row: "a-row", Difficulty: 1},

	{Glyph: "カ", Romaji: "ka", Row: "ka-row", Difficulty: 2},
	{Glyph: "キ", Romaji: "ki", Row: "ka-row", Difficulty: 2},
	{Glyph: "ク", Romaji: "ku", Row: "ka-row", Difficulty: 2},
	{Glyph: "ケ", Romaji: "ke", Row: "ka-row", Difficulty: 2},
	{Glyph: "コ", Romaji: "ko", Row: "ka-row", Difficulty: 2},

	{Glyph: "サ", Romaji: "sa", Row: "sa-row", Difficulty: 2},
	{Glyph: "シ", Romaji: "shi", Row: "sa-row", Difficulty: 3},
	{Glyph: "ス", Romaji: "su", Row: "sa-row", Difficulty: 2},
	{Glyph: "セ", Romaji: "se", Row: "sa-row", Difficulty: 2},
	{Glyph: "ソ", Romaji: "so", Row: "sa-row", Difficulty: 2},

	{Glyph: "タ", Romaji: "ta", Row: "ta-row", Difficulty: 2},
	{Glyph: "チ", Romaji: "chi", Row: "ta-row", Difficulty: 3},
	{Glyph: "ツ", Romaji: "tsu", Row: "ta-row", Difficulty: 3},
	{Glyph: "テ", Romaji: "te", Row: "ta-row", Difficulty: 2},
	{Glyph: "ト", Romaji: "to", Row: "ta-row", Difficulty: 2},

	{Glyph: "ナ", Romaji: "na", Row: "na-row", Difficulty: 2},
	{Glyph: "ニ", Romaji: "ni", Row: "na-row", Difficulty: 2},
	{Glyph: "ヌ", Romaji: "nu", Row: "na-row", Difficulty: 2},
	{Glyph: "ネ", Romaji: "ne", Row: "na-row", Difficulty: 2},
	{Glyph: "ノ", Romaji: "no", Row: "na-row", Difficulty: 1},

	{Glyph: "ハ", Romaji: "ha", Row: "ha-row", Difficulty: 2},
	{Glyph: "ヒ", Romaji: "hi", Row: "ha-row", Difficulty: 2},
	{Glyph: "フ", Romaji: "fu", Row: "ha-row", Difficulty: 3},
	{Glyph: "ヘ", Romaji: "he", Row: "ha-row", Difficulty: 2},
	{Glyph: "ホ", Romaji: "ho", Row: "ha-row", Difficulty: 2},

	{Glyph: "マ", Romaji: "ma", Row: "ma-row", Difficulty: 2},
	{Glyph: "ミ", Romaji: "mi", Row: "ma-row", Difficulty: 2},
	{Glyph: "ム", Romaji: "mu", Row: "ma-row", Difficulty: 2},
	{Glyph: "メ", Romaji: "me", Row: "ma-row", Difficulty: 2},
	{Glyph: "モ", Romaji: "mo", Row: "ma-row", Difficulty: 2},

	{Glyph: "ヤ", Romaji: "ya", Row: "ya-row", Difficulty: 2},
	{Glyph: "ユ", Romaji: "yu", Row: "ya-row", Difficulty: 2},
	{Glyph: "ヨ", Romaji: "yo", Row: "ya-row", Difficulty: 2},

	{Glyph: "ラ", Romaji: "ra", Row: "ra-row", Difficulty: 3},
	{Glyph: "リ", Romaji: "ri", Row: "ra-row", Difficulty: 3},
	{Glyph: "ル", Romaji: "ru", Row: "ra-row", Difficulty: 3},
	{Glyph: "レ", Romaji: "re", Row: "ra-row", Difficulty: 3},
	{Glyph: "ロ", Romaji: "ro", Row: "ra-row", Difficulty: 3},

	{Glyph: "ワ", Romaji: "wa", Row: "wa-row", Difficulty: 2},
	{Glyph: "ヰ", Romaji: "wi", Row: "wa-row", Difficulty: 4},
	{Glyph: "ヱ", Romaji: "we", Row: "wa-row", Difficulty: 4},
	{Glyph: "ヲ", Romaji: "wo", Row: "wa-row", Difficulty: 3},

	{Glyph: "ン", Romaji: "n", Row: "n-row", Difficulty: 2},
}

// Entries returns the catalog for a script in gojūon order. Callers must not
// mutate the returned slice.
func Entries(script Script) []KanaEntry {
	if script == Katakana {
		return katakana
	}
	return hiragana
}

// Grid lays out the non-archaic syllabary as 11 rows of 5 columns; empty
// cells mark the gaps in the ya/wa/n rows.
var hiraganaGrid = [][]string{
	{"あ", "い", "う", "え", "お"},
	{"か", "き", "く", "け", "こ"},
	{"さ", "し", "す", "せ", "そ"},
	{"た", "ち", "つ", "て", "と"},
	{"な", "に", "ぬ", "ね", "の"},
	{"は", "ひ", "ふ", "へ", "ほ"},
	{"ま", "み", "む", "め", "も"},
	{"や", "", "ゆ", "", "よ"},
	{"ら", "り", "る", "れ", "ろ"},
	{"わ", "", "", "", "を"},
	{"ん", "", "", "", ""},
}

var katakanaGrid = [][]string{
	{"ア", "イ", "ウ", "エ", "オ"},
	{"カ", "キ", "ク", "ケ", "コ"},
	{"サ", "シ", "ス", "セ", "ソ"},
	{"タ", "チ", "ツ", "テ", "ト"},
	{"ナ", "ニ", "ヌ", "ネ", "ノ"},
	{"ハ", "ヒ", "フ", "ヘ", "ホ"},
	{"マ", "ミ", "ム", "メ", "モ"},
	{"ヤ", "", "ユ", "", "ヨ"},
	{"ラ", "リ", "ル", "レ", "ロ"},
	{"ワ", "", "", "", "ヲ"},
	{"ン", "", "", "", ""},
}

func Grid(script Script) [][]string {
	if script == Katakana {
		return katakanaGrid
	}
	return hiraganaGrid
}

// ColumnTitles are the vowel column headers of the grid.
var ColumnTitles = []string{"a", "i", "u", "e", "o"}
