package dto

type KanaOutput struct {
	Glyph      string
	Romaji     string
	Row        string
	Difficulty int
	Archaic    bool
}

type ListInput struct {
	Script         string
	IncludeArchaic bool
}

type LookupInput struct {
	Glyph  string
	Script string
}

type ByRowInput struct {
	Row    string
	Script string
}

type SampleInput struct {
	Count          int
	Script         string
	Row            string
	IncludeArchaic bool
}

type DistractorsInput struct {
	Glyph  string
	Script string
	Count  int
}

type CorrespondInput struct {
	Glyph string
	From  string
	To    string
}

type GridOutput struct {
	Script       string
	RowTitles    []string
	ColumnTitles []string
	Cells        [][]string
}
