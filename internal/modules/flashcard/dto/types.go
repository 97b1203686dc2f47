package dto

type LoadInput struct {
	Script string
}

type CardOutput struct {
	Glyph   string
	Romaji  string
	Index   int
	Total   int
	Flipped bool
}

type UnlockOutput struct {
	ID   string
	Name string
}

type MarkOutput struct {
	Glyph     string
	Status    string
	Points    int
	LeveledUp bool
	Unlocked  []UnlockOutput
}
