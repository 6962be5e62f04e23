package model

// CardsDoc is the persisted representation of an analyzed song. Reloading
// re-parses each chord symbol and then restores the persisted bass note,
// which may differ from what parsing alone would produce.
type CardsDoc struct {
	Song     SongDoc     `yaml:"song"`
	Settings SettingsDoc `yaml:"settings"`
	Chords   []ChordDoc  `yaml:"chords"`
}

type SongDoc struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Key    string `yaml:"key"`
}

type SettingsDoc struct {
	StringCount int `yaml:"string_count"`
	DisplayMode int `yaml:"display_mode"`
}

type ChordDoc struct {
	Symbol   string `yaml:"symbol"`
	Section  string `yaml:"section"`
	BassNote string `yaml:"bass_note"`
}
