package model

type AnalyzeRequestBody struct {
	Text        string `json:"text"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	StringCount int    `json:"string_count"`
}

type AnalyzeResponse struct {
	Song     SongInfo      `json:"song"`
	Cards    []CardResult  `json:"cards"`
	Metadata *SongMetadata `json:"metadata,omitempty"`
}

type SongInfo struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Key         string `json:"key"`
	StringCount int    `json:"string_count"`
}

type CardResult struct {
	Symbol      string    `json:"symbol"`
	Section     string    `json:"section"`
	ScaleDegree string    `json:"scale_degree"`
	BassNote    string    `json:"bass_note"`
	Notes       []string  `json:"notes"`
	Fretboard   []GridRow `json:"fretboard"`
	Error       string    `json:"error,omitempty"`
}

type GridRow struct {
	String string     `json:"string"`
	Cells  []GridCell `json:"cells"`
}

type GridCell struct {
	Role string `json:"role"`
	Note string `json:"note"`
}

type SongMetadata struct {
	Artist  string `json:"artist"`
	Release string `json:"release"`
	Title   string `json:"title"`
	Year    uint   `json:"year"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
