package constants

import "os"

// FretCount is the number of fretted positions shown per string, in
// addition to the open string.
const FretCount = 5

// DefaultKey is assumed when a song has no chords to infer a key from.
const DefaultKey = "C"

const DefaultStringCount = 4

func GetCardsPath() string {
	path := os.Getenv("CARDS_PATH")
	if path != "" {
		return path
	}
	return "./cards.yaml"
}

// GetSongDBEndpoint returns the metadata database endpoint, or empty if
// metadata lookup is disabled.
func GetSongDBEndpoint() string {
	return os.Getenv("SONGDB_ENDPOINT")
}
