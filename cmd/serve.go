package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/basscard/card"
	"github.com/jsphweid/basscard/chart"
	"github.com/jsphweid/basscard/constants"
	"github.com/jsphweid/basscard/db"
	"github.com/jsphweid/basscard/model"
	"github.com/jsphweid/basscard/song"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis API",
	Long:  `Serves the chord-chart analysis API on :8080.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// HandleAnalyze analyzes the chart text in the request body and returns
// the song, its cards, and any metadata known for the title. Exported so
// the e2e tests can drive it through httptest.
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body")
		return
	}

	var input model.AnalyzeRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "could not unmarshal request body: "+err.Error())
		return
	}
	if input.Text == "" {
		writeError(w, 400, "text is required")
		return
	}
	if input.StringCount == 0 {
		input.StringCount = constants.DefaultStringCount
	}

	s := song.New(input.Title, input.Author, "", chart.Parse(input.Text))
	count := model.StringCount(input.StringCount)
	outcomes := card.BuildAll(s.Chords, s.Key, count)

	res := model.AnalyzeResponse{
		Song: model.SongInfo{
			Title:       s.Title,
			Author:      s.Author,
			Key:         s.Key,
			StringCount: input.StringCount,
		},
		Cards: make([]model.CardResult, 0, len(outcomes)),
	}

	for _, out := range outcomes {
		cr := model.CardResult{Symbol: out.Card.Chord.Symbol}
		if out.Err != nil {
			cr.Error = out.Err.Error()
			res.Cards = append(res.Cards, cr)
			continue
		}
		c := out.Card
		cr.Section = c.Chord.Section
		cr.ScaleDegree = c.ScaleDegree
		cr.BassNote = c.Chord.BassNote
		cr.Notes = c.Notes
		for _, row := range c.Fretboard {
			gr := model.GridRow{String: row.Label}
			for _, cell := range row.Cells {
				gr.Cells = append(gr.Cells, model.GridCell{
					Role: cell.Role.String(),
					Note: cell.Note,
				})
			}
			cr.Fretboard = append(cr.Fretboard, gr)
		}
		res.Cards = append(res.Cards, cr)
	}

	if s.Title != "" && constants.GetSongDBEndpoint() != "" {
		metas, err := db.GetSongMetadatas([]string{s.Title})
		if err != nil {
			fmt.Printf("Could not fetch metadata for %v: %v\n", s.Title, err)
		} else if meta, ok := metas[s.Title]; ok {
			res.Metadata = &meta
		}
	}

	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
