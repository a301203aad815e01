// Command server exposes the Latin prosody engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/syllabify?word=<word>
//	POST /api/scan     body: {"text":"...","elide":true}
//	GET  /api/meters
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/cours-de-latin/prosody"
)

// ---- JSON response types ------------------------------------------------

type syllableJSON struct {
	Text     string `json:"text"`
	Quantity string `json:"quantity"`
	Mark     string `json:"mark"`
}

type syllabifyResponse struct {
	Word      string         `json:"word"`
	Syllables []syllableJSON `json:"syllables"`
	Marks     string         `json:"marks"`
}

type footJSON struct {
	Group     string         `json:"group"`
	Template  string         `json:"template"`
	Syllables []syllableJSON `json:"syllables"`
}

type scanResponse struct {
	Text    string           `json:"text"`
	Tokens  []string         `json:"tokens"`
	Words   [][]syllableJSON `json:"words"`
	Pattern string           `json:"pattern"`
	Errors  []string         `json:"errors,omitempty"`
	Meter   string           `json:"meter"`
	Valid   bool             `json:"valid"`
	Feet    []footJSON       `json:"feet"`
	Reason  string           `json:"reason,omitempty"`
}

type metersResponse struct {
	Meters []string `json:"meters"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toSyllablesJSON(syls []prosody.Syllable) []syllableJSON {
	out := make([]syllableJSON, 0, len(syls))
	for _, s := range syls {
		out = append(out, syllableJSON{
			Text:     s.Text,
			Quantity: s.Quantity.Name(),
			Mark:     s.Quantity.String(),
		})
	}
	return out
}

func toScanResponse(a prosody.LineAnalysis) scanResponse {
	words := make([][]syllableJSON, 0, len(a.Words))
	for _, w := range a.Words {
		words = append(words, toSyllablesJSON(w))
	}
	feet := make([]footJSON, 0, len(a.Match.Feet))
	for _, f := range a.Match.Feet {
		feet = append(feet, footJSON{
			Group:     f.Group,
			Template:  f.Template.String(),
			Syllables: toSyllablesJSON(f.Syllables),
		})
	}
	var errs []string
	for _, err := range a.Errors {
		errs = append(errs, err.Error())
	}
	return scanResponse{
		Text:    a.Text,
		Tokens:  a.Tokens,
		Words:   words,
		Pattern: a.Pattern(),
		Errors:  errs,
		Meter:   prosody.Hexameter.String(),
		Valid:   a.Match.Valid,
		Feet:    feet,
		Reason:  a.Match.Reason,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleSyllabify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		syls, err := prosody.Syllabify(word)
		if errors.Is(err, prosody.ErrInvalidCharacter) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		} else if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, syllabifyResponse{
			Word:      word,
			Syllables: toSyllablesJSON(syls),
			Marks:     syls.Marks(),
		})
	}
}

func handleScan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		body := struct {
			Text  string `json:"text"`
			Elide *bool  `json:"elide"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		elide := true
		if body.Elide != nil {
			elide = *body.Elide
		}
		writeJSON(w, http.StatusOK, toScanResponse(prosody.AnalyzeLine(body.Text, elide)))
	}
}

func handleMeters() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		var names []string
		for _, m := range prosody.Meters() {
			names = append(names, m.String())
		}
		writeJSON(w, http.StatusOK, metersResponse{Meters: names})
	}
}

func newHandler(enableCORS bool) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/syllabify", handleSyllabify())
	mux.HandleFunc("/api/scan", handleScan())
	mux.HandleFunc("/api/meters", handleMeters())
	if !enableCORS {
		return mux
	}
	return cors.Default().Handler(mux)
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	enableCORS := flag.Bool("cors", true, "allow cross-origin requests")
	flag.Parse()

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, newHandler(*enableCORS)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
