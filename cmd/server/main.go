// Command server exposes a loaded declinatio dataset as a JSON REST API.
//
// Endpoints:
//
//	GET /api/decline?lemma=<word>[&flatten=true]
//	GET /api/roots?lemma=<word>[&paradigm=<name>]
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/latininflect/declinatio"
)

type errorResponse struct {
	Error string `json:"error"`
}

type declineResponse struct {
	Lemma string              `json:"lemma"`
	Forms map[string][]string `json:"forms,omitempty"`
	Flat  []string            `json:"flat,omitempty"`
}

type rootsResponse struct {
	Lemma string              `json:"lemma"`
	Roots map[string][]string `json:"roots"`
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

func handleDecline(dec *declinatio.Decliner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lemma := r.URL.Query().Get("lemma")
		if lemma == "" {
			writeError(w, http.StatusBadRequest, "missing 'lemma' query parameter")
			return
		}
		flatten, _ := strconv.ParseBool(r.URL.Query().Get("flatten"))

		if flatten {
			flat, err := dec.DeclineFlat(lemma)
			if err != nil {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			writeJSON(w, http.StatusOK, declineResponse{Lemma: lemma, Flat: flat})
			return
		}

		forms, err := dec.Decline(lemma)
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		tags := make([]int, 0, len(forms))
		for t := range forms {
			tags = append(tags, t)
		}
		sort.Ints(tags)

		out := make(map[string][]string, len(forms))
		for _, t := range tags {
			out[fmt.Sprint(t)] = forms[t]
		}
		writeJSON(w, http.StatusOK, declineResponse{Lemma: lemma, Forms: out})
	}
}

func handleRoots(dec *declinatio.Decliner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lemma := r.URL.Query().Get("lemma")
		if lemma == "" {
			writeError(w, http.StatusBadRequest, "missing 'lemma' query parameter")
			return
		}
		paradigm := r.URL.Query().Get("paradigm")

		roots, err := dec.GetRoots(lemma, paradigm)
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, rootsResponse{Lemma: lemma, Roots: roots})
	}
}

func main() {
	var dataPath, addr string
	var allowedOrigins []string

	root := &cobra.Command{
		Use:   "server",
		Short: "Serve a compiled declinatio dataset over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Printf("loading dataset from %s …", dataPath)
			dec, err := declinatio.LoadDecliner(dataPath)
			if err != nil {
				return fmt.Errorf("load dataset: %w", err)
			}
			log.Println("dataset loaded")

			mux := http.NewServeMux()
			mux.HandleFunc("/api/decline", handleDecline(dec))
			mux.HandleFunc("/api/roots", handleRoots(dec))

			c := cors.New(cors.Options{
				AllowedOrigins: allowedOrigins,
				AllowedMethods: []string{http.MethodGet},
			})
			handler := c.Handler(mux)

			log.Printf("listening on %s", addr)
			return http.ListenAndServe(addr, handler)
		},
	}

	root.Flags().StringVar(&dataPath, "data", "declinatio.dataset", "path to the compiled dataset")
	root.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	root.Flags().StringSliceVar(&allowedOrigins, "allowed-origins", []string{"*"}, "CORS allowed origins")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
