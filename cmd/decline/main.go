// Command decline loads a compiled declinatio dataset and prints the
// inflected forms (or resolved roots) of a queried lemma.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/latininflect/declinatio"
)

func main() {
	var dataPath string
	var flatten bool
	var showRoots bool
	var paradigm string

	root := &cobra.Command{
		Use:   "decline LEMMA",
		Short: "Print the inflected forms or roots of a Latin lemma",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lemma := args[0]

			dec, err := declinatio.LoadDecliner(dataPath)
			if err != nil {
				return fmt.Errorf("load dataset: %w", err)
			}

			if showRoots {
				roots, err := dec.GetRoots(lemma, paradigm)
				if err != nil {
					return err
				}
				return json.NewEncoder(os.Stdout).Encode(roots)
			}

			if flatten {
				forms, err := dec.DeclineFlat(lemma)
				if err != nil {
					return err
				}
				return json.NewEncoder(os.Stdout).Encode(forms)
			}

			forms, err := dec.Decline(lemma)
			if err != nil {
				return err
			}
			tags := make([]int, 0, len(forms))
			for t := range forms {
				tags = append(tags, t)
			}
			sort.Ints(tags)

			ordered := make(map[string][]string, len(forms))
			for _, t := range tags {
				ordered[fmt.Sprint(t)] = forms[t]
			}
			return json.NewEncoder(os.Stdout).Encode(ordered)
		},
	}

	root.Flags().StringVar(&dataPath, "data", "declinatio.dataset", "path to the compiled dataset")
	root.Flags().BoolVar(&flatten, "flatten", false, "flatten forms into a single ordered list")
	root.Flags().BoolVar(&showRoots, "roots", false, "print resolved roots instead of forms")
	root.Flags().StringVar(&paradigm, "paradigm", "", "override the lemma's own paradigm (roots only)")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
