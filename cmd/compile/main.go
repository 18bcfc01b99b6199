// Command compile builds a declinatio dataset artifact from a model source,
// a lemma source, and a tag-name file, and writes it to disk.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/latininflect/declinatio"
)

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

func main() {
	var modelsPath, lemmasPath, morphosPath, outPath string

	root := &cobra.Command{
		Use:   "compile",
		Short: "Compile modeles.la/lemmes.la/morphos.la into a declinatio dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			morphNames, err := readLines(morphosPath)
			if err != nil {
				return err
			}
			modelLines, err := readLines(modelsPath)
			if err != nil {
				return err
			}
			lemmaLines, err := readLines(lemmasPath)
			if err != nil {
				return err
			}

			ds, err := declinatio.Compile(morphNames, modelLines, lemmaLines)
			if err != nil {
				return fmt.Errorf("compile: %w", err)
			}

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer out.Close()

			if err := ds.Encode(out); err != nil {
				return fmt.Errorf("encode dataset: %w", err)
			}
			log.Printf("compiled %d paradigms, %d lemmas -> %s", len(ds.Models), len(ds.Lemmas), outPath)
			return nil
		},
	}

	root.Flags().StringVar(&modelsPath, "models", "modeles.la", "path to the model-definition source")
	root.Flags().StringVar(&lemmasPath, "lemmas", "lemmes.la", "path to the lemma source")
	root.Flags().StringVar(&morphosPath, "morphos", "morphos.la", "path to the tag-name file")
	root.Flags().StringVar(&outPath, "out", "declinatio.dataset", "path to write the compiled dataset")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
