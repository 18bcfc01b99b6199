package declinatio

// Decliner wraps a loaded Dataset and answers root/form queries against it.
// Its zero value is not usable; construct one via NewDecliner, or load one
// directly with LoadDecliner.
type Decliner struct {
	dataset *Dataset
}

// NewDecliner wraps an already-built or already-loaded Dataset.
func NewDecliner(ds *Dataset) *Decliner {
	return &Decliner{dataset: ds}
}

// Dataset returns the underlying compiled dataset.
func (d *Decliner) Dataset() *Dataset {
	return d.dataset
}

// LoadDecliner reads a compiled dataset artifact from path and wraps it in a
// Decliner ready for queries.
func LoadDecliner(path string) (*Decliner, error) {
	ds, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewDecliner(ds), nil
}

// Compile runs the model and lemma compilers over source text and assembles
// the resulting Dataset, producing both the diacritic-preserving and
// ASCII-folded paradigm tables from the same modelLines.
func Compile(morphNames, modelLines, lemmaLines []string) (*Dataset, error) {
	scansionModels, err := CompileModels(sourceModelsDiacritic, modelLines)
	if err != nil {
		return nil, err
	}
	asciiModels, err := CompileModels(sourceModelsASCII, NormalizeLines(modelLines))
	if err != nil {
		return nil, err
	}
	lemmas, err := CompileLemmas("lemmes.la", lemmaLines)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(morphNames)+1)
	copy(names[1:], morphNames)

	return &Dataset{
		MorphName:      names,
		Models:         asciiModels,
		ScansionModels: scansionModels,
		Lemmas:         lemmas,
	}, nil
}
