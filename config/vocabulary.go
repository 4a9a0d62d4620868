package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/CatherineTower/air-ride-statistics/report"
	"github.com/CatherineTower/air-ride-statistics/vocab"
)

// vocabularyFile is the root of a vocabulary definition file:
//
//	domain "location" {
//	  term "coral" { label = "Coral" }
//	  term "underhouses" { label = "Under the Houses" }
//	}
//
// Terms are listed in ordinal order. Domains left out of the file keep their
// built-in terms.
type vocabularyFile struct {
	Domains []*domainBlock `hcl:"domain,block"`
}

type domainBlock struct {
	Name  string       `hcl:"name,label"`
	Terms []*termBlock `hcl:"term,block"`
}

type termBlock struct {
	Spelling string `hcl:"spelling,label"`
	Label    string `hcl:"label,optional"`
}

// LoadVocabulary reads a vocabulary file and returns the default vocabulary
// and labels with the file's domains substituted in.
func LoadVocabulary(path string) (*vocab.Vocabulary, *report.Labels, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, diags)
	}
	return decodeVocabulary(path, file)
}

// ParseVocabulary is like LoadVocabulary but reads the definitions from src.
func ParseVocabulary(src []byte, filename string) (*vocab.Vocabulary, *report.Labels, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to parse vocabulary file %s: %w", filename, diags)
	}
	return decodeVocabulary(filename, file)
}

func decodeVocabulary(filename string, file *hcl.File) (*vocab.Vocabulary, *report.Labels, error) {
	var root vocabularyFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to decode vocabulary file %s: %w", filename, diags)
	}

	v := vocab.Default()
	labels := report.DefaultLabels()
	seen := make(map[string]struct{}, len(root.Domains))

	for _, block := range root.Domains {
		if _, ok := seen[block.Name]; ok {
			return nil, nil, fmt.Errorf("%s: domain %q is defined more than once", filename, block.Name)
		}
		seen[block.Name] = struct{}{}

		spellings := make([]string, len(block.Terms))
		for i, term := range block.Terms {
			spellings[i] = term.Spelling
		}

		domain, err := vocab.NewDomain(block.Name, spellings...)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", filename, err)
		}
		if v, err = v.With(domain); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", filename, err)
		}

		for _, term := range block.Terms {
			if term.Label != "" {
				labels.Set(block.Name, term.Spelling, term.Label)
			}
		}
	}

	return v, labels, nil
}
