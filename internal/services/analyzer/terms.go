package analyzer

import (
	_ "embed"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed terms.yaml
var termsYAML []byte

type termsFile struct {
	Terms []string `yaml:"terms"`
}

var (
	legalTermsOnce sync.Once
	legalTerms     []string
)

// loadLegalTerms parses the embedded dictionary once. A parse failure leaves
// the dictionary empty rather than failing analysis.
func loadLegalTerms() []string {
	legalTermsOnce.Do(func() {
		var tf termsFile
		if err := yaml.Unmarshal(termsYAML, &tf); err != nil {
			legalTerms = []string{}
			return
		}
		legalTerms = tf.Terms
	})
	return legalTerms
}

// LegalTermsIn returns every dictionary term contained in the text, in
// dictionary order. Matching is case-insensitive substring containment, so
// "per se" also matches inside longer runs of text.
func LegalTermsIn(text string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for _, term := range loadLegalTerms() {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}
