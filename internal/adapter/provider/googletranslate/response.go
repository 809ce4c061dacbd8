package googletranslate

// The translate_a/single endpoint is undocumented and its response shape is
// observed, not guaranteed. With dj=1 the body is a JSON object whose blocks
// correspond to the requested dt sections.

// apiResponse is the subset of the response body this provider consumes.
type apiResponse struct {
	Sentences   []apiSentence `json:"sentences"`
	Synsets     []apiSynset   `json:"synsets"`
	Definitions []apiSynset   `json:"definitions"`
	Examples    apiExamples   `json:"examples"`
}

// apiSentence carries one translated fragment.
type apiSentence struct {
	Trans string `json:"trans"`
}

// apiSynset groups entries by part of speech. The same shape is used for
// both the synsets and definitions blocks.
type apiSynset struct {
	Entry []apiSynsetEntry `json:"entry"`
}

type apiSynsetEntry struct {
	Synonym []string `json:"synonym"`
	Gloss   string   `json:"gloss"`
}

type apiExamples struct {
	Example []apiExampleItem `json:"example"`
}

type apiExampleItem struct {
	Text string `json:"text"`
}
