package sentence

import (
	"strings"
)

type Doc struct {
	Id int `json:"id,omitempty"`

	Title string `json:"title,omitempty"`

	Labels []string `json:"labels,omitempty"`

	// The original text the tokens were produced from. Optional.
	Text string `json:"text,omitempty"`

	// Name of the model that annotated the doc (f.ex. es_core_news_sm)
	Model string `json:"model,omitempty"`

	Tokens [][]Token `json:"tokens"`
}

// Library is a collection of Doc
type Library []Doc

// Sentence is a sentence of a Doc, with the surface text and its tokens.
type Sentence struct {
	Id     int
	DocId  int
	Text   string
	Tokens []Token
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	// Position of the token in the doc, starting at 0.
	Id int `json:"id"`

	// Id of the syntactic head. The root is its own head.
	Head int `json:"head"`

	SentenceId int    `json:"sent"`
	Pos        string `json:"pos"`
	Dep        string `json:"dep"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	// the index of the start character of the token in the original doc (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`

	// Named entity type (PERSON, LOC, ...), empty if the token is not part
	// of an entity.
	Ent string `json:"ent,omitempty"`
}

// Sentences returns the sentences of the doc in document order.
func (d Doc) Sentences() []Sentence {
	runes := []rune(d.Text)

	sentences := make([]Sentence, 0, len(d.Tokens))
	for i, tokens := range d.Tokens {
		sentences = append(sentences, Sentence{
			Id:     i,
			DocId:  d.Id,
			Text:   spanText(runes, tokens),
			Tokens: tokens,
		})
	}

	return sentences
}

// HeadOf returns the syntactic head of t. Head is the document level id of
// the head token, as spaCy writes it; docs whose ids are not set are resolved
// by the position in the sentence. A token whose head can not be found in
// the sentence is its own head, as the root of a parse is.
func (s Sentence) HeadOf(t Token) Token {
	for _, candidate := range s.Tokens {
		if candidate.Id == t.Head {
			return candidate
		}
	}

	for _, candidate := range s.Tokens {
		if candidate.Index == t.Head {
			return candidate
		}
	}

	return t
}

// spanText cuts the text of the sentence from the doc text, from the start
// of the first token to the end of the last one. Without doc text, the
// sentence is rebuilt from the tokens.
func spanText(doc []rune, tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}

	first := tokens[0]
	last := tokens[len(tokens)-1]
	end := last.Idx + len([]rune(last.Text))

	if len(doc) == 0 || first.Idx < 0 || end > len(doc) || first.Idx > end {
		return Join(tokens)
	}

	return string(doc[first.Idx:end])
}

// Join rebuilds the text of a sentence from its tokens, using the idx field
// of each token to restore the spaces between words.
func Join(tokens []Token) string {
	var str strings.Builder
	var lastIdx, lastLen int
	var lastText string
	for i, token := range tokens {
		l := len([]rune(token.Text))
		if i == 0 {
			str.WriteString(token.Text)
			lastIdx = token.Idx
			lastLen = l
			lastText = token.Text
			continue
		}

		// in the token format, both (or more) parts of the multi token word
		// have the same `text` field, and the same `idx`:
		//       {
		//         "pos": "VERB",
		//         "dep": "xcomp",
		//         "text": "envolverse",
		//         "idx": 2431,
		//         "index": 4,
		//         "lemma": "envolver"
		//       },
		//       {
		//         "pos": "PRON",
		//         "dep": "obj",
		//         "text": "envolverse",
		//         "idx": 2431,
		//         "index": 5,
		//         "lemma": "él"
		//       },
		//
		// By having both token the same idx, we avoid the rendering of the
		// token text again.
		diff := token.Idx - lastIdx

		if diff > 0 {
			if gap := diff - lastLen; gap > 0 {
				str.WriteString(strings.Repeat(" ", gap))
			}
			str.WriteString(token.Text)
		} else if token.Text != lastText {
			// no usable offsets, f.ex. hand written docs
			str.WriteString(" " + token.Text)
		}

		lastIdx = token.Idx
		lastLen = l
		lastText = token.Text
	}

	return strings.ReplaceAll(str.String(), "\n", " ")
}
