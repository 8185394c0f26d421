// Package label translates the tag codes of the annotation model into
// spanish display labels.
//
// Codes are the coarse Universal Dependencies part of speech tags, the
// dependency labels of the spaCy english and spanish models, and the named
// entity types of both. A code missing from a table is returned unchanged.
package label

var categories = map[string]string{
	"ADJ":   "ADJETIVO",
	"ADP":   "PREPOSICIÓN",
	"ADV":   "ADVERBIO",
	"AUX":   "AUXILIAR",
	"CCONJ": "CONJ. COORDINANTE",
	"CONJ":  "CONJUNCIÓN",
	"DET":   "DETERMINANTE",
	"INTJ":  "INTERJECCIÓN",
	"NOUN":  "SUSTANTIVO",
	"NUM":   "NUMERAL",
	"PART":  "PARTÍCULA",
	"PRON":  "PRONOMBRE",
	"PROPN": "NOMBRE PROPIO",
	"PUNCT": "PUNTUACIÓN",
	"SCONJ": "CONJ. SUBORDINANTE",
	"SPACE": "ESPACIO",
	"SYM":   "SÍMBOLO",
	"VERB":  "VERBO",
	"X":     "OTRO",
}

var dependencies = map[string]string{
	"ROOT":      "raíz",
	"acl":       "cláusula adjetiva",
	"acomp":     "complemento adjetival",
	"advcl":     "cláusula adverbial",
	"advmod":    "modificador adverbial",
	"agent":     "agente",
	"amod":      "modificador adjetival",
	"appos":     "aposición",
	"attr":      "atributo",
	"aux":       "auxiliar",
	"auxpass":   "auxiliar pasivo",
	"case":      "marca de caso",
	"cc":        "conjunción coordinante",
	"ccomp":     "complemento clausal",
	"compound":  "compuesto",
	"conj":      "conjunto",
	"cop":       "cópula",
	"csubj":     "sujeto clausal",
	"dative":    "dativo",
	"dep":       "dependencia",
	"det":       "determinante",
	"dobj":      "objeto directo",
	"expl":      "expletivo",
	"fixed":     "expresión fija",
	"flat":      "nombre compuesto",
	"iobj":      "objeto indirecto",
	"intj":      "interjección",
	"mark":      "marcador",
	"neg":       "negación",
	"nmod":      "modificador nominal",
	"npadvmod":  "modificador adverbial nominal",
	"nsubj":     "sujeto nominal",
	"nsubjpass": "sujeto pasivo",
	"nummod":    "modificador numeral",
	"obj":       "objeto",
	"obl":       "oblicuo",
	"oprd":      "predicativo",
	"parataxis": "parataxis",
	"pcomp":     "complemento preposicional",
	"pobj":      "objeto preposicional",
	"poss":      "posesivo",
	"preconj":   "preconjunción",
	"prep":      "preposición",
	"prt":       "partícula",
	"punct":     "puntuación",
	"quantmod":  "modificador cuantificador",
	"relcl":     "cláusula relativa",
	"root":      "raíz",
	"xcomp":     "complemento abierto",
}

var entities = map[string]string{
	"CARDINAL":    "cardinal",
	"DATE":        "fecha",
	"EVENT":       "evento",
	"FAC":         "instalación",
	"GPE":         "entidad geopolítica",
	"LANGUAGE":    "idioma",
	"LAW":         "ley",
	"LOC":         "lugar",
	"MISC":        "miscelánea",
	"MONEY":       "dinero",
	"NORP":        "grupo",
	"ORDINAL":     "ordinal",
	"ORG":         "organización",
	"PER":         "persona",
	"PERCENT":     "porcentaje",
	"PERSON":      "persona",
	"PRODUCT":     "producto",
	"QUANTITY":    "cantidad",
	"TIME":        "hora",
	"WORK_OF_ART": "obra de arte",
}

// Category returns the label of a part of speech code.
func Category(code string) string {
	return lookup(categories, code)
}

// Dependency returns the label of a dependency relation code.
func Dependency(code string) string {
	return lookup(dependencies, code)
}

// Entity returns the label of a named entity type.
func Entity(code string) string {
	return lookup(entities, code)
}

func lookup(table map[string]string, code string) string {
	if l, ok := table[code]; ok {
		return l
	}
	return code
}

// Translator applies the label tables when Enabled, and is the identity
// otherwise.
type Translator struct {
	Enabled bool
}

func (t Translator) Category(code string) string {
	if !t.Enabled {
		return code
	}
	return Category(code)
}

func (t Translator) Dependency(code string) string {
	if !t.Enabled {
		return code
	}
	return Dependency(code)
}

func (t Translator) Entity(code string) string {
	if !t.Enabled {
		return code
	}
	return Entity(code)
}
