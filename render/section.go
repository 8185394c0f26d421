package render

// Section renders a title underlined with '=' and, if not empty, the body.
func Section(title, body string) string {
	s := title + "\n" + repeat("=", width(title))
	if body != "" {
		s += "\n" + body
	}
	return s
}
