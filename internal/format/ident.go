package format

const shortIDLen = 18

// ShortID keeps the first 18 characters of an identifier and appends "...".
func ShortID(id string) string {
	if len(id) > shortIDLen {
		id = id[:shortIDLen]
	}
	return id + "..."
}
