package http

func ExtractVersion(ldFlagsValueStr string) (string, error) {
	return extractVersion(ldFlagsValueStr)
}
