package compile

import (
	"fmt"
	"html"
)

// Page wraps a compiled fragment into a complete standalone HTML document
// that links the stylesheet as style.css. Used when an explicit save also
// writes the public artifact to disk.
func Page(title, bodyHTML string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="style.css">
</head>
<body>
%s</body>
</html>
`, html.EscapeString(title), bodyHTML)
}
