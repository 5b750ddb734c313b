package protocol

import "strings"

type RefName struct {
	// FullName is the entire, raw refname, including the 'refs/' prefix (unless it is HEAD).
	FullName string
	// Category is the first part of the refname after 'refs/'. E.g. 'heads'. Can be 'HEAD' for HEAD.
	// Does not include a final slash.
	Category string
	// Location is the final remainder of the refname, after the category. E.g. 'main', 'feature/test'.
	Location string
}

// HEAD is a special-case refname that always exists and is always valid.
var HEAD RefName = RefName{
	FullName: "HEAD",
	Category: "HEAD",
	Location: "HEAD",
}

// ParseRefName parses and validates a refname.
// HEAD is always valid. Otherwise the name must start with `refs/`, contain a
// category, and follow git's check-ref-format rules:
//
//   - No slash-separated component can be empty, start with a dot ('.') or end with '.lock'.
//   - No consecutive dots ('..') can exist anywhere.
//   - It cannot contain any byte < 040, DEL (177), space, tilde ('~'), caret ('^'),
//     colon (':'), question mark ('?'), asterisk ('*'), open square bracket ('[') or backslash.
//   - It cannot end with a slash or a dot.
//   - It cannot contain '@{'.
func ParseRefName(in string) (RefName, error) {
	if in == "HEAD" {
		return HEAD, nil
	}

	rn := RefName{FullName: in}
	rest, ok := strings.CutPrefix(in, "refs/")
	if !ok {
		return rn, NewInvalidRefNameError(in, "does not include refs/ prefix")
	}

	category, location, ok := strings.Cut(rest, "/")
	if !ok || category == "" || location == "" {
		return rn, NewInvalidRefNameError(in, "does not include a category")
	}

	if reason := checkRefFormat(in); reason != "" {
		return rn, NewInvalidRefNameError(in, reason)
	}

	rn.Category = category
	rn.Location = location
	return rn, nil
}

func checkRefFormat(name string) string {
	for i := 0; i < len(name); i++ {
		b := name[i]
		if b < 040 || b == 0177 {
			return "contains a control character"
		}
		if strings.IndexByte(" ~^:?*[\\", b) >= 0 {
			return "contains a forbidden character"
		}
	}

	switch {
	case strings.Contains(name, ".."):
		return "contains '..'"
	case strings.Contains(name, "@{"):
		return "contains '@{'"
	case strings.HasSuffix(name, "/"), strings.HasSuffix(name, "."):
		return "ends with a slash or a dot"
	}

	for _, component := range strings.Split(name, "/") {
		switch {
		case component == "":
			return "contains an empty component"
		case strings.HasPrefix(component, "."):
			return "has a component starting with a dot"
		case strings.HasSuffix(component, ".lock"):
			return "has a component ending with .lock"
		}
	}

	return ""
}
