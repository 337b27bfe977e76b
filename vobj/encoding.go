package vobj

import "strconv"

// TryEncoding promotes o to a more compact STRING representation when
// possible, per spec.md §4.5's seven ordered rules. It returns o itself
// (possibly mutated in place) or a replacement object, with the original
// decremented when replaced. It never fails in a user-visible way:
// worst case it returns o unchanged (spec.md §7 "Propagation policy").
func TryEncoding(o *Object) *Object {
	// Rule 1: already compact.
	if o.enc != EncRaw && o.enc != EncEmbStr {
		return o
	}
	// Rule 2: shared, not safe to rewrite in place.
	if o.refcount > 1 {
		return o
	}

	s := o.StringBytes()
	n := len(s)

	// Rule 4: try integer.
	if n <= 20 {
		if v, ok := parseExactInt64(s); ok {
			if shared := sharedInt(v); shared != nil && !currentPolicy.NoSharedIntegers {
				Decr(o)
				return shared
			}
			if o.enc == EncRaw {
				o.raw = nil
			}
			o.enc = EncInt
			o.intVal = v
			return o
		}
	}

	// Rule 5: try embedded.
	if n <= embStrMaxLen && o.enc == EncRaw {
		embedded := CreateEmbeddedString(s)
		Decr(o)
		return embedded
	}

	// Rule 6: trim raw.
	if o.enc == EncRaw {
		if o.raw.Avail()*10 > o.raw.Len() {
			o.raw.RemoveFreeSpace()
		}
	}

	// Rule 7: leave as is.
	return o
}

// parseExactInt64 parses s as a signed decimal integer, requiring the
// entire buffer to be consumed and rejecting leading/trailing
// whitespace (spec.md §4.5 rule 4, §4.7's exactness requirements).
func parseExactInt64(s []byte) (int64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	if s[0] == ' ' || s[len(s)-1] == ' ' {
		return 0, false
	}
	v, err := strconv.ParseInt(string(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
