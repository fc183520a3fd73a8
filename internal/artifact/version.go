package artifact

import "strings"

// Version is a Maven version string with ComparableVersion ordering.
// The zero value compares equal to "0".
type Version struct {
	raw   string
	items *listItem
}

// ParseVersion parses s. Parsing never fails; any string has a position in
// the ordering.
func ParseVersion(s string) Version {
	return Version{raw: s, items: parseItems(s)}
}

// String returns the version as it was written.
func (v Version) String() string {
	return v.raw
}

// Compare returns -1, 0 or 1 when v is lower, equal or higher than o.
func (v Version) Compare(o Version) int {
	return sign(v.list().compare(o.list()))
}

// Less reports whether v orders before o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

func (v Version) list() *listItem {
	if v.items == nil {
		return &listItem{}
	}
	return v.items
}

// Known qualifiers in ascending order. The empty qualifier is a release.
var qualifiers = []string{"alpha", "beta", "milestone", "rc", "snapshot", "", "sp"}

var qualifierAliases = map[string]string{
	"ga":      "",
	"final":   "",
	"release": "",
	"cr":      "rc",
}

const releaseIndex = "5"

// item is one parsed component. other is nil when the opposite side
// has run out of components.
type item interface {
	compare(other item) int
	isNull() bool
}

// intItem holds decimal digits without leading zeros; zero is "0".
type intItem string

type stringItem string

type listItem struct {
	items []item
}

func newIntItem(digits string) intItem {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0"
	}
	return intItem(digits)
}

func newStringItem(s string, followedByDigit bool) stringItem {
	if followedByDigit && len(s) == 1 {
		switch s {
		case "a":
			s = "alpha"
		case "b":
			s = "beta"
		case "m":
			s = "milestone"
		}
	}
	if alias, ok := qualifierAliases[s]; ok {
		s = alias
	}
	return stringItem(s)
}

func (i intItem) isNull() bool { return i == "0" }

func (i intItem) compare(other item) int {
	switch o := other.(type) {
	case nil:
		if i.isNull() {
			return 0
		}
		return 1
	case intItem:
		if len(i) != len(o) {
			if len(i) < len(o) {
				return -1
			}
			return 1
		}
		return strings.Compare(string(i), string(o))
	default:
		// 1.1 > 1-sp, 1.1 > 1-1
		return 1
	}
}

func comparableQualifier(q string) string {
	for i, known := range qualifiers {
		if q == known {
			return string(rune('0' + i))
		}
	}
	// unknown qualifiers sort after every known one, lexically among themselves
	return "7-" + q
}

func (s stringItem) isNull() bool {
	return comparableQualifier(string(s)) == releaseIndex
}

func (s stringItem) compare(other item) int {
	switch o := other.(type) {
	case nil:
		// 1-rc < 1, 1-ga == 1, 1-sp > 1
		return strings.Compare(comparableQualifier(string(s)), releaseIndex)
	case stringItem:
		return strings.Compare(comparableQualifier(string(s)), comparableQualifier(string(o)))
	default:
		return -1
	}
}

func (l *listItem) add(it item) {
	l.items = append(l.items, it)
}

func (l *listItem) isNull() bool { return len(l.items) == 0 }

// normalize drops trailing null items (0, release qualifiers, empty lists),
// looking through nested lists until a non-null scalar is found.
func (l *listItem) normalize() {
	for i := len(l.items) - 1; i >= 0; i-- {
		last := l.items[i]
		if last.isNull() {
			l.items = append(l.items[:i], l.items[i+1:]...)
			continue
		}
		if _, ok := last.(*listItem); !ok {
			break
		}
	}
}

func (l *listItem) compare(other item) int {
	switch o := other.(type) {
	case nil:
		for _, it := range l.items {
			if result := it.compare(nil); result != 0 {
				return result
			}
		}
		return 0
	case intItem:
		return -1
	case stringItem:
		return 1
	case *listItem:
		n := max(len(l.items), len(o.items))
		for i := 0; i < n; i++ {
			var left, right item
			if i < len(l.items) {
				left = l.items[i]
			}
			if i < len(o.items) {
				right = o.items[i]
			}

			var result int
			switch {
			case left == nil && right == nil:
				result = 0
			case left == nil:
				result = -right.compare(nil)
			default:
				result = left.compare(right)
			}
			if result != 0 {
				return result
			}
		}
		return 0
	}
	return 0
}

func parseItem(isDigit bool, s string) item {
	if isDigit {
		return newIntItem(s)
	}
	return newStringItem(s, false)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseItems splits a version on '.', '-' and digit/letter transitions.
// A '-' or a transition opens a nested list, so 1-rc-1 becomes [1 [rc [1]]].
func parseItems(version string) *listItem {
	version = strings.ToLower(version)

	root := &listItem{}
	list := root
	stack := []*listItem{root}
	nest := func() {
		next := &listItem{}
		list.add(next)
		list = next
		stack = append(stack, next)
	}

	digit := false
	start := 0
	for i := 0; i < len(version); i++ {
		c := version[i]
		switch {
		case c == '.' || c == '-':
			if i == start {
				list.add(intItem("0"))
			} else {
				list.add(parseItem(digit, version[start:i]))
			}
			start = i + 1
			if c == '-' {
				nest()
			}
		case isDigit(c):
			if !digit && i > start {
				list.add(newStringItem(version[start:i], true))
				start = i
				nest()
			}
			digit = true
		default:
			if digit && i > start {
				list.add(parseItem(true, version[start:i]))
				start = i
				nest()
			}
			digit = false
		}
	}
	if len(version) > start {
		list.add(parseItem(digit, version[start:]))
	}

	for i := len(stack) - 1; i >= 0; i-- {
		stack[i].normalize()
	}
	return root
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
