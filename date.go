package clipdoc

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TokenOrder is the order in which day, month and year appear in a grammar's
// date phrase.
type TokenOrder int

// Token orders for the supported grammars.
const (
	MonthDayYear TokenOrder = iota
	DayMonthYear
)

// DateGrammar describes how a locale's free-text date phrase decomposes into
// day, month, year, an optional weekday and optional trailing edition text.
// Grammars are data: month and weekday vocabularies plus token order.
// Adding a locale is a new vocabulary table, not new control flow.
//
// Matching is case-sensitive to the vocabulary as given; separators between
// tokens tolerate mixed punctuation and whitespace.
type DateGrammar struct {
	Language string
	Months   []string // index+1 is the month number; spellings separated by "|"
	Weekdays []string
	Order    TokenOrder

	re *regexp.Regexp
}

// EnglishDates matches phrases like "June 12, 1995, Monday, Final Edition".
var EnglishDates = newDateGrammar("english", MonthDayYear,
	[]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	[]string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
		"Saturday", "Sunday",
	},
)

// GermanDates matches phrases like "12. Juni 1995 Montag, Ausgabe Berlin".
// March is accepted with both the umlaut and the ASCII-substituted spelling.
var GermanDates = newDateGrammar("german", DayMonthYear,
	[]string{
		"Januar", "Februar", "März|Maerz", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	[]string{
		"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag",
		"Samstag", "Sonntag",
	},
)

// GrammarForLanguage returns the grammar for a language selector.
// Returns EINVALID for an unsupported language.
func GrammarForLanguage(language string) (*DateGrammar, error) {
	switch language {
	case "english":
		return EnglishDates, nil
	case "german":
		return GermanDates, nil
	default:
		return nil, Errorf(EINVALID, "unsupported date language %q", language)
	}
}

func newDateGrammar(language string, order TokenOrder, months, weekdays []string) *DateGrammar {
	g := &DateGrammar{
		Language: language,
		Months:   months,
		Weekdays: weekdays,
		Order:    order,
	}

	monthAlt := "(" + strings.Join(months, "|") + ")"
	weekdayAlt := "(" + strings.Join(weekdays, "|") + ")"
	const sep = `[\s,.]+`

	var core string
	switch order {
	case MonthDayYear:
		core = monthAlt + sep + `(\d{1,2})` + sep + `(\d{4})`
	case DayMonthYear:
		core = `(\d{1,2})` + sep + monthAlt + sep + `(\d{4})`
	}

	// Weekday and trailing edition text are both optional; the trailing
	// group only exists on a structurally matched phrase.
	g.re = regexp.MustCompile(`^` + core +
		`(?:` + sep + weekdayAlt + `)?` +
		`(?:[\s,]+(.+))?$`)
	return g
}

// ParsedDate is the outcome of matching a date phrase against a grammar.
type ParsedDate struct {
	// ISO is the canonical calendar date formatted as yyyy-MM-dd.
	ISO string

	// Weekday is the matched weekday name, if present.
	Weekday string

	// Edition is the trimmed trailing free text following the date, often a
	// print edition or regional variant.
	Edition string
}

// ParseDate matches a free-text phrase against the grammar. It reports
// ok=false when the phrase does not decompose into day, month and year, or
// when the decomposed values do not form a valid calendar date (e.g. day 31
// in a 30-day month). No date is ever guessed.
func (g *DateGrammar) ParseDate(phrase string) (ParsedDate, bool) {
	m := g.re.FindStringSubmatch(strings.TrimSpace(phrase))
	if m == nil {
		return ParsedDate{}, false
	}

	var dayStr, monthStr, yearStr string
	switch g.Order {
	case MonthDayYear:
		monthStr, dayStr, yearStr = m[1], m[2], m[3]
	case DayMonthYear:
		dayStr, monthStr, yearStr = m[1], m[2], m[3]
	}

	month := g.monthNumber(monthStr)
	if month == 0 {
		return ParsedDate{}, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return ParsedDate{}, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return ParsedDate{}, false
	}

	// time.Date normalizes out-of-range components (June 31 becomes July 1);
	// a round-trip mismatch therefore means the phrase named an impossible
	// calendar date.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return ParsedDate{}, false
	}

	return ParsedDate{
		ISO:     t.Format("2006-01-02"),
		Weekday: strings.TrimSpace(m[4]),
		Edition: strings.TrimSpace(m[5]),
	}, true
}

// monthNumber resolves a matched month name to its 1-based number.
// Returns 0 for a name outside the vocabulary.
func (g *DateGrammar) monthNumber(name string) int {
	for i, entry := range g.Months {
		for _, spelling := range strings.Split(entry, "|") {
			if name == spelling {
				return i + 1
			}
		}
	}
	return 0
}
