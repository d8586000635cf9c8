package place

import (
	"regexp"
	"strings"
)

// locativeCities are matched after the preposition "w" ("w Krakowie").
// A few entries are nominative, as people write them that way too.
var locativeCities = []string{
	"Warszawie", "Krakowie", "Wrocławiu", "Poznaniu", "Gdańsku", "Łodzi",
	"Szczecinie", "Bydgoszczy", "Lublinie", "Katowicach", "Białymstoku",
	"Częstochowie", "Gdyni", "Radomiu", "Sosnowcu", "Toruniu", "Kielcach",
	"Rzeszowie", "Gliwicach", "Zabrzu", "Olsztynie", "Bielsku-Białej",
	"Bytomiu", "Zielonej Górze", "Rybnik", "Tarnowie", "Opolu",
	"Gorzowie Wielkopolskim", "Płocku", "Elblągu", "Wałbrzychu", "Chorzowie",
	"Tarnobrzegu", "Koszalinie", "Kaliszu", "Legnica", "Grudziądzu", "Słupsk",
	"Jaworzno", "Jastrzębie-Zdroju", "Nowy Sącz", "Jelenia Góra", "Siedlce",
	"Mysłowice", "Piła", "Ostrów Wielkopolski", "Stargard",
	"Siemianowice Śląskie", "Pabianice", "Gniezno", "Lubin", "Oświęcim",
	"Tychy", "Będzin", "Głogów", "Leszno", "Zawiercie", "Świdnica", "Piekarach",
}

var nominativeCities = []string{
	"Warszawa", "Kraków", "Wrocław", "Poznań", "Gdańsk", "Łódź", "Szczecin",
	"Bydgoszcz", "Lublin", "Katowice", "Białystok", "Częstochowa", "Gdynia",
	"Radom", "Sosnowiec", "Toruń", "Kielce", "Rzeszów", "Gliwice", "Zabrze",
	"Olsztyn", "Bielsko-Biała", "Bytom", "Zielona Góra", "Rybnik", "Tarnów",
	"Opole", "Gorzów Wielkopolski", "Płock", "Elbląg", "Wałbrzych", "Chorzów",
	"Tarnobrzeg", "Koszalin", "Kalisz", "Legnica", "Grudziądz", "Słupsk",
	"Jaworzno", "Jastrzębie-Zdrój", "Nowy Sącz", "Jelenia Góra", "Siedlce",
	"Mysłowice", "Piła", "Ostrów Wielkopolski", "Stargard",
	"Siemianowice Śląskie", "Pabianice", "Gniezno", "Lubin", "Oświęcim",
	"Tychy", "Będzin", "Głogów", "Leszno", "Zawiercie", "Świdnica", "Piekary",
}

// Word boundaries are spelled out because \b in RE2 only knows ASCII and
// would not fire next to Polish letters.
const (
	wordStart = `(?:^|[^\p{L}\p{N}_])`
	wordEnd   = `(?:$|[^\p{L}\p{N}_])`
)

var cityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)` + wordStart + `w[\s\p{Z}]+` + alternation(locativeCities)),
	regexp.MustCompile(`(?i)` + wordStart + alternation(nominativeCities) + wordEnd),
}

func alternation(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = regexp.QuoteMeta(name)
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}

// MentionsPolishCity reports whether the query names one of the known Polish
// cities, either bare or in "w <city>" phrasing.
func MentionsPolishCity(query string) bool {
	for _, pattern := range cityPatterns {
		if pattern.MatchString(query) {
			return true
		}
	}
	return false
}
