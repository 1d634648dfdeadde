package scan

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	dbmQualityRe      = regexp.MustCompile(`Quality[=:](?P<quality>\d+/\d+).*Signal level[=:](?P<siglevel>-\d+) dBm?(.*Noise level[=:](?P<noiselevel>-\d+) dBm)?`)
	relativeQualityRe = regexp.MustCompile(`Quality[=:](?P<quality>\d+/\d+).*Signal level[=:](?P<siglevel>\d+/\d+)`)
	absoluteQualityRe = regexp.MustCompile(`Quality[=:](?P<quality>\d+).*Signal level[=:](?P<siglevel>\d+)`)
)

// qualityReading is one interpretation of a "Quality=..." line.
type qualityReading interface {
	apply(c *Cell)
}

// Signal and noise already in dBm.
type dbmReading struct {
	quality string
	signal  int
	noise   *int
}

// Signal given as a fraction of some driver specific maximum.
type relativeReading struct {
	quality       string
	actual, total int
}

// Bare numbers on a 0-100 scale.
type absoluteReading struct {
	quality int
	signal  int
}

func (t dbmReading) apply(c *Cell) {
	c.Quality = t.quality
	c.Signal = intPtr(t.signal)
	if t.noise != nil {
		c.Noise = intPtr(*t.noise)
	}
}

func (t relativeReading) apply(c *Cell) {
	c.Quality = t.quality
	if t.total == 0 {
		return
	}
	pct := int(math.Round(float64(t.actual) / float64(t.total) * 100))
	c.Signal = intPtr(dbmFromPercentage(pct))
}

func (t absoluteReading) apply(c *Cell) {
	c.Quality = strconv.Itoa(t.quality) + "/100"
	c.Signal = intPtr(dbmFromPercentage(t.signal))
}

// dbmFromPercentage maps a 0-100 signal percentage onto -100..-50 dBm.
func dbmFromPercentage(pct int) int {
	return pct/2 - 100
}

type qualityMatcher func(line string) (qualityReading, bool)

// Order matters: the absolute pattern also matches the other two forms.
var qualityMatchers = []qualityMatcher{
	matchDBM,
	matchRelative,
	matchAbsolute,
}

func parseQuality(line string) (qualityReading, bool) {
	for _, m := range qualityMatchers {
		if r, ok := m(line); ok {
			return r, true
		}
	}
	return nil, false
}

func matchDBM(line string) (qualityReading, bool) {
	g := namedGroups(dbmQualityRe, line)
	if g == nil {
		return nil, false
	}
	signal, err := strconv.Atoi(g["siglevel"])
	if err != nil {
		return nil, false
	}
	r := dbmReading{quality: g["quality"], signal: signal}
	if n, ok := g["noiselevel"]; ok && n != "" {
		if noise, err := strconv.Atoi(n); err == nil {
			r.noise = &noise
		}
	}
	return r, true
}

func matchRelative(line string) (qualityReading, bool) {
	g := namedGroups(relativeQualityRe, line)
	if g == nil {
		return nil, false
	}
	actual, total, ok := strings.Cut(g["siglevel"], "/")
	if !ok {
		return nil, false
	}
	a, err := strconv.Atoi(actual)
	if err != nil {
		return nil, false
	}
	b, err := strconv.Atoi(total)
	if err != nil {
		return nil, false
	}
	return relativeReading{quality: g["quality"], actual: a, total: b}, true
}

func matchAbsolute(line string) (qualityReading, bool) {
	g := namedGroups(absoluteQualityRe, line)
	if g == nil {
		return nil, false
	}
	q, err := strconv.Atoi(g["quality"])
	if err != nil {
		return nil, false
	}
	s, err := strconv.Atoi(g["siglevel"])
	if err != nil {
		return nil, false
	}
	return absoluteReading{quality: q, signal: s}, true
}

// namedGroups returns the named submatches of the first match of re in s,
// or nil when re does not match.
func namedGroups(re *regexp.Regexp, s string) map[string]string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" {
			out[name] = m[i]
		}
	}
	return out
}
