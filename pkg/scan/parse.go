package scan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	bitrateContinuation = "          " // 10 spaces
	ieContinuation      = "    "       // 4 spaces
)

var frequencyRe = regexp.MustCompile(`^(?P<frequency>[\d.]+ .Hz)(?:[\s(]+Channel\s+(?P<channel>\d+)[\s)]+)?$`)

var keyTranslations = map[string]string{
	"encryption key": "encrypted",
	"essid":          "ssid",
}

// ParseCell parses the text of a single cell, as produced by Split, into a
// Cell. The only hard failure is a Frequency line that cannot be read.
func ParseCell(block string) (Cell, error) {
	cell := newCell()
	cur := newCursor(block)

	for !cur.done() {
		line, _ := cur.next()

		switch {
		case strings.HasPrefix(line, "Quality"):
			if r, ok := parseQuality(line); ok {
				r.apply(&cell)
			}

		case strings.HasPrefix(line, "Bit Rates"):
			_, value := splitOnColon(line)
			rates := strings.Split(value, "; ")
			for _, cont := range cur.consumeWhilePrefix(bitrateContinuation) {
				rates = append(rates, strings.Split(strings.TrimSpace(cont), "; ")...)
			}
			cell.Bitrates = append(cell.Bitrates, rates...)

		case strings.Contains(line, ":"):
			key, value := splitOnColon(line)
			key = normalizeKey(key)

			switch key {
			case "ie":
				if strings.Contains(value, "Unknown") {
					continue
				}
				// The rest of the element is indented below it and carries
				// nothing we use.
				cur.consumeWhilePrefix(ieContinuation)
				if strings.Contains(value, "WPA2") {
					cell.EncryptionType = EncryptionWPA2
				} else if strings.Contains(value, "WPA") {
					cell.EncryptionType = EncryptionWPA
				}

			case "frequency":
				if err := setFrequency(&cell, value); err != nil {
					return Cell{}, &BlockError{Index: -1, Block: block, Err: err}
				}

			default:
				setField(&cell, key, value)
			}
		}
	}

	// Everything other than WEP announces itself in an IE.
	if cell.Encrypted && cell.EncryptionType == EncryptionNone {
		cell.EncryptionType = EncryptionWEP
	}

	return cell, nil
}

func setFrequency(c *Cell, value string) error {
	g := namedGroups(frequencyRe, value)
	if g == nil {
		return fmt.Errorf("%w: %q", ErrMalformedFrequency, value)
	}
	c.Frequency = g["frequency"]
	if ch := g["channel"]; ch != "" {
		n, err := strconv.Atoi(ch)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedFrequency, value)
		}
		c.Channel = intPtr(n)
	}
	return nil
}

func setField(c *Cell, key, value string) {
	switch key {
	case "ssid":
		c.SSID = strings.Trim(value, `"`)
	case "encrypted":
		c.Encrypted = value == "on"
	case "address":
		c.Address = value
	case "mode":
		c.Mode = value
	case "channel":
		if n, err := strconv.Atoi(value); err == nil {
			c.Channel = intPtr(n)
		}
	}
}

func splitOnColon(line string) (string, string) {
	key, value, _ := strings.Cut(line, ":")
	return strings.TrimSpace(key), strings.TrimSpace(value)
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if k, ok := keyTranslations[key]; ok {
		key = k
	}
	return strings.ReplaceAll(key, " ", "")
}
