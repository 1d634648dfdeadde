package scan

import "fmt"

type EncryptionType string

const (
	EncryptionNone EncryptionType = ""
	EncryptionWEP  EncryptionType = "wep"
	EncryptionWPA  EncryptionType = "wpa"
	EncryptionWPA2 EncryptionType = "wpa2"
)

/* Cell
 *
 * Cell is a single access point as reported by one
 * block of `iw`/`iwlist` scan output. Channel, Signal
 * and Noise are nil when the block did not carry them.
 */
type Cell struct {
	SSID           string         `json:"ssid"`
	Bitrates       []string       `json:"bitrates"`
	Address        string         `json:"address,omitempty"`
	Channel        *int           `json:"channel,omitempty"`
	Encrypted      bool           `json:"encrypted"`
	EncryptionType EncryptionType `json:"encryption_type,omitempty"`
	Frequency      string         `json:"frequency,omitempty"`
	Mode           string         `json:"mode,omitempty"`
	Quality        string         `json:"quality,omitempty"`
	Signal         *int           `json:"signal,omitempty"`
	Noise          *int           `json:"noise,omitempty"`
}

func newCell() Cell {
	return Cell{Bitrates: []string{}}
}

func (t Cell) String() string {
	return fmt.Sprintf("Cell(ssid=%s)", t.SSID)
}

func intPtr(v int) *int {
	return &v
}
