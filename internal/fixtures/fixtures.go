// Package fixtures holds struct types whose minmsg methods are produced by
// minmsggen. Running go generate here refreshes the *_minmsg.go files.
package fixtures

//go:generate go run github.com/rawbytedev/minmsg/cmd/minmsggen generate --pkg . Device

type Unit uint8

const (
	Celsius Unit = iota + 1
	Pascal
)

type Reading struct {
	Unit  Unit
	Value float64
	At    int64
}

type Device struct {
	ID       uint64
	Name     string
	Firmware []byte
	Enabled  bool
	Last     Reading
	Window   [3]Reading
	Notes    string `minmsg:"-"`
}
