package rooms

import "fmt"

// Building is the closed set of facilities a room can belong to.
type Building int

const (
	LTC Building = iota + 1
	NAB
	FD1
	FD2
	FD3
)

var buildingNames = map[Building]string{
	LTC: "LTC",
	NAB: "NAB",
	FD1: "FD1",
	FD2: "FD2",
	FD3: "FD3",
}

// Each building only hosts room numbers starting with its own prefix,
// e.g. LTC-5101, NAB-6101, FD1-1101.
var buildingPrefixes = map[Building]string{
	LTC: "51",
	NAB: "61",
	FD1: "11",
	FD2: "21",
	FD3: "31",
}

func (b Building) String() string {
	if name, ok := buildingNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Building(%d)", int(b))
}

// RoomNumberPrefix returns the two characters every room number in
// this building must start with.
func (b Building) RoomNumberPrefix() string {
	return buildingPrefixes[b]
}

func (b Building) valid() bool {
	_, ok := buildingNames[b]
	return ok
}

// ParseBuilding resolves a building code as it appears on the wire.
func ParseBuilding(s string) (Building, error) {
	for b, name := range buildingNames {
		if name == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown building %q", s)
}

func (b Building) MarshalText() ([]byte, error) {
	if !b.valid() {
		return nil, fmt.Errorf("unknown building %d", int(b))
	}
	return []byte(b.String()), nil
}

func (b *Building) UnmarshalText(text []byte) error {
	parsed, err := ParseBuilding(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
