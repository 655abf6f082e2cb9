package patterns

import "strconv"

// Figure tags a catalog entry. Each orientation of a shape has its own tag.
type Figure int

const (
	Block Figure = iota
	Tub
	Beehive1
	Beehive2
	Pond
	Ship1
	Ship2
	Loaf1
	Loaf2
	Loaf3
	Loaf4
	Boat1
	Boat2
	Boat3
	Boat4
	Blinker1
	Blinker2
	Eight1
	Eight2
)

var figureNames = [...]string{
	Block:    "Block",
	Tub:      "Tub",
	Beehive1: "Beehive1",
	Beehive2: "Beehive2",
	Pond:     "Pond",
	Ship1:    "Ship1",
	Ship2:    "Ship2",
	Loaf1:    "Loaf1",
	Loaf2:    "Loaf2",
	Loaf3:    "Loaf3",
	Loaf4:    "Loaf4",
	Boat1:    "Boat1",
	Boat2:    "Boat2",
	Boat3:    "Boat3",
	Boat4:    "Boat4",
	Blinker1: "Blinker1",
	Blinker2: "Blinker2",
	Eight1:   "Eight1",
	Eight2:   "Eight2",
}

func (f Figure) String() string {
	if f >= 0 && int(f) < len(figureNames) {
		return figureNames[f]
	}
	return "Figure(" + strconv.Itoa(int(f)) + ")"
}
