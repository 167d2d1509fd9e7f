package component

// Side identifies which end of the field a paddle defends
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

var sideName = map[Side]string{
	SideLeft:  "left",
	SideRight: "right",
}

func (s Side) String() string {
	return sideName[s]
}
