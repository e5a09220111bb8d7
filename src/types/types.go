package types

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
)

// Toggle returns the opposite direction.
func (d MotorDirection) Toggle() MotorDirection {
	if d == MD_Up {
		return MD_Down
	}
	return MD_Up
}

func (d MotorDirection) String() string {
	if d == MD_Up {
		return "UP"
	}
	return "DOWN"
}

type ButtonType int

const (
	BT_Call ButtonType = iota
	BT_Destination
)

func (b ButtonType) String() string {
	switch b {
	case BT_Call:
		return "Call"
	case BT_Destination:
		return "Destination"
	}
	return "Unknown"
}

type ElevBehaviour int

const (
	Idle ElevBehaviour = iota
	Moving
)

func (b ElevBehaviour) String() string {
	if b == Moving {
		return "Moving"
	}
	return "Idle"
}
