package models

// Field values applied to a car when the caller leaves them unset.
const (
	DefaultCarSize         = "m"
	DefaultCarFuel         = "Gasoline"
	DefaultCarDoors        = 4
	DefaultCarTransmission = "Auto"
)

// Car represents a single vehicle of the shared fleet.
// The identifier is assigned by the store on creation and never changes
// afterwards; all other fields are replaced wholesale on update.
type Car struct {
	// CarID is the unique identifier of the car. Monotonically assigned,
	// never reused within a process lifetime.
	CarID int64 `json:"id"`

	// Size is the vehicle size class (e.g. "s", "m", "l").
	Size string `json:"size"`

	// Fuel is the fuel type label (e.g. "Gasoline", "hybrid").
	Fuel string `json:"fuel"`

	// Doors is the number of doors.
	Doors int `json:"doors"`

	// Transmission is the gearbox type label (e.g. "Auto", "manual").
	Transmission string `json:"transmission"`

	// Trips holds the trips recorded for this car, in creation order.
	// Populated only when the car is fetched individually.
	Trips []Trip `json:"trips,omitempty"`
}

// TableName returns the name of the database table
// associated with the Car model.
func (c Car) TableName() string {
	return "cars"
}

// CarInput is the caller-supplied payload for creating or replacing a car.
// Nil fields fall back to the documented defaults.
type CarInput struct {
	Size         *string `json:"size"`
	Fuel         *string `json:"fuel"`
	Doors        *int    `json:"doors"`
	Transmission *string `json:"transmission"`
}

// Car materializes the input into a Car, filling unset fields with defaults.
// The returned car carries no identifier; the store assigns one on insert.
func (in CarInput) Car() Car {
	car := Car{
		Size:         DefaultCarSize,
		Fuel:         DefaultCarFuel,
		Doors:        DefaultCarDoors,
		Transmission: DefaultCarTransmission,
	}

	if in.Size != nil {
		car.Size = *in.Size
	}
	if in.Fuel != nil {
		car.Fuel = *in.Fuel
	}
	if in.Doors != nil {
		car.Doors = *in.Doors
	}
	if in.Transmission != nil {
		car.Transmission = *in.Transmission
	}

	return car
}

// CarFilter restricts a car listing. Nil fields impose no constraint;
// set fields combine with logical AND.
type CarFilter struct {
	// Size, when set, keeps only cars whose size matches exactly.
	Size *string

	// MinDoors, when set, keeps only cars with doors >= MinDoors.
	MinDoors *int
}
