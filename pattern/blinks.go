package pattern

// Common blink patterns.
var (
	ShortOnOff = New(0b10, 2)
	ShortOffOn = ShortOnOff.Reverse()

	MediumOnOff = New(0b1100, 4)
	MediumOffOn = MediumOnOff.Reverse()

	LongOnOff = New(0b11110000, 8)
	LongOffOn = LongOnOff.Reverse()

	// QuarterDuty is a blink with a 25% on, 75% off duty cycle.
	QuarterDuty = New(0b1000, 4)
)
