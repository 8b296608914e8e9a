package threshold

import "time"

var builtinDefaults = map[Parameter]Range{
	Temperature:       {Min: 24, Max: 30},
	Humidity:          {Min: 65, Max: 80},
	PH:                {Min: 5.5, Max: 6.5},
	EC:                {Min: 1.8, Max: 2.4},
	PPM:               {Min: 800, Max: 1400},
	SubstrateMoisture: {Min: 60, Max: 80},
	Nitrogen:          {Min: 120, Max: 180},
	Phosphorus:        {Min: 40, Max: 60},
	Potassium:         {Min: 200, Max: 300},
	Calcium:           {Min: 150, Max: 200},
	Magnesium:         {Min: 40, Max: 70},
	Iron:              {Min: 2, Max: 5},
}

// Defaults returns the built-in fleet ranges with overrides applied on top.
// Unknown parameter names and inverted ranges in overrides are rejected.
func Defaults(overrides map[string]Range) (*Set, error) {
	ranges := make(map[Parameter]Range, len(builtinDefaults))
	for p, r := range builtinDefaults {
		ranges[p] = r
	}
	for name, r := range overrides {
		p, err := NewParameter(name)
		if err != nil {
			return nil, err
		}
		ranges[p] = r
	}
	return NewSet(AllDevices, nil, ranges, time.Time{})
}

// MustDefaults returns the built-in ranges.
func MustDefaults() *Set {
	s, err := Defaults(nil)
	if err != nil {
		panic(err)
	}
	return s
}
