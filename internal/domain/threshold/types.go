package threshold

import (
	"errors"
	"fmt"

	"hydro-command/internal/pkg/errs"
)

// AllDevices keys the fleet-wide threshold set.
const AllDevices = "all"

var (
	ErrInvalidRange     = errs.Mark(errors.New("max must be greater than or equal to min"), errs.ErrDomainValidation)
	ErrUnknownParameter = errs.Mark(errors.New("unknown parameter"), errs.ErrDomainValidation)
	ErrEmptyParameters  = errs.Mark(errors.New("parameters are required"), errs.ErrDomainValidation)
)

type Parameter string

const (
	Temperature       Parameter = "temperature"
	Humidity          Parameter = "humidity"
	PH                Parameter = "pH"
	EC                Parameter = "ec"
	PPM               Parameter = "ppm"
	SubstrateMoisture Parameter = "substrate_moisture"
	Nitrogen          Parameter = "nitrogen"
	Phosphorus        Parameter = "phosphorus"
	Potassium         Parameter = "potassium"
	Calcium           Parameter = "calcium"
	Magnesium         Parameter = "magnesium"
	Iron              Parameter = "iron"
)

// Parameters lists every monitored parameter in evaluation order.
var Parameters = []Parameter{
	Temperature, Humidity, PH, EC, PPM, SubstrateMoisture,
	Nitrogen, Phosphorus, Potassium, Calcium, Magnesium, Iron,
}

type parameterInfo struct {
	label string
	unit  string
}

var parameterInfos = map[Parameter]parameterInfo{
	Temperature:       {label: "Temperature", unit: "°C"},
	Humidity:          {label: "Humidity", unit: "%"},
	PH:                {label: "pH", unit: ""},
	EC:                {label: "EC", unit: " mS/cm"},
	PPM:               {label: "PPM", unit: " ppm"},
	SubstrateMoisture: {label: "Substrate moisture", unit: "%"},
	Nitrogen:          {label: "Nitrogen", unit: " ppm"},
	Phosphorus:        {label: "Phosphorus", unit: " ppm"},
	Potassium:         {label: "Potassium", unit: " ppm"},
	Calcium:           {label: "Calcium", unit: " ppm"},
	Magnesium:         {label: "Magnesium", unit: " ppm"},
	Iron:              {label: "Iron", unit: " ppm"},
}

func (p Parameter) String() string {
	return string(p)
}

func (p Parameter) IsValid() bool {
	_, ok := parameterInfos[p]
	return ok
}

func (p Parameter) Label() string {
	if info, ok := parameterInfos[p]; ok {
		return info.label
	}
	return string(p)
}

func (p Parameter) Unit() string {
	return parameterInfos[p].unit
}

func NewParameter(s string) (Parameter, error) {
	p := Parameter(s)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownParameter, s)
	}
	return p, nil
}

type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

func NewRange(min, max float64) (Range, error) {
	r := Range{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

func (r Range) Validate() error {
	if r.Max < r.Min {
		return ErrInvalidRange
	}
	return nil
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}
